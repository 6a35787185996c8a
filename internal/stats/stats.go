package stats

import (
	"sync"

	"github.com/emrzvv/evo-research/internal/config"
)

type Statistics struct {
	mu           sync.Mutex
	Improvements []*ImprovementEvent
	Migrations   []*MigrationEvent
	Generations  []int // кол-во поколений по островам
}

type ImprovementEvent struct {
	IslandID int
	T        float64
	Fitness  float64
}

type MigrationEvent struct {
	FromID   int
	ToID     int
	T        float64
	Fitness  float64
	Accepted bool
}

func NewStatistics(cfg *config.Config) *Statistics {
	return &Statistics{
		mu:           sync.Mutex{},
		Improvements: make([]*ImprovementEvent, 0),
		Migrations:   make([]*MigrationEvent, 0),
		Generations:  make([]int, cfg.Islands.Amount),
	}
}

func (st *Statistics) AddImprovement(ie *ImprovementEvent) {
	st.mu.Lock()
	st.Improvements = append(st.Improvements, ie)
	st.mu.Unlock()
}

func (st *Statistics) AddMigration(me *MigrationEvent) {
	st.mu.Lock()
	st.Migrations = append(st.Migrations, me)
	st.mu.Unlock()
}

func (st *Statistics) AddGeneration(islandID int) {
	st.mu.Lock()
	st.Generations[islandID-1]++
	st.mu.Unlock()
}
