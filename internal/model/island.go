package model

import (
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/emrzvv/evo-research/internal/config"
	"github.com/emrzvv/evo-research/internal/rng"
)

type Individual struct {
	X       []float64
	Fitness float64
}

func (ind Individual) clone() Individual {
	return Individual{
		X:       append([]float64(nil), ind.X...),
		Fitness: ind.Fitness,
	}
}

type FitnessSnapshot struct {
	T    float64
	Best float64
	Gens int
}

type Island struct {
	ID         int
	Sigma      float64
	Best       Individual
	Pop        []Individual // отсортирована по возрастанию fitness
	Gens       int
	Immigrants int
	Snapshots  []*FitnessSnapshot
	stagnation int
	resetAfter int
	problem    *Problem
	eng        *rng.Engine
	mu         sync.Mutex
}

// InitIslands builds the archipelago. Each island owns a private engine
// seeded once from the shared source, so a single SetSeed pins the whole
// experiment.
func InitIslands(cfg *config.Config, p *Problem) []*Island {
	var islands []*Island
	for i := range cfg.Islands.Amount {
		eng := rng.NewEngine(rng.Next())

		sigma := RandNormal(cfg.Islands.Sigma, cfg.Islands.SigmaCV, eng)
		if sigma <= 0 {
			sigma = cfg.Islands.Sigma
		}

		isl := &Island{
			ID:         i + 1,
			Sigma:      sigma,
			Snapshots:  make([]*FitnessSnapshot, 0),
			resetAfter: cfg.Islands.StagnationGens,
			problem:    p,
			eng:        eng,
		}
		isl.Pop = make([]Individual, cfg.Islands.Population)
		for j := range isl.Pop {
			isl.Pop[j] = isl.randomIndividual()
		}
		sortByFitness(isl.Pop)
		isl.Best = isl.Pop[0].clone()

		islands = append(islands, isl)
	}
	return islands
}

// Step runs one generation: gaussian mutation of every parent, then
// truncation selection over parents+offspring. Reports whether the island
// best improved.
func (isl *Island) Step() bool {
	isl.mu.Lock()
	defer isl.mu.Unlock()

	size := len(isl.Pop)
	noise := distuv.Normal{Mu: 0, Sigma: isl.Sigma, Src: isl.eng}

	offspring := make([]Individual, 0, size)
	for _, parent := range isl.Pop {
		x := make([]float64, len(parent.X))
		for d := range x {
			x[d] = parent.X[d] + noise.Rand()
		}
		isl.problem.Clamp(x)
		offspring = append(offspring, Individual{X: x, Fitness: isl.problem.Eval(x)})
	}

	merged := append(isl.Pop, offspring...)
	sortByFitness(merged)
	isl.Pop = merged[:size]
	isl.Gens++

	improved := isl.Pop[0].Fitness < isl.Best.Fitness
	if improved {
		isl.Best = isl.Pop[0].clone()
		isl.stagnation = 0
	} else {
		isl.stagnation++
	}

	// застой: переинициализируем худшую половину популяции
	if isl.resetAfter > 0 && isl.stagnation >= isl.resetAfter {
		for j := size / 2; j < size; j++ {
			isl.Pop[j] = isl.randomIndividual()
		}
		sortByFitness(isl.Pop)
		isl.stagnation = 0
	}
	return improved
}

// GenInterval draws the duration of the next generation from the island's
// private engine.
func (isl *Island) GenInterval(mean, cv float64) float64 {
	isl.mu.Lock()
	defer isl.mu.Unlock()
	return RandGamma(mean, cv, isl.eng)
}

// Emigrant returns a copy of the current island best.
func (isl *Island) Emigrant() Individual {
	isl.mu.Lock()
	defer isl.mu.Unlock()
	return isl.Best.clone()
}

// ReceiveMigrant replaces the worst individual when the migrant beats it.
func (isl *Island) ReceiveMigrant(ind Individual) bool {
	isl.mu.Lock()
	defer isl.mu.Unlock()

	worst := len(isl.Pop) - 1
	if ind.Fitness >= isl.Pop[worst].Fitness {
		return false
	}
	isl.Pop[worst] = ind.clone()
	sortByFitness(isl.Pop)
	isl.Immigrants++
	if isl.Pop[0].Fitness < isl.Best.Fitness {
		isl.Best = isl.Pop[0].clone()
		isl.stagnation = 0
	}
	return true
}

func (isl *Island) AddSnapshot(t float64) {
	isl.mu.Lock()
	ss := &FitnessSnapshot{T: t, Best: isl.Best.Fitness, Gens: isl.Gens}
	isl.Snapshots = append(isl.Snapshots, ss)
	isl.mu.Unlock()
}

func (isl *Island) BestFitness() float64 {
	isl.mu.Lock()
	defer isl.mu.Unlock()
	return isl.Best.Fitness
}

func (isl *Island) Generations() int {
	isl.mu.Lock()
	defer isl.mu.Unlock()
	return isl.Gens
}

func (isl *Island) randomIndividual() Individual {
	x := make([]float64, isl.problem.Dim)
	for d := range x {
		x[d] = isl.problem.Lower + isl.eng.Float64()*(isl.problem.Upper-isl.problem.Lower)
	}
	return Individual{X: x, Fitness: isl.problem.Eval(x)}
}

func sortByFitness(pop []Individual) {
	sort.Slice(pop, func(i, j int) bool { return pop[i].Fitness < pop[j].Fitness })
}
