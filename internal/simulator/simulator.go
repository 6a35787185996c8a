package simulator

import (
	"github.com/fschuetz04/simgo"

	"github.com/emrzvv/evo-research/internal/config"
	"github.com/emrzvv/evo-research/internal/model"
	"github.com/emrzvv/evo-research/internal/stats"
	"github.com/emrzvv/evo-research/internal/topology"
)

func Run(cfg *config.Config, islands []*model.Island, topo topology.Topology) *stats.Statistics {
	simulation := simgo.NewSimulation()
	statistics := stats.NewStatistics(cfg)

	simulation.Process(func(proc simgo.Process) { collectSnapshots(proc, cfg, islands) })
	simulation.Process(func(proc simgo.Process) {
		migrate(proc, simulation, cfg, islands, topo, statistics)
	})

	for _, island := range islands {
		isl := island
		simulation.Process(func(proc simgo.Process) { evolveIsland(proc, cfg, isl, statistics) })
	}

	simulation.RunUntil(cfg.Simulation.TimeSeconds)
	return statistics
}
