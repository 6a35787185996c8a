package simulator

import (
	"github.com/fschuetz04/simgo"

	"github.com/emrzvv/evo-research/internal/config"
	"github.com/emrzvv/evo-research/internal/model"
	"github.com/emrzvv/evo-research/internal/stats"
)

func evolveIsland(
	proc simgo.Process,
	cfg *config.Config,
	isl *model.Island,
	st *stats.Statistics) {

	for proc.Now() < cfg.Simulation.TimeSeconds {
		d := isl.GenInterval(cfg.Islands.GenMeanSeconds, cfg.Islands.GenCV)
		if d < 1e-6 {
			d = 1e-6
		}
		proc.Wait(proc.Timeout(d))

		improved := isl.Step()
		st.AddGeneration(isl.ID)
		if improved {
			st.AddImprovement(&stats.ImprovementEvent{
				IslandID: isl.ID,
				T:        proc.Now(),
				Fitness:  isl.BestFitness(),
			})
		}
	}
}
