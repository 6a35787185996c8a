package simulator

import (
	"github.com/fschuetz04/simgo"

	"github.com/emrzvv/evo-research/internal/config"
	"github.com/emrzvv/evo-research/internal/model"
)

func collectSnapshots(
	proc simgo.Process,
	cfg *config.Config,
	islands []*model.Island) {

	step := cfg.Simulation.StepSeconds
	for t := 0.0; t < cfg.Simulation.TimeSeconds; t += step {
		proc.Wait(proc.Timeout(step))
		now := proc.Now()
		for _, isl := range islands {
			isl.AddSnapshot(now)
		}
	}
}
