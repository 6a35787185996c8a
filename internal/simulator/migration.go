package simulator

import (
	"math"

	"github.com/fschuetz04/simgo"

	"github.com/emrzvv/evo-research/internal/config"
	"github.com/emrzvv/evo-research/internal/model"
	"github.com/emrzvv/evo-research/internal/rng"
	"github.com/emrzvv/evo-research/internal/stats"
	"github.com/emrzvv/evo-research/internal/topology"
)

// migrate периодически рассылает лучших особей по топологии; доставка
// моделируется лог-нормальной задержкой.
func migrate(
	proc simgo.Process,
	sim *simgo.Simulation,
	cfg *config.Config,
	islands []*model.Island,
	topo topology.Topology,
	st *stats.Statistics) {

	eng := rng.NewEngine(rng.Next())
	lnMean := math.Log(cfg.Migration.DelayMeanSeconds)

	for proc.Now() < cfg.Simulation.TimeSeconds {
		proc.Wait(proc.Timeout(cfg.Migration.IntervalSeconds))

		for i := range islands {
			from := islands[i]
			to := islands[topo.Target(i)]
			migrant := from.Emigrant()
			delay := model.RandLogNormal(lnMean, cfg.Migration.DelaySigma, eng)

			sim.Process(func(transfer simgo.Process) {
				transfer.Wait(transfer.Timeout(delay))
				accepted := to.ReceiveMigrant(migrant)
				st.AddMigration(&stats.MigrationEvent{
					FromID:   from.ID,
					ToID:     to.ID,
					T:        transfer.Now(),
					Fitness:  migrant.Fitness,
					Accepted: accepted,
				})
			})
		}
	}
}
