package topology

import (
	"github.com/emrzvv/evo-research/internal/config"
	"github.com/emrzvv/evo-research/internal/rng"
)

// Topology decides where an island's emigrant goes. Indices are 0-based
// archipelago positions.
type Topology interface {
	Target(from int) int
}

func New(cfg *config.Config, islands int) Topology {
	switch cfg.Migration.Topology {
	case "ring":
		return &Ring{islands: islands}
	case "random":
		return &Random{
			islands: islands,
			eng:     rng.NewEngine(rng.Next()),
		}
	default:
		panic("no such topology has been implemented")
	}
}
