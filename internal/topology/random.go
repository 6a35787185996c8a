package topology

import (
	"github.com/emrzvv/evo-research/internal/rng"
)

// Random sends every emigrant to a uniformly chosen other island. The
// engine is private to the single migration process, no locking needed.
type Random struct {
	islands int
	eng     *rng.Engine
}

func (t *Random) Target(from int) int {
	j := int(t.eng.Float64() * float64(t.islands-1))
	if j >= from {
		j++
	}
	return j
}
