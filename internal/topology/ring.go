package topology

// Ring sends every emigrant to the next island in a fixed cycle.
type Ring struct {
	islands int
}

func (r *Ring) Target(from int) int {
	return (from + 1) % r.islands
}
