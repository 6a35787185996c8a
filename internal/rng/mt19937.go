package rng

const (
	mtN       = 624
	mtM       = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

// Engine is the 32-bit Mersenne Twister (MT19937, Matsumoto & Nishimura
// 1998). Not safe for concurrent use: a caller either owns an Engine
// privately or goes through the package-level device.
type Engine struct {
	state [mtN]uint32
	idx   int
}

func NewEngine(seed uint32) *Engine {
	e := &Engine{}
	e.Seed(seed)
	return e
}

// Seed reinitializes the engine state deterministically. Any value is
// valid, including zero.
func (e *Engine) Seed(seed uint32) {
	e.state[0] = seed
	for i := 1; i < mtN; i++ {
		prev := e.state[i-1]
		e.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	e.idx = mtN
}

func (e *Engine) Uint32() uint32 {
	if e.idx >= mtN {
		e.twist()
	}
	y := e.state[e.idx]
	e.idx++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

func (e *Engine) twist() {
	for i := 0; i < mtN; i++ {
		y := (e.state[i] & upperMask) | (e.state[(i+1)%mtN] & lowerMask)
		next := e.state[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= matrixA
		}
		e.state[i] = next
	}
	e.idx = 0
}

// Uint64 combines two 32-bit draws (high word first), which makes Engine a
// math/rand/v2 Source usable as Src for the gonum distributions.
func (e *Engine) Uint64() uint64 {
	hi := uint64(e.Uint32())
	return hi<<32 | uint64(e.Uint32())
}

// Float64 returns a uniform value in [0, 1) with 53 bits of precision.
func (e *Engine) Float64() float64 {
	a := e.Uint32() >> 5
	b := e.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) / 9007199254740992.0
}
