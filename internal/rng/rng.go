// Package rng owns the process-wide pseudo-random source. Every component
// that needs randomness either draws directly via Next or, more commonly,
// seeds a private Engine once at construction time with NewEngine(Next())
// and uses it independently afterwards. SetSeed makes the whole experiment
// reproducible from a single value.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

var (
	mu     sync.Mutex
	device *Engine
	once   sync.Once
)

// Next returns the next value of the shared stream. Calls are fully
// serialized with SetSeed and each other; under concurrent access the
// arrival order is whatever the mutex arbitrates, no FIFO promise.
func Next() uint32 {
	mu.Lock()
	defer mu.Unlock()
	return engine().Uint32()
}

// SetSeed deterministically resets the shared stream. Callers blocked on
// the lock at the time of the call will draw from the new sequence.
func SetSeed(seed uint32) {
	mu.Lock()
	defer mu.Unlock()
	engine().Seed(seed)
}

// engine is called with mu held. The first access seeds from entropy, so
// runs without an explicit SetSeed still get a well-defined stream.
func engine() *Engine {
	once.Do(func() {
		device = NewEngine(entropySeed())
	})
	return device
}

func entropySeed() uint32 {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return uint32(time.Now().UnixNano())
	}
	return binary.BigEndian.Uint32(b[:])
}
