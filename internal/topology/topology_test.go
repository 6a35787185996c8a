package topology

import (
	"math"
	"testing"

	"github.com/emrzvv/evo-research/internal/config"
)

func testConfig(topo string) *config.Config {
	cfg := &config.Config{}
	cfg.Migration.Topology = topo
	return cfg
}

func TestRingTargets(t *testing.T) {
	topo := New(testConfig("ring"), 5)
	want := []int{1, 2, 3, 4, 0}
	for from, w := range want {
		if got := topo.Target(from); got != w {
			t.Fatalf("ring target(%d) = %d, want %d", from, got, w)
		}
	}
}

func TestRandomTargetsDist(t *testing.T) {
	n := 10
	topo := New(testConfig("random"), n)

	const iter = 100_000
	count := make([]int, n)
	for i := 0; i < iter; i++ {
		to := topo.Target(3)
		if to == 3 {
			t.Fatal("random topology targeted the source island")
		}
		count[to]++
	}
	mean := float64(iter) / float64(n-1)
	for id, c := range count {
		if id == 3 {
			continue
		}
		dev := math.Abs(float64(c)-mean) / mean
		if dev > 0.05 {
			t.Fatalf("island %d imbalance %.1f%%", id, dev*100)
		}
	}
}

func TestUnknownTopologyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown topology")
		}
	}()
	New(testConfig("star"), 4)
}
