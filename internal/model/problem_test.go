package model

import (
	"math"
	"testing"

	"github.com/emrzvv/evo-research/internal/config"
)

func testConfig(name string) *config.Config {
	cfg := &config.Config{}
	cfg.Problem.Name = name
	cfg.Problem.Dim = 5
	cfg.Problem.Lower = -5.12
	cfg.Problem.Upper = 5.12
	cfg.Islands.Amount = 4
	cfg.Islands.Population = 10
	cfg.Islands.Sigma = 0.3
	cfg.Islands.SigmaCV = 0.2
	cfg.Islands.StagnationGens = 50
	return cfg
}

func TestProblemOptima(t *testing.T) {
	zeros := make([]float64, 5)
	ones := []float64{1, 1, 1, 1, 1}

	cases := []struct {
		name string
		x    []float64
	}{
		{"sphere", zeros},
		{"rastrigin", zeros},
		{"rosenbrock", ones},
	}
	for _, c := range cases {
		p, err := NewProblem(testConfig(c.name))
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if f := p.Eval(c.x); math.Abs(f) > 1e-9 {
			t.Fatalf("%s at optimum = %v, want 0", c.name, f)
		}
	}
}

func TestUnknownProblem(t *testing.T) {
	if _, err := NewProblem(testConfig("ackley")); err == nil {
		t.Fatal("expected error for unknown problem")
	}
}

func TestClamp(t *testing.T) {
	p, err := NewProblem(testConfig("sphere"))
	if err != nil {
		t.Fatal(err)
	}
	x := []float64{-100, 0, 100}
	p.Clamp(x)
	want := []float64{-5.12, 0, 5.12}
	for i := range x {
		if x[i] != want[i] {
			t.Fatalf("clamp[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}
