package model

import (
	"testing"

	"github.com/emrzvv/evo-research/internal/rng"
)

func TestInitIslandsReproducible(t *testing.T) {
	cfg := testConfig("rastrigin")
	p, err := NewProblem(cfg)
	if err != nil {
		t.Fatal(err)
	}

	rng.SetSeed(42)
	a := InitIslands(cfg, p)
	rng.SetSeed(42)
	b := InitIslands(cfg, p)

	if len(a) != cfg.Islands.Amount {
		t.Fatalf("got %d islands, want %d", len(a), cfg.Islands.Amount)
	}
	for i := range a {
		if a[i].Sigma != b[i].Sigma {
			t.Fatalf("island %d sigma differs: %v != %v", i, a[i].Sigma, b[i].Sigma)
		}
		if a[i].Best.Fitness != b[i].Best.Fitness {
			t.Fatalf("island %d best differs: %v != %v", i, a[i].Best.Fitness, b[i].Best.Fitness)
		}
	}
}

func TestStepNeverWorsensBest(t *testing.T) {
	cfg := testConfig("rastrigin")
	p, err := NewProblem(cfg)
	if err != nil {
		t.Fatal(err)
	}
	rng.SetSeed(7)
	isl := InitIslands(cfg, p)[0]

	prev := isl.BestFitness()
	for g := 0; g < 200; g++ {
		isl.Step()
		cur := isl.BestFitness()
		if cur > prev {
			t.Fatalf("generation %d: best worsened %v -> %v", g, prev, cur)
		}
		prev = cur
	}
	if isl.Generations() != 200 {
		t.Fatalf("generation counter = %d, want 200", isl.Generations())
	}
}

func TestReceiveMigrant(t *testing.T) {
	cfg := testConfig("sphere")
	p, err := NewProblem(cfg)
	if err != nil {
		t.Fatal(err)
	}
	rng.SetSeed(5)
	isl := InitIslands(cfg, p)[0]

	perfect := Individual{X: make([]float64, cfg.Problem.Dim), Fitness: 0}
	if !isl.ReceiveMigrant(perfect) {
		t.Fatal("perfect migrant rejected")
	}
	if isl.BestFitness() != 0 {
		t.Fatalf("best after perfect migrant = %v, want 0", isl.BestFitness())
	}
	if isl.Immigrants != 1 {
		t.Fatalf("immigrants = %d, want 1", isl.Immigrants)
	}

	awful := Individual{X: make([]float64, cfg.Problem.Dim), Fitness: 1e18}
	if isl.ReceiveMigrant(awful) {
		t.Fatal("worse-than-worst migrant accepted")
	}
}
