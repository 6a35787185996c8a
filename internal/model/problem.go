package model

import (
	"fmt"
	"math"

	"github.com/emrzvv/evo-research/internal/config"
)

type Problem struct {
	Name         string
	Dim          int
	Lower, Upper float64
	eval         func(x []float64) float64
}

func NewProblem(cfg *config.Config) (*Problem, error) {
	p := &Problem{
		Name:  cfg.Problem.Name,
		Dim:   cfg.Problem.Dim,
		Lower: cfg.Problem.Lower,
		Upper: cfg.Problem.Upper,
	}
	switch cfg.Problem.Name {
	case "sphere":
		p.eval = sphere
	case "rastrigin":
		p.eval = rastrigin
	case "rosenbrock":
		p.eval = rosenbrock
	default:
		return nil, fmt.Errorf("unknown problem %q", cfg.Problem.Name)
	}
	return p, nil
}

func (p *Problem) Eval(x []float64) float64 {
	return p.eval(x)
}

// Clamp возвращает точку в допустимые границы покоординатно.
func (p *Problem) Clamp(x []float64) {
	for i, v := range x {
		if v < p.Lower {
			x[i] = p.Lower
		} else if v > p.Upper {
			x[i] = p.Upper
		}
	}
}

func sphere(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += v * v
	}
	return s
}

func rastrigin(x []float64) float64 {
	s := 10.0 * float64(len(x))
	for _, v := range x {
		s += v*v - 10.0*math.Cos(2.0*math.Pi*v)
	}
	return s
}

func rosenbrock(x []float64) float64 {
	s := 0.0
	for i := 0; i < len(x)-1; i++ {
		a := x[i+1] - x[i]*x[i]
		b := 1.0 - x[i]
		s += 100.0*a*a + b*b
	}
	return s
}
