package main

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/emrzvv/evo-research/internal/model"
	"github.com/emrzvv/evo-research/internal/rng"
)

func plotAll(dir string, islands []*model.Island) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := plotFitness(islands, fmt.Sprintf("%s/fitness.png", dir)); err != nil {
		return err
	}
	return plotDrawHist(fmt.Sprintf("%s/draws.png", dir))
}

func plotFitness(islands []*model.Island, file string) error {
	p := plot.New()
	p.Title.Text = "Лучшая пригодность по островам"
	p.X.Label.Text = "Время (с)"
	p.Y.Label.Text = "Fitness"

	for i, isl := range islands {
		pts := make(plotter.XYs, len(isl.Snapshots))
		for j, snap := range isl.Snapshots {
			pts[j].X = snap.T
			pts[j].Y = snap.Best
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("остров %d", isl.ID), line)
	}
	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, file)
}

// plotDrawHist строит гистограмму сырых выборок из общего источника —
// быстрая визуальная проверка равномерности.
func plotDrawHist(file string) error {
	const draws = 10_000
	vals := make(plotter.Values, draws)
	for i := range vals {
		vals[i] = float64(rng.Next()) / float64(1<<32)
	}
	h, err := plotter.NewHist(vals, 16)
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = "Распределение выборок источника"
	p.Add(h)
	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, file)
}
