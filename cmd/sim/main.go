package main

import (
	"flag"
	"log"

	"github.com/emrzvv/evo-research/internal/config"
	"github.com/emrzvv/evo-research/internal/export"
	"github.com/emrzvv/evo-research/internal/model"
	"github.com/emrzvv/evo-research/internal/rng"
	"github.com/emrzvv/evo-research/internal/simulator"
	"github.com/emrzvv/evo-research/internal/topology"
)

func main() {
	cfgPath := flag.String("cfg", "./config/default.yaml", "path to config")
	outDir := flag.String("out", "./csv", "output directory for csv")
	plotDir := flag.String("plot", "", "output directory for plots (empty to skip)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	// сид 0 — оставляем энтропийную инициализацию источника
	if cfg.Simulation.Seed != 0 {
		rng.SetSeed(uint32(cfg.Simulation.Seed))
	}

	problem, err := model.NewProblem(cfg)
	if err != nil {
		log.Fatal(err)
	}
	islands := model.InitIslands(cfg, problem)
	topo := topology.New(cfg, len(islands))

	st := simulator.Run(cfg, islands, topo)

	if err := export.ToCSV(*outDir, st, islands); err != nil {
		log.Fatal(err)
	}
	if *plotDir != "" {
		if err := plotAll(*plotDir, islands); err != nil {
			log.Fatal(err)
		}
	}
}
