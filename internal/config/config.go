package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Simulation struct {
		TimeSeconds float64 `yaml:"time_seconds"` // общая продолжительность эксперимента
		StepSeconds float64 `yaml:"step_seconds"` // шаг сбора snapshot'ов
		Seed        int64   `yaml:"seed"`         // 0 — сид из энтропии (невоспроизводимый запуск)
	} `yaml:"simulation"`

	Problem struct {
		Name  string  `yaml:"name"` // sphere | rastrigin | rosenbrock
		Dim   int     `yaml:"dim"`
		Lower float64 `yaml:"lower"`
		Upper float64 `yaml:"upper"`
	} `yaml:"problem"`

	Islands struct {
		Amount         int     `yaml:"amount"`     // кол-во островов
		Population     int     `yaml:"population"` // размер популяции на острове
		Sigma          float64 `yaml:"sigma"`      // средняя сигма мутации
		SigmaCV        float64 `yaml:"sigma_cv"`   // разброс сигмы между островами
		GenMeanSeconds float64 `yaml:"gen_mean_s"` // средняя длительность одного поколения
		GenCV          float64 `yaml:"gen_cv"`
		StagnationGens int     `yaml:"stagnation_gens"` // сколько поколений без улучшения до перезапуска половины популяции
	} `yaml:"islands"`

	Migration struct {
		IntervalSeconds  float64 `yaml:"interval_s"`   // период миграции
		DelayMeanSeconds float64 `yaml:"delay_mean_s"` // средняя задержка доставки мигранта
		DelaySigma       float64 `yaml:"delay_sigma"`
		Topology         string  `yaml:"topology"` // ring | random
	} `yaml:"migration"`
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error when parsing config: %w", err)
	}

	fillDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("error when validating config: %w", err)
	}
	return &cfg, nil
}

func fillDefaults(c *Config) {
	if c.Simulation.TimeSeconds == 0 {
		c.Simulation.TimeSeconds = 300
	}
	if c.Simulation.StepSeconds == 0 {
		c.Simulation.StepSeconds = 1
	}
	if c.Problem.Name == "" {
		c.Problem.Name = "rastrigin"
	}
	if c.Problem.Dim == 0 {
		c.Problem.Dim = 10
	}
	if c.Problem.Lower == 0 && c.Problem.Upper == 0 {
		c.Problem.Lower = -5.12
		c.Problem.Upper = 5.12
	}
	if c.Islands.Amount == 0 {
		c.Islands.Amount = 8
	}
	if c.Islands.Population == 0 {
		c.Islands.Population = 20
	}
	if c.Islands.Sigma == 0 {
		c.Islands.Sigma = 0.3
	}
	if c.Islands.SigmaCV == 0 {
		c.Islands.SigmaCV = 0.2
	}
	if c.Islands.GenMeanSeconds == 0 {
		c.Islands.GenMeanSeconds = 0.5
	}
	if c.Islands.GenCV == 0 {
		c.Islands.GenCV = 0.2
	}
	if c.Islands.StagnationGens == 0 {
		c.Islands.StagnationGens = 50
	}
	if c.Migration.IntervalSeconds == 0 {
		c.Migration.IntervalSeconds = 10
	}
	if c.Migration.DelayMeanSeconds == 0 {
		c.Migration.DelayMeanSeconds = 0.2
	}
	if c.Migration.DelaySigma == 0 {
		c.Migration.DelaySigma = 0.5
	}
	if c.Migration.Topology == "" {
		c.Migration.Topology = "ring"
	}
}

func validate(cfg *Config) error {
	if cfg.Problem.Lower >= cfg.Problem.Upper {
		return fmt.Errorf("problem bounds are inverted: [%v, %v]", cfg.Problem.Lower, cfg.Problem.Upper)
	}
	if cfg.Problem.Dim < 1 {
		return fmt.Errorf("problem dim must be >= 1, got %d", cfg.Problem.Dim)
	}
	if cfg.Islands.Amount < 2 {
		return fmt.Errorf("need at least 2 islands for migration, got %d", cfg.Islands.Amount)
	}
	return nil
}
