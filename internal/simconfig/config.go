// Package simconfig loads run configuration from an HCL file, falling back
// to defaults when no file is present.
package simconfig

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete run configuration.
type Config struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Blackjack  *BlackjackSettings `hcl:"blackjack,block"`
	RideBus    *RideBusSettings   `hcl:"ridebus,block"`
}

// SimulationSettings controls the Monte Carlo run itself.
type SimulationSettings struct {
	Iterations       int   `hcl:"iterations,optional"`
	ProgressInterval int   `hcl:"progress_interval,optional"`
	Seed             int64 `hcl:"seed,optional"`
	Workers          int   `hcl:"workers,optional"`
}

// BlackjackSettings configures the blackjack trials.
type BlackjackSettings struct {
	Decks int     `hcl:"decks,optional"`
	Wager float64 `hcl:"wager,optional"`
}

// RideBusSettings configures the Ride the Bus trials.
type RideBusSettings struct {
	Wager    float64 `hcl:"wager,optional"`
	Strategy string  `hcl:"strategy,optional"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Simulation: &SimulationSettings{
			Iterations:       10000,
			ProgressInterval: 1000,
			Workers:          1,
		},
		Blackjack: &BlackjackSettings{Decks: 6, Wager: 1},
		RideBus:   &RideBusSettings{Wager: 1, Strategy: "ride_to_suit"},
	}
}

// Load reads an HCL configuration file. A missing file yields the defaults;
// a present file is decoded and then backfilled with defaults for any
// unset values.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(config *Config) {
	def := Default()
	if config.Simulation == nil {
		config.Simulation = def.Simulation
	} else {
		if config.Simulation.Iterations <= 0 {
			config.Simulation.Iterations = def.Simulation.Iterations
		}
		if config.Simulation.ProgressInterval <= 0 {
			config.Simulation.ProgressInterval = def.Simulation.ProgressInterval
		}
		if config.Simulation.Workers <= 0 {
			config.Simulation.Workers = def.Simulation.Workers
		}
	}
	if config.Blackjack == nil {
		config.Blackjack = def.Blackjack
	} else {
		if config.Blackjack.Decks <= 0 {
			config.Blackjack.Decks = def.Blackjack.Decks
		}
		if config.Blackjack.Wager <= 0 {
			config.Blackjack.Wager = def.Blackjack.Wager
		}
	}
	if config.RideBus == nil {
		config.RideBus = def.RideBus
	} else {
		if config.RideBus.Wager <= 0 {
			config.RideBus.Wager = def.RideBus.Wager
		}
		if config.RideBus.Strategy == "" {
			config.RideBus.Strategy = def.RideBus.Strategy
		}
	}
}
