// Package config provides configuration for the euchre engine hosts
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"euchre-engine/internal/util"
	"euchre-engine/pkg/euchre"
)

// Config provides configuration for the simulation and insight hosts
type Config struct {
	loaded bool

	Log struct {
		Level string `yaml:"level" envconfig:"level"`
	} `yaml:"log"`

	Simulation struct {
		Games          int   `yaml:"games" envconfig:"games"`
		ChunkSize      int   `yaml:"chunkSize" envconfig:"chunk_size"`
		StickTheDealer bool  `yaml:"stickTheDealer" envconfig:"stick_the_dealer"`
		Seed           int64 `yaml:"seed" envconfig:"seed"`
	} `yaml:"simulation"`

	// Seats configures the strategy for each of the four seats.
	// Seats are filled with the default strategy when the file omits them.
	Seats []euchre.Strategy `yaml:"seats" ignored:"true"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration.
// A missing config file is not an error; defaults apply.
func Load() error {
	config = defaultConfig()

	configFile := util.Getenv("EUCHRE_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("euchre", &config); err != nil {
		return err
	}

	if err := config.validate(); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

func defaultConfig() Config {
	c := Config{}
	c.Simulation.Games = 1000
	c.Simulation.ChunkSize = 50
	return c
}

// Strategies returns the per-seat strategy table, padded with defaults
func (c Config) Strategies() [euchre.NumSeats]euchre.Strategy {
	var strategies [euchre.NumSeats]euchre.Strategy
	for seat := range strategies {
		if seat < len(c.Seats) {
			strategies[seat] = c.Seats[seat]
		} else {
			strategies[seat] = euchre.DefaultStrategy()
		}
	}

	return strategies
}

func (c Config) validate() error {
	if len(c.Seats) > euchre.NumSeats {
		return fmt.Errorf("expected at most %d seat strategies, got %d", euchre.NumSeats, len(c.Seats))
	}

	for seat, strategy := range c.Seats {
		if err := strategy.Validate(); err != nil {
			return fmt.Errorf("seat %d: %w", seat, err)
		}
	}

	return nil
}
