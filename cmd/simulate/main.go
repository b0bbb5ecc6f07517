package main

import (
	"encoding/json"
	"flag"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"euchre-engine/internal/config"
	"euchre-engine/pkg/simulator"
)

// Version is the simulator version
var Version = "v0.0.0-dev"

var (
	games = flag.Int("games", 0, "number of games to simulate (0 = use config)")
	chunk = flag.Int("chunk", 0, "games per chunk (0 = use config)")
	stick = flag.Bool("stick-the-dealer", false, "force the dealer to call when both rounds pass")
	seed  = flag.Int64("seed", 0, "seed for a deterministic run (0 = random)")
)

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	opts := simulator.Options{
		Games:          cfg.Simulation.Games,
		ChunkSize:      cfg.Simulation.ChunkSize,
		StickTheDealer: cfg.Simulation.StickTheDealer || *stick,
		Seed:           cfg.Simulation.Seed,
	}

	if *games > 0 {
		opts.Games = *games
	}

	if *chunk > 0 {
		opts.ChunkSize = *chunk
	}

	if *seed > 0 {
		opts.Seed = *seed
	}

	sim, err := simulator.New(logrus.WithField("version", Version), cfg.Strategies(), opts)
	if err != nil {
		logrus.WithError(err).Fatal("could not create simulator")
	}

	logrus.WithFields(logrus.Fields{
		"games":          opts.Games,
		"chunkSize":      opts.ChunkSize,
		"stickTheDealer": opts.StickTheDealer,
	}).Info("starting batch")

	for {
		done, err := sim.ProcessChunk()
		if err != nil {
			logrus.WithError(err).Fatal("batch failed")
		}

		logrus.WithField("gamesDone", sim.GamesDone()).Info("chunk complete")

		if done {
			break
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sim.Stats()); err != nil {
		logrus.WithError(err).Fatal("could not encode stats")
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
