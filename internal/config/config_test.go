package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"euchre-engine/internal/util"
	"euchre-engine/pkg/euchre"
)

func TestLoad_Defaults(t *testing.T) {
	reset := util.SetEnv("EUCHRE_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	defer reset()

	require.NoError(t, Load())

	a := assert.New(t)
	c := Instance()
	a.Equal(1000, c.Simulation.Games)
	a.Equal(50, c.Simulation.ChunkSize)
	a.False(c.Simulation.StickTheDealer)
	a.Empty(c.Seats)

	for _, strategy := range c.Strategies() {
		a.Equal(euchre.DefaultStrategy(), strategy)
	}
}

func TestLoad_File(t *testing.T) {
	const data = `log:
  level: warn
simulation:
  games: 25
  chunkSize: 5
  stickTheDealer: true
  seed: 7
seats:
  - r1Threshold: 15
    r2Threshold: 14
    lonerThreshold: 30
    leadWhenMaker: best_trump
    leadWhenPartnerMaker: best_offsuit
    leadOnDefense: default
    overtrumpOpponent: true
    dealerDiscardStrategy: lowest_non_trump
`

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	reset := util.SetEnv("EUCHRE_CONFIG_FILE", path)
	defer reset()

	require.NoError(t, Load())

	a := assert.New(t)
	c := Instance()
	a.Equal("warn", c.Log.Level)
	a.Equal(25, c.Simulation.Games)
	a.Equal(5, c.Simulation.ChunkSize)
	a.True(c.Simulation.StickTheDealer)
	a.Equal(int64(7), c.Simulation.Seed)

	strategies := c.Strategies()
	a.Equal(15.0, strategies[0].R1Threshold)
	a.Equal(euchre.LeadBestTrump, strategies[0].LeadWhenMaker)
	a.True(strategies[0].OvertrumpOpponent)

	// unspecified seats fall back to the default strategy
	a.Equal(euchre.DefaultStrategy(), strategies[1])
}

func TestLoad_EnvOverride(t *testing.T) {
	resetFile := util.SetEnv("EUCHRE_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	defer resetFile()

	resetGames := util.SetEnv("EUCHRE_SIMULATION_GAMES", "42")
	defer resetGames()

	resetLevel := util.SetEnv("EUCHRE_LOG_LEVEL", "debug")
	defer resetLevel()

	require.NoError(t, Load())

	a := assert.New(t)
	a.Equal(42, Instance().Simulation.Games)
	a.Equal("debug", Instance().Log.Level)
}

func TestLoad_InvalidSeat(t *testing.T) {
	const data = `seats:
  - r1Threshold: -3
`

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	reset := util.SetEnv("EUCHRE_CONFIG_FILE", path)
	defer reset()

	err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seat 0")
}
