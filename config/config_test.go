// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epinet/config"
	"github.com/katalvlaran/epinet/epidemic"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.Epidemic.Iterations)
	assert.Equal(t, 10, cfg.Epidemic.InitialInfected)
	assert.Equal(t, epidemic.Params{J: 1, Tau: 0.1, Gamma: 0.1, Iterations: 100, InitialInfected: 10}, cfg.Epidemic.Params())
}

func TestLoad_YAMLOverlaysDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "epinet.yaml"))
	require.NoError(t, err)

	assert.Equal(t, config.KindGrid, cfg.Graph.Kind)
	assert.Equal(t, 10, cfg.Graph.Rows)
	assert.Equal(t, 0.3, cfg.Epidemic.Tau)
	assert.Equal(t, 4, cfg.Epidemic.InitialInfected)
	assert.Equal(t, int64(42), cfg.Epidemic.Seed)
	assert.Equal(t, 0.25, cfg.Infonet.Q)
	assert.Equal(t, 120, cfg.Infonet.Virtual.N)
	assert.Equal(t, []float64{1, 2, 4}, cfg.Sweep.J)
	assert.Equal(t, "bar", cfg.Output.Progress)
	assert.Equal(t, "json", cfg.Logging.Format)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, config.Default().Infonet.Seed, cfg.Infonet.Seed)
}

func TestLoad_EnvironmentWins(t *testing.T) {
	t.Setenv("EPINET_EPIDEMIC_TAU", "0.9")
	t.Setenv("EPINET_EPIDEMIC_INITIAL_INFECTED", "7")
	t.Setenv("EPINET_SWEEP_H", "0.1,0.2")
	t.Setenv("EPINET_LOGGING_LEVEL", "warn")
	t.Setenv("EPINET_INFONET_VIRTUAL_KIND", "cycle")

	cfg, err := config.Load(filepath.Join("testdata", "epinet.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 0.9, cfg.Epidemic.Tau)
	assert.Equal(t, 7, cfg.Epidemic.InitialInfected)
	assert.Equal(t, []float64{0.1, 0.2}, cfg.Sweep.H)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, config.KindCycle, cfg.Infonet.Virtual.Kind)
}

func TestLoad_Dotenv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("EPINET_EPIDEMIC_GAMMA=0.75\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("EPINET_EPIDEMIC_GAMMA") })

	cfg, err := config.Load("", filepath.Join(dir, "missing.env"), envFile)
	require.NoError(t, err)
	assert.Equal(t, 0.75, cfg.Epidemic.Gamma)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)

	_, err = config.Load(filepath.Join("testdata", "unknown_key.yaml"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(filepath.Join("testdata", "out_of_range.yaml"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "Epidemic.Tau: must not exceed 1")
	assert.Contains(t, err.Error(), "Epidemic.Gamma: must be at least 0")
	assert.Contains(t, err.Error(), "Logging.Format: must be one of [console json]")

	t.Setenv("EPINET_EPIDEMIC_ITERATIONS", "many")
	_, err = config.Load("")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate_ConditionalFields(t *testing.T) {
	cfg := config.Default()
	cfg.Graph = config.GraphConfig{Kind: config.KindFile}
	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "Graph.Path: field is required")

	cfg = config.Default()
	cfg.Graph = config.GraphConfig{Kind: config.KindGrid, Rows: 3}
	err = cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "Graph.Cols")

	cfg = config.Default()
	cfg.Logging.Output = "file"
	require.Error(t, cfg.Validate())
	cfg.Logging.FilePath = "epinet.log"
	require.NoError(t, cfg.Validate())
}

func TestMarshalRoundTrip(t *testing.T) {
	raw, err := config.Marshal(config.Default())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
