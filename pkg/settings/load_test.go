package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Function: Parse()
// =============================================================================

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("simulation:\n  workloads:\n    - name: a\n      operations: 10\n"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.LogLevel)
	assert.Equal(t, 2.0, cfg.FlatQueue.GrowthFactor)
	assert.Equal(t, 2.0, cfg.FlatQueue.ReclaimFactor)
	assert.Equal(t, 4, cfg.Simulation.Workers)
	require.Len(t, cfg.Simulation.Workloads, 1)
	assert.Equal(t, "steady", cfg.Simulation.Workloads[0].Pattern)
	assert.Equal(t, 64, cfg.Simulation.Workloads[0].Burst)
}

func TestParse_Overrides(t *testing.T) {
	raw := `
logger:
  log_level: debug
  max_size: 10
flat_queue:
  growth_factor: 1.5
  reclaim_factor: 3
simulation:
  workers: 2
  workloads:
    - name: spiky
      pattern: burst
      operations: 500
      burst: 32
      seed: 7
`
	cfg, err := Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, 10, cfg.Logger.MaxSize)
	assert.Equal(t, 1.5, cfg.FlatQueue.GrowthFactor)
	assert.Equal(t, 3.0, cfg.FlatQueue.ReclaimFactor)
	assert.Equal(t, 2, cfg.Simulation.Workers)
	assert.Equal(t, Workload{Name: "spiky", Pattern: "burst", Operations: 500, Burst: 32, Seed: 7}, cfg.Simulation.Workloads[0])
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed_yaml", "flat_queue: [1, 2"},
		{"growth_below_one", "flat_queue:\n  growth_factor: 0.5\n"},
		{"growth_equal_one", "flat_queue:\n  growth_factor: 1\n"},
		{"reclaim_below_one", "flat_queue:\n  reclaim_factor: 0.9\n"},
		{"unknown_level", "logger:\n  log_level: loud\n"},
		{"negative_workers", "simulation:\n  workers: -1\n"},
		{"unknown_pattern", "simulation:\n  workloads:\n    - name: x\n      pattern: zigzag\n      operations: 1\n"},
		{"missing_name", "simulation:\n  workloads:\n    - operations: 1\n"},
		{"zero_operations", "simulation:\n  workloads:\n    - name: x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

// =============================================================================
// Function: Load()
// =============================================================================

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flatqueue.yaml")
	require.NoError(t, os.WriteFile(path, []byte("flat_queue:\n  growth_factor: 1.5\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.FlatQueue.GrowthFactor)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// =============================================================================
// Function: Default()
// =============================================================================

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Simulation.Workloads, 4)
	for _, w := range cfg.Simulation.Workloads {
		assert.Equal(t, 64, w.Burst, w.Name)
	}
}
