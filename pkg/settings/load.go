package settings

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel      = "info"
	defaultGrowthFactor  = 2.0
	defaultReclaimFactor = 2.0
	defaultWorkers       = 4
	defaultBurst         = 64
)

// Default returns the configuration used when no file is given.
func Default() Config {
	cfg := Config{
		Simulation: Simulation{
			Workloads: []Workload{
				{Name: "steady", Pattern: "steady", Operations: 100_000},
				{Name: "burst", Pattern: "burst", Operations: 100_000},
				{Name: "drain", Pattern: "drain", Operations: 100_000},
				{Name: "sawtooth", Pattern: "sawtooth", Operations: 100_000},
			},
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

// Load reads a YAML file, fills unset fields with defaults and validates the result.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config")
	}
	return Parse(raw)
}

// Parse decodes YAML, fills unset fields with defaults and validates the result.
func Parse(raw []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyDefaults fills zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaultLogLevel
	}
	if c.FlatQueue.GrowthFactor == 0 {
		c.FlatQueue.GrowthFactor = defaultGrowthFactor
	}
	if c.FlatQueue.ReclaimFactor == 0 {
		c.FlatQueue.ReclaimFactor = defaultReclaimFactor
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = defaultWorkers
	}
	for i := range c.Simulation.Workloads {
		w := &c.Simulation.Workloads[i]
		if w.Pattern == "" {
			w.Pattern = "steady"
		}
		if w.Burst == 0 {
			w.Burst = defaultBurst
		}
	}
}

// Validate checks the struct tags of the whole configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
