package settings

type Config struct {
	Logger     Logger     `mapstructure:"logger" yaml:"logger"`
	FlatQueue  FlatQueue  `mapstructure:"flat_queue" yaml:"flat_queue"`
	Simulation Simulation `mapstructure:"simulation" yaml:"simulation"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `mapstructure:"file_log_name" yaml:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age" validate:"gte=0"`   // Days
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// FlatQueue is the compaction policy of a flat queue
type FlatQueue struct {
	GrowthFactor  float64 `mapstructure:"growth_factor" yaml:"growth_factor" validate:"gt=1"`
	ReclaimFactor float64 `mapstructure:"reclaim_factor" yaml:"reclaim_factor" validate:"gte=1"`
}

// Simulation is the configuration for the workload simulator
type Simulation struct {
	Workers   int        `mapstructure:"workers" yaml:"workers" validate:"gte=1"`
	Workloads []Workload `mapstructure:"workloads" yaml:"workloads" validate:"dive"`
}

// Workload describes one synthetic push/pop trace
type Workload struct {
	Name       string `mapstructure:"name" yaml:"name" validate:"required"`
	Pattern    string `mapstructure:"pattern" yaml:"pattern" validate:"oneof=steady burst drain sawtooth"`
	Operations int    `mapstructure:"operations" yaml:"operations" validate:"gte=1"`
	Burst      int    `mapstructure:"burst" yaml:"burst" validate:"gte=1"`
	Seed       uint64 `mapstructure:"seed" yaml:"seed"`
}
