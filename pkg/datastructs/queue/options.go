package queue

import (
	"go.uber.org/zap"

	"github.com/huynhanx03/go-flatqueue/pkg/settings"
)

// Options configures the compaction policy of a FlatQueue.
type Options struct {
	// GrowthFactor is applied to the logical size when a push finds the buffer full.
	GrowthFactor float64
	// ReclaimFactor is applied to the logical size when dead space exceeds half the buffer.
	ReclaimFactor float64
	// Logger receives a debug entry for every reallocation. Nil disables logging.
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		GrowthFactor:  DefaultGrowthFactor,
		ReclaimFactor: DefaultReclaimFactor,
	}
}

func buildOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithGrowthFactor sets the growth factor. Values not above 1 are ignored:
// a factor of 1 would reallocate on every push into a full buffer.
func WithGrowthFactor(f float64) Option {
	return func(o *Options) {
		if f > 1 {
			o.GrowthFactor = f
		}
	}
}

// WithReclaimFactor sets the reclaim factor. Values below 1 are ignored.
func WithReclaimFactor(f float64) Option {
	return func(o *Options) {
		if f >= 1 {
			o.ReclaimFactor = f
		}
	}
}

// WithLogger attaches a logger used for reallocation traces.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithConfig applies the factors loaded from settings.
func WithConfig(cfg settings.FlatQueue) Option {
	return func(o *Options) {
		WithGrowthFactor(cfg.GrowthFactor)(o)
		WithReclaimFactor(cfg.ReclaimFactor)(o)
	}
}
