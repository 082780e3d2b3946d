package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-flatqueue/pkg/settings"
)

func TestBuildOptions(t *testing.T) {
	logger := zap.NewNop()
	tests := []struct {
		name string
		opts []Option
		want Options
	}{
		{"defaults", nil, Options{GrowthFactor: 2, ReclaimFactor: 2}},
		{"growth", []Option{WithGrowthFactor(1.5)}, Options{GrowthFactor: 1.5, ReclaimFactor: 2}},
		{"reclaim", []Option{WithReclaimFactor(4)}, Options{GrowthFactor: 2, ReclaimFactor: 4}},
		{"below_one_ignored", []Option{WithGrowthFactor(0.5), WithReclaimFactor(0)}, Options{GrowthFactor: 2, ReclaimFactor: 2}},
		{"growth_one_ignored", []Option{WithGrowthFactor(1)}, Options{GrowthFactor: 2, ReclaimFactor: 2}},
		{"reclaim_one", []Option{WithReclaimFactor(1)}, Options{GrowthFactor: 2, ReclaimFactor: 1}},
		{"logger", []Option{WithLogger(logger)}, Options{GrowthFactor: 2, ReclaimFactor: 2, Logger: logger}},
		{"config", []Option{WithConfig(settings.FlatQueue{GrowthFactor: 1.25, ReclaimFactor: 3})}, Options{GrowthFactor: 1.25, ReclaimFactor: 3}},
		{"last_wins", []Option{WithGrowthFactor(3), WithGrowthFactor(1.5)}, Options{GrowthFactor: 1.5, ReclaimFactor: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildOptions(tt.opts))
		})
	}
}

func TestWithConfig_GrowthOneKeepsAmortizedPush(t *testing.T) {
	q := New[int](WithConfig(settings.FlatQueue{GrowthFactor: 1, ReclaimFactor: 2}))
	for i := range 1000 {
		q.Push(i)
	}
	// doubling from 1 to 1024
	assert.Equal(t, 11, q.Stats().Reallocations)
	assert.Equal(t, 1024, q.Cap())
}

func TestStats_Record(t *testing.T) {
	var s Stats
	for _, r := range []string{reasonGrow, reasonGrow, reasonReclaim, reasonCompact, reasonReserve} {
		s.record(r)
	}
	assert.Equal(t, Stats{Reallocations: 5, Grows: 2, Reclaims: 1, Compactions: 1, Reserves: 1}, s)
}
