package queue

import (
	"testing"
)

// benchConfigs defines the steady-state queue depths for benchmarking.
var benchConfigs = []struct {
	name  string
	depth int
}{
	{"Depth16", 16},
	{"Depth1K", 1024},
	{"Depth64K", 64 * 1024},
}

// BenchmarkPushPop keeps the queue at a fixed depth: one push, one pop per iteration.
func BenchmarkPushPop(b *testing.B) {
	for _, cfg := range benchConfigs {
		b.Run(cfg.name, func(b *testing.B) {
			q := New[int]()
			for i := 0; i < cfg.depth; i++ {
				q.Push(i)
			}
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				q.Push(i)
				q.Pop()
			}
		})
	}
}

// BenchmarkFillDrain pushes depth items then pops all of them.
func BenchmarkFillDrain(b *testing.B) {
	for _, cfg := range benchConfigs {
		b.Run(cfg.name, func(b *testing.B) {
			q := New[int]()
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				for j := 0; j < cfg.depth; j++ {
					q.Push(j)
				}
				for !q.Empty() {
					q.Pop()
				}
			}
		})
	}
}

// BenchmarkSliceQueue is the naive q = q[1:] queue for comparison.
func BenchmarkSliceQueue(b *testing.B) {
	for _, cfg := range benchConfigs {
		b.Run(cfg.name, func(b *testing.B) {
			q := make([]int, 0, cfg.depth)
			for i := 0; i < cfg.depth; i++ {
				q = append(q, i)
			}
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				q = append(q, i)
				q = q[1:]
			}
		})
	}
}

func BenchmarkIterate(b *testing.B) {
	q := New[int]()
	for i := 0; i < 4096; i++ {
		q.Push(i)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sum := 0
		for v := range q.Values() {
			sum += v
		}
		_ = sum
	}
}
