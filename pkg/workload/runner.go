package workload

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-flatqueue/pkg/datastructs/queue"
	"github.com/huynhanx03/go-flatqueue/pkg/hash"
	"github.com/huynhanx03/go-flatqueue/pkg/settings"
)

// ctxCheckInterval is the number of operations between context checks.
const ctxCheckInterval = 4096

// ErrChecksumMismatch is returned when the dequeued sequence differs from the enqueued one.
var ErrChecksumMismatch = errors.New("workload: dequeued sequence does not match enqueued sequence")

// Report summarizes one replayed trace.
type Report struct {
	Name       string
	Pattern    Pattern
	Operations int
	Pushes     int
	Pops       int
	FinalSize  int // elements left before the final drain
	PeakCap    int
	MaxDead    int
	Stats      queue.Stats
	ChecksumOK bool
	Elapsed    time.Duration
}

// Run replays w against a fresh FlatQueue built with opts.
// Every pushed value is hashed on the way in and on the way out; after the
// trace the queue is drained so both hashes cover the same values.
func Run(ctx context.Context, w settings.Workload, opts ...queue.Option) (Report, error) {
	next, err := newSchedule(Pattern(w.Pattern), w.Operations, w.Burst)
	if err != nil {
		return Report{}, errors.Wrapf(err, "workload %s", w.Name)
	}

	start := time.Now()
	rng := rand.New(rand.NewPCG(w.Seed, w.Seed^0x9e3779b97f4a7c15))
	q := queue.New[uint64](opts...)
	in, out := hash.NewStream(), hash.NewStream()
	r := Report{Name: w.Name, Pattern: Pattern(w.Pattern), Operations: w.Operations}

	for i := 0; i < w.Operations; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Report{}, errors.Wrapf(err, "workload %s", w.Name)
			}
		}

		if next(i) || q.Empty() {
			v := rng.Uint64()
			in.AddUint64(v)
			q.Push(v)
			r.Pushes++
		} else {
			out.AddUint64(q.Pop())
			r.Pops++
		}

		r.PeakCap = max(r.PeakCap, q.Cap())
		r.MaxDead = max(r.MaxDead, q.Offset())
	}

	r.FinalSize = q.Len()
	for v := range q.Values() {
		out.AddUint64(v)
	}
	q.Clear()

	r.Stats = q.Stats()
	r.Elapsed = time.Since(start)
	r.ChecksumOK = in.Sum64() == out.Sum64()
	if !r.ChecksumOK {
		return r, errors.Wrapf(ErrChecksumMismatch, "workload %s", w.Name)
	}
	return r, nil
}

// RunAll runs every workload on its own queue, at most workers at a time.
// Reports are returned in the order of ws. The first error cancels the rest.
func RunAll(ctx context.Context, ws []settings.Workload, workers int, opts ...queue.Option) ([]Report, error) {
	reports := make([]Report, len(ws))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i, w := range ws {
		g.Go(func() error {
			r, err := Run(ctx, w, opts...)
			reports[i] = r
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return reports, err
	}
	return reports, nil
}
