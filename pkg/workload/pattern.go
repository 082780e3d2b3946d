package workload

import "github.com/pkg/errors"

// Pattern selects how pushes and pops interleave in a trace.
type Pattern string

const (
	// Steady fills Burst elements, then alternates push and pop.
	Steady Pattern = "steady"
	// Burst pushes Burst elements, then pops Burst elements, repeatedly.
	Burst Pattern = "burst"
	// Drain pushes for the first half of the trace and pops for the second half.
	Drain Pattern = "drain"
	// Sawtooth pushes 2*Burst elements, then pops Burst elements, repeatedly.
	Sawtooth Pattern = "sawtooth"
)

// ErrUnknownPattern is returned for a pattern name that is not one of the constants above.
var ErrUnknownPattern = errors.New("workload: unknown pattern")

// schedule reports whether operation i of n is a push.
type schedule func(i int) bool

func newSchedule(p Pattern, n, burst int) (schedule, error) {
	if burst < 1 {
		burst = 1
	}
	switch p {
	case Steady:
		return func(i int) bool { return i < burst || (i-burst)%2 == 0 }, nil
	case Burst:
		return func(i int) bool { return i%(2*burst) < burst }, nil
	case Drain:
		return func(i int) bool { return i < n/2 }, nil
	case Sawtooth:
		return func(i int) bool { return i%(3*burst) < 2*burst }, nil
	default:
		return nil, errors.Wrapf(ErrUnknownPattern, "%q", string(p))
	}
}
