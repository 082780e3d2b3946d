package queue

import (
	"fmt"
	"iter"
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-flatqueue/pkg/utils"
)

var _ Queue[int] = (*FlatQueue[int])(nil)

// FlatQueue is a FIFO queue stored in one contiguous slice.
// Popped elements are not removed: they stay in the buffer as a dead prefix
// in front of the live window until a reallocation moves the live window
// back to index 0. Push grows the buffer by GrowthFactor when it is full;
// Pop reclaims the dead prefix once it exceeds half of the buffer length.
//
// Invalidation: Push that grows, Pop that reclaims, Reserve, Grow, Compact,
// ShrinkToFit, Clear, Assign, CopyFrom, MoveFrom, Release and Swap all
// invalidate slices returned by Data, pointers returned by Ref/FrontRef/BackRef
// and every Cursor. Generation changes whenever that happens.
//
// The zero value is an empty queue with default options.
// It is NOT thread-safe.
type FlatQueue[T any] struct {
	data  []T    // backing storage; [0, front) is dead
	front int    // index of the first live element
	gen   uint64 // bumped on every reallocation or replacement of data
	opts  Options
	stats Stats
}

// New creates an empty queue. No memory is allocated until the first push.
func New[T any](opts ...Option) *FlatQueue[T] {
	return &FlatQueue[T]{opts: buildOptions(opts)}
}

// FromSlice creates a queue that takes ownership of s. The caller must not use s afterwards.
func FromSlice[T any](s []T, opts ...Option) *FlatQueue[T] {
	q := New[T](opts...)
	q.data = s
	return q
}

// CopyOf creates a queue holding a copy of s.
func CopyOf[T any](s []T, opts ...Option) *FlatQueue[T] {
	return FromSlice(exactCopy(s), opts...)
}

// FromSeq creates a queue from the values produced by seq, in order.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) *FlatQueue[T] {
	return FromSlice(slices.Collect(seq), opts...)
}

// Of creates a queue holding elems with default options.
func Of[T any](elems ...T) *FlatQueue[T] {
	return CopyOf(elems)
}

// Clone returns an independent queue with the same live elements and options.
// The dead prefix is not copied.
func (q *FlatQueue[T]) Clone() *FlatQueue[T] {
	return &FlatQueue[T]{data: exactCopy(q.Data()), opts: q.opts}
}

// CopyFrom replaces the contents of q with a copy of the live elements of src.
func (q *FlatQueue[T]) CopyFrom(src *FlatQueue[T]) {
	if q == src {
		return
	}
	tmp := FlatQueue[T]{data: exactCopy(src.Data())}
	q.swapBuffers(&tmp)
}

// MoveFrom transfers the buffer of src to q. src is left empty with no buffer.
func (q *FlatQueue[T]) MoveFrom(src *FlatQueue[T]) {
	if q == src {
		return
	}
	q.data, q.front = src.data, src.front
	src.data, src.front = nil, 0
	q.gen++
	src.gen++
}

// Release returns the live elements and leaves q empty with no buffer.
// The returned slice is owned by the caller.
func (q *FlatQueue[T]) Release() []T {
	out := q.Data()
	q.data, q.front = nil, 0
	q.gen++
	return out
}

// Assign replaces the contents of q with elems. Existing capacity is reused when it suffices;
// otherwise the buffer is reallocated to exactly len(elems).
func (q *FlatQueue[T]) Assign(elems ...T) {
	if len(elems) > cap(q.data) {
		oldCap := cap(q.data)
		q.data = exactCopy(elems)
		q.front = 0
		q.gen++
		q.stats.record(reasonReserve)
		q.logRealloc(reasonReserve, oldCap)
		return
	}
	old := len(q.data)
	q.data = append(q.data[:0], elems...)
	if n := len(q.data); n < old {
		clear(q.data[n:old])
	}
	q.front = 0
	q.gen++
}

// AssignSeq replaces the contents of q with the values produced by seq.
func (q *FlatQueue[T]) AssignSeq(seq iter.Seq[T]) {
	q.Assign(slices.Collect(seq)...)
}

// Swap exchanges the buffers of q and other. Options and stats stay with their queue.
func (q *FlatQueue[T]) Swap(other *FlatQueue[T]) {
	if q == other {
		return
	}
	q.swapBuffers(other)
}

func (q *FlatQueue[T]) swapBuffers(other *FlatQueue[T]) {
	q.data, other.data = other.data, q.data
	q.front, other.front = other.front, q.front
	q.gen++
	other.gen++
}

// Empty reports whether the queue holds no live elements.
func (q *FlatQueue[T]) Empty() bool { return len(q.data) == q.front }

// Len returns the number of live elements.
func (q *FlatQueue[T]) Len() int { return len(q.data) - q.front }

// Size is an alias of Len.
func (q *FlatQueue[T]) Size() int { return q.Len() }

// Cap returns the capacity of the backing buffer, dead prefix included.
func (q *FlatQueue[T]) Cap() int { return cap(q.data) }

// Offset returns the number of dead elements in front of the live window.
func (q *FlatQueue[T]) Offset() int { return q.front }

// BufferLen returns the length of the backing buffer, dead prefix included.
func (q *FlatQueue[T]) BufferLen() int { return len(q.data) }

// Generation identifies the current backing buffer.
func (q *FlatQueue[T]) Generation() uint64 { return q.gen }

// Stats returns the reallocation counters.
func (q *FlatQueue[T]) Stats() Stats { return q.stats }

// Front returns the next element to be dequeued. The queue must not be empty.
func (q *FlatQueue[T]) Front() T { return q.data[q.front] }

// Back returns the most recently pushed element. The queue must not be empty.
func (q *FlatQueue[T]) Back() T { return q.data[len(q.data)-1] }

// FrontRef returns a pointer to the front element. The queue must not be empty.
func (q *FlatQueue[T]) FrontRef() *T { return &q.data[q.front] }

// BackRef returns a pointer to the back element. The queue must not be empty.
func (q *FlatQueue[T]) BackRef() *T { return &q.data[len(q.data)-1] }

// At returns the element at logical position pos (0 is the front).
// pos is not checked against Len; use Get for a checked read.
func (q *FlatQueue[T]) At(pos int) T { return q.data[q.front+pos] }

// Ref returns a pointer to the element at logical position pos. pos is not checked.
func (q *FlatQueue[T]) Ref(pos int) *T { return &q.data[q.front+pos] }

// Set overwrites the element at logical position pos. pos is not checked.
func (q *FlatQueue[T]) Set(pos int, v T) { q.data[q.front+pos] = v }

// Get returns the element at logical position pos, or ErrOutOfRange.
func (q *FlatQueue[T]) Get(pos int) (T, error) {
	if pos < 0 || pos >= q.Len() {
		var zero T
		return zero, errors.Wrapf(ErrOutOfRange, "position %d, size %d", pos, q.Len())
	}
	return q.data[q.front+pos], nil
}

// Peek returns the front element without removing it.
// Returns (zero, false) if the queue is empty.
func (q *FlatQueue[T]) Peek() (T, bool) {
	if q.Empty() {
		var zero T
		return zero, false
	}
	return q.data[q.front], true
}

// Data returns the live window. It shares storage with the queue and is valid
// until the next call that changes Generation. Appending to it never writes
// into the queue.
func (q *FlatQueue[T]) Data() []T {
	n := len(q.data)
	return q.data[q.front:n:n]
}

// Push appends v to the back of the queue.
func (q *FlatQueue[T]) Push(v T) {
	q.ensureRoom(1)
	q.data = append(q.data, v)
}

// Emplace appends a zero value and returns a pointer to it for in-place initialization.
func (q *FlatQueue[T]) Emplace() *T {
	q.ensureRoom(1)
	var zero T
	q.data = append(q.data, zero)
	return &q.data[len(q.data)-1]
}

// PushAll appends vals in order, reallocating at most once.
func (q *FlatQueue[T]) PushAll(vals ...T) {
	if len(vals) == 0 {
		return
	}
	q.ensureRoom(len(vals))
	q.data = append(q.data, vals...)
}

// Pop removes and returns the front element. The queue must not be empty.
func (q *FlatQueue[T]) Pop() T {
	var zero T
	v := q.data[q.front]
	q.data[q.front] = zero
	q.front++

	if q.front > len(q.data)/2 {
		q.compact(utils.ScaleCapacity(q.Len(), q.reclaimFactor()), reasonReclaim)
	}
	return v
}

// TryPop removes and returns the front element.
// Returns (zero, false) if the queue is empty.
func (q *FlatQueue[T]) TryPop() (T, bool) {
	if q.Empty() {
		var zero T
		return zero, false
	}
	return q.Pop(), true
}

// Enqueue implements Queue. It never fails.
func (q *FlatQueue[T]) Enqueue(item T) bool {
	q.Push(item)
	return true
}

// Dequeue implements Queue.
func (q *FlatQueue[T]) Dequeue() (T, bool) { return q.TryPop() }

// Capacity implements Queue.
func (q *FlatQueue[T]) Capacity() uint64 { return uint64(cap(q.data)) }

// Clear removes every element. The capacity is retained.
func (q *FlatQueue[T]) Clear() {
	clear(q.data)
	q.data = q.data[:0]
	q.front = 0
	q.gen++
}

// Compact moves the live window to a fresh buffer of capacity ceil(Len() * factor),
// never less than Len(). The dead prefix is dropped.
func (q *FlatQueue[T]) Compact(factor float64) {
	q.compact(utils.ScaleCapacity(q.Len(), factor), reasonCompact)
}

// ShrinkToFit reallocates the buffer to exactly Len() elements.
func (q *FlatQueue[T]) ShrinkToFit() { q.Compact(1) }

// Reserve sets the capacity to n, or to Len() if n is smaller.
// On an empty queue it only ever grows the buffer.
func (q *FlatQueue[T]) Reserve(n int) {
	if q.Empty() {
		if n > cap(q.data) {
			q.compact(n, reasonReserve)
		}
		return
	}
	q.compact(max(n, q.Len()), reasonReserve)
}

// Grow guarantees room for n more pushes without another reallocation.
func (q *FlatQueue[T]) Grow(n int) {
	if n <= 0 || cap(q.data)-len(q.data) >= n {
		return
	}
	q.compact(q.Len()+n, reasonReserve)
}

// String formats the live window.
func (q *FlatQueue[T]) String() string {
	return fmt.Sprintf("FlatQueue%v", q.Data())
}

// ensureRoom compacts with the growth factor when extra more elements do not fit.
func (q *FlatQueue[T]) ensureRoom(extra int) {
	if len(q.data)+extra <= cap(q.data) {
		return
	}
	q.compact(utils.GrowCapacity(q.Len(), extra, q.growthFactor()), reasonGrow)
}

// compact is the only place the buffer is reallocated.
// The new buffer is fully built before q is touched.
func (q *FlatQueue[T]) compact(capacity int, reason string) {
	live := q.data[q.front:]
	buf := make([]T, len(live), capacity)
	copy(buf, live)

	oldCap := cap(q.data)
	q.data = buf
	q.front = 0
	q.gen++
	q.stats.record(reason)
	q.logRealloc(reason, oldCap)
}

func (q *FlatQueue[T]) logRealloc(reason string, oldCap int) {
	if q.opts.Logger == nil {
		return
	}
	if ce := q.opts.Logger.Check(zap.DebugLevel, "flatqueue buffer reallocated"); ce != nil {
		ce.Write(
			zap.String("reason", reason),
			zap.Int("size", len(q.data)),
			zap.Int("old_cap", oldCap),
			zap.Int("new_cap", cap(q.data)),
			zap.Uint64("generation", q.gen),
		)
	}
}

func (q *FlatQueue[T]) growthFactor() float64 {
	if q.opts.GrowthFactor > 1 {
		return q.opts.GrowthFactor
	}
	return DefaultGrowthFactor
}

func (q *FlatQueue[T]) reclaimFactor() float64 {
	if q.opts.ReclaimFactor >= 1 {
		return q.opts.ReclaimFactor
	}
	return DefaultReclaimFactor
}

// exactCopy copies s into a buffer whose capacity equals its length.
func exactCopy[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
