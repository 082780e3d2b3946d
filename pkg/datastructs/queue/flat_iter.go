package queue

import "iter"

// All returns an iterator over the live elements from front to back,
// yielding logical positions and values.
func (q *FlatQueue[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range q.Data() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements from front to back.
func (q *FlatQueue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range q.Data() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over the live elements from back to front,
// yielding logical positions and values.
func (q *FlatQueue[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		live := q.Data()
		for i := len(live) - 1; i >= 0; i-- {
			if !yield(i, live[i]) {
				return
			}
		}
	}
}

// Range calls fn with a pointer to each live element, front to back.
// It stops when fn returns false.
func (q *FlatQueue[T]) Range(fn func(pos int, v *T) bool) {
	live := q.Data()
	for i := range live {
		if !fn(i, &live[i]) {
			return
		}
	}
}

// Cursor is a position in the backing buffer of a FlatQueue.
// Like a slice index it survives pushes and pops that do not reallocate;
// using it after a reallocation panics with ErrStaleCursor.
// Cursors come from Begin or RBegin; the zero Cursor is never valid.
type Cursor[T any] struct {
	q    *FlatQueue[T]
	gen  uint64
	pos  int // physical index into q.data
	step int
}

// Begin returns a cursor on the front element moving towards the back.
func (q *FlatQueue[T]) Begin() Cursor[T] {
	return Cursor[T]{q: q, gen: q.gen, pos: q.front, step: 1}
}

// RBegin returns a cursor on the back element moving towards the front.
func (q *FlatQueue[T]) RBegin() Cursor[T] {
	return Cursor[T]{q: q, gen: q.gen, pos: len(q.data) - 1, step: -1}
}

// Valid reports whether the cursor points at a live element.
func (c *Cursor[T]) Valid() bool {
	if c.q == nil {
		return false
	}
	c.check()
	return c.pos >= c.q.front && c.pos < len(c.q.data)
}

// Next advances the cursor one element in its direction.
func (c *Cursor[T]) Next() { c.pos += c.step }

// Index returns the logical position of the cursor (0 is the front).
func (c *Cursor[T]) Index() int {
	c.check()
	return c.pos - c.q.front
}

// Value returns the element under the cursor.
func (c *Cursor[T]) Value() T {
	c.check()
	return c.q.data[c.pos]
}

// Ptr returns a pointer to the element under the cursor.
func (c *Cursor[T]) Ptr() *T {
	c.check()
	return &c.q.data[c.pos]
}

func (c *Cursor[T]) check() {
	if c.q == nil || c.gen != c.q.gen {
		panic(ErrStaleCursor)
	}
}
