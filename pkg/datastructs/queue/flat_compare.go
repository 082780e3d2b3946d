package queue

import (
	"cmp"
	"slices"
)

// Queues compare by their live windows only; dead prefixes never take part.
// A nil queue compares as empty.

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *FlatQueue[T]) bool {
	return slices.Equal(a.view(), b.view())
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T, U any](a *FlatQueue[T], b *FlatQueue[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.view(), b.view(), eq)
}

// NotEqual is !Equal.
func NotEqual[T comparable](a, b *FlatQueue[T]) bool {
	return !Equal(a, b)
}

// Compare compares a and b lexicographically and returns -1, 0 or +1.
// A queue that is a prefix of the other is the smaller one.
func Compare[T cmp.Ordered](a, b *FlatQueue[T]) int {
	return slices.Compare(a.view(), b.view())
}

// CompareFunc is Compare with a custom element comparison.
func CompareFunc[T, U any](a *FlatQueue[T], b *FlatQueue[U], fn func(T, U) int) int {
	return slices.CompareFunc(a.view(), b.view(), fn)
}

// Less reports whether a sorts before b.
func Less[T cmp.Ordered](a, b *FlatQueue[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual is !Less(b, a).
func LessOrEqual[T cmp.Ordered](a, b *FlatQueue[T]) bool {
	return !Less(b, a)
}

// Greater is Less(b, a).
func Greater[T cmp.Ordered](a, b *FlatQueue[T]) bool {
	return Less(b, a)
}

// GreaterOrEqual is !Less(a, b).
func GreaterOrEqual[T cmp.Ordered](a, b *FlatQueue[T]) bool {
	return !Less(a, b)
}

func (q *FlatQueue[T]) view() []T {
	if q == nil {
		return nil
	}
	return q.Data()
}
