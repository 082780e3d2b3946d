package utils

import "math"

// ScaleCapacity returns ceil(n * factor), never less than n.
// Non-finite or non-positive factors are treated as 1.
func ScaleCapacity(n int, factor float64) int {
	if n <= 0 {
		return 0
	}
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		factor = 1
	}
	scaled := math.Ceil(float64(n) * factor)
	if scaled >= math.MaxInt {
		return math.MaxInt
	}
	if c := int(scaled); c > n {
		return c
	}
	return n
}

// GrowCapacity returns the capacity to allocate when a buffer holding n
// elements is full. The result always leaves room for at least extra more.
func GrowCapacity(n, extra int, factor float64) int {
	c := ScaleCapacity(n, factor)
	if need := n + extra; c < need {
		return need
	}
	return c
}
