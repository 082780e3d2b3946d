package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
)

func TestStream_SameSequence(t *testing.T) {
	a, b := NewStream(), NewStream()
	for _, v := range []uint64{1, 2, 3, 1 << 60} {
		a.AddUint64(v)
		b.AddUint64(v)
	}
	assert.Equal(t, a.Sum64(), b.Sum64())
}

func TestStream_OrderSensitive(t *testing.T) {
	a, b := NewStream(), NewStream()
	a.AddUint64(1)
	a.AddUint64(2)
	b.AddUint64(2)
	b.AddUint64(1)
	assert.NotEqual(t, a.Sum64(), b.Sum64())
}

func TestStream_Empty(t *testing.T) {
	assert.Equal(t, xxhash.Sum64(nil), NewStream().Sum64())
}

func TestStream_Reset(t *testing.T) {
	s := NewStream()
	s.AddUint64(42)
	s.Reset()
	assert.Equal(t, NewStream().Sum64(), s.Sum64())
}
