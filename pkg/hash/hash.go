package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Stream is an order-sensitive xxhash over a sequence of uint64 values.
// Two streams fed the same values in the same order have the same Sum64.
type Stream struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewStream creates an empty Stream.
func NewStream() *Stream {
	return &Stream{d: xxhash.New()}
}

// AddUint64 feeds v in little-endian order.
func (s *Stream) AddUint64(v uint64) {
	binary.LittleEndian.PutUint64(s.buf[:], v)
	_, _ = s.d.Write(s.buf[:])
}

// Sum64 returns the hash of every value added so far.
func (s *Stream) Sum64() uint64 {
	return s.d.Sum64()
}

// Reset discards every value added so far.
func (s *Stream) Reset() {
	s.d.Reset()
}
