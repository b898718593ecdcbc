package random

import (
	"crypto/rand"
	"math/big"
)

// Source yields random integers for draw selection. Implementations must be
// safe for use from a single goroutine at a time; the store serializes calls.
type Source interface {
	// Intn returns a uniform value in [0, n). n must be > 0.
	Intn(n int) int
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

func NewCryptoSource() CryptoSource { return CryptoSource{} }

func (CryptoSource) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failing means the platform entropy source is broken;
		// nothing sensible to fall back to mid-draw.
		panic(err)
	}
	return int(v.Int64())
}

// SequenceSource replays a fixed sequence of values, wrapping around. Used by
// tests to force exact draw outcomes.
type SequenceSource struct {
	values []int
	pos    int
}

func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)] % n
	s.pos++
	return v
}
