package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCryptoSource_Bounds(t *testing.T) {
	src := NewCryptoSource()
	for i := 0; i < 100; i++ {
		v := src.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
	assert.Equal(t, 0, src.Intn(1))
}

func TestSequenceSource(t *testing.T) {
	src := NewSequenceSource(2, 0, 5)
	assert.Equal(t, 2, src.Intn(10))
	assert.Equal(t, 0, src.Intn(10))
	assert.Equal(t, 5, src.Intn(10))
	assert.Equal(t, 2, src.Intn(10), "sequence wraps")

	assert.Equal(t, 1, NewSequenceSource(5).Intn(2), "values reduce modulo n")
	assert.Equal(t, 0, NewSequenceSource().Intn(3), "empty sequence yields zero")
}
