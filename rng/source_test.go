package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat32InUnitRange(t *testing.T) {
	s := New(1)
	for i := 0; i < 1000; i++ {
		v := s.Float32()
		assert.GreaterOrEqual(t, v, float32(0))
		assert.Less(t, v, float32(1))
	}
}

func TestRangeFloat32Bounds(t *testing.T) {
	s := New(2)
	for i := 0; i < 1000; i++ {
		v := s.RangeFloat32(5, 10)
		assert.GreaterOrEqual(t, v, float32(5))
		assert.Less(t, v, float32(10))
	}
}

func TestRangeFloat32DegenerateReturnsLow(t *testing.T) {
	s := New(3)
	assert.Equal(t, float32(5), s.RangeFloat32(5, 5))
	assert.Equal(t, float32(5), s.RangeFloat32(5, 4))
}

func TestRangeUint64Bounds(t *testing.T) {
	s := New(4)
	for i := 0; i < 1000; i++ {
		v := s.RangeUint64(10, 20)
		assert.GreaterOrEqual(t, v, uint64(10))
		assert.Less(t, v, uint64(20))
	}
}

func TestRangeUint64DegenerateReturnsLow(t *testing.T) {
	s := New(5)
	assert.Equal(t, uint64(10), s.RangeUint64(10, 10))
	assert.Equal(t, uint64(10), s.RangeUint64(10, 9))
}

func TestSameSeedReproducible(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float32(), b.Float32())
	}
}
