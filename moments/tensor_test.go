package moments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMoments() Vector {
	return Vector{2, 4, 6, 8, 10, 12, 14, 1, 2, 3}
}

func TestVolumeAndCentroid(t *testing.T) {
	v := sampleMoments()
	assert.Equal(t, 2.0, v.Volume())
	x, y, z := v.Centroid()
	assert.Equal(t, 2.0, x)
	assert.Equal(t, 3.0, y)
	assert.Equal(t, 4.0, z)
}

func TestNewTensorAssembly(t *testing.T) {
	v := sampleMoments()
	tensor, err := NewTensor(v)
	require.NoError(t, err)

	assert.Equal(t, v[4], tensor.At(0, 0))
	assert.Equal(t, v[5], tensor.At(1, 1))
	assert.Equal(t, v[6], tensor.At(2, 2))
	assert.Equal(t, v[7], tensor.At(0, 1))
	assert.Equal(t, v[8], tensor.At(1, 2))
	assert.Equal(t, v[9], tensor.At(0, 2))
	assert.InDelta(t, v[4]+v[5]+v[6], tensor.Trace(), 1e-12)
}

func TestNewTensorRejectsShortVector(t *testing.T) {
	_, err := NewTensor(Vector{1, 2, 3})
	assert.Error(t, err)
}

func TestClose(t *testing.T) {
	a := Vector{1.0, 2.0, 3.0}
	b := Vector{1.0 + 1e-13, 2.0, 3.0}
	assert.True(t, Close(a, b, 1e-9, 1e-12))

	c := Vector{1.1, 2.0, 3.0}
	assert.False(t, Close(a, c, 1e-9, 1e-12))
}

func TestMaxRelDiff(t *testing.T) {
	a := Vector{1.0, 2.0}
	b := Vector{1.1, 2.0}
	assert.InDelta(t, 0.1/1.1, MaxRelDiff(a, b), 1e-9)
}

func TestSum(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{4, 5, 6}
	got := Sum(a, b)
	assert.Equal(t, Vector{5, 7, 9}, got)
}
