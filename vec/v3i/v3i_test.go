package v3i

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVolume(t *testing.T) {
	assert.Equal(t, 24, Vec{X: 2, Y: 3, Z: 4}.Volume())
}

func TestAddSub(t *testing.T) {
	a := Vec{1, 2, 3}
	b := Vec{4, 5, 6}
	assert.Equal(t, Vec{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vec{-3, -3, -3}, a.Sub(b))
}
