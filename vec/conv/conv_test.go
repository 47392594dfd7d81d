package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v3 "github.com/sdfx-labs/tetvox/vec/v3"
	"github.com/sdfx-labs/tetvox/vec/v3i"
)

func TestV3ToV3iTruncates(t *testing.T) {
	got := V3ToV3i(v3.Vec{X: 1.9, Y: -1.9, Z: 2.1})
	assert.Equal(t, v3i.Vec{X: 1, Y: -1, Z: 2}, got)
}

func TestV3iToV3(t *testing.T) {
	got := V3iToV3(v3i.Vec{X: 1, Y: 2, Z: 3})
	assert.Equal(t, v3.Vec{X: 1, Y: 2, Z: 3}, got)
}
