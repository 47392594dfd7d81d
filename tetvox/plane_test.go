package tetvox

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v3 "github.com/sdfx-labs/tetvox/vec/v3"
)

func referenceTet() (v0, v1, v2, v3_ v3.Vec) {
	return v3.Vec{}, v3.Vec{X: 1}, v3.Vec{Y: 1}, v3.Vec{Z: 1}
}

func TestFacesFromTetContainsOppositeVertex(t *testing.T) {
	v0, v1, v2, v3_ := referenceTet()
	faces, err := FacesFromTet(v0, v1, v2, v3_)
	require.NoError(t, err)

	verts := [4]v3.Vec{v0, v1, v2, v3_}
	for k := range faces {
		assert.Greater(t, faces[k].eval(verts[k]), 0.0, "face %d must classify its opposite vertex as inside", k)
	}
}

func TestFacesFromTetRejectsNonFinite(t *testing.T) {
	v0, v1, v2, v3_ := referenceTet()
	v3_.X = math.NaN()
	_, err := FacesFromTet(v0, v1, v2, v3_)
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestFacesFromTetRejectsDegenerate(t *testing.T) {
	// All four vertices coplanar (z=0).
	v0 := v3.Vec{}
	v1 := v3.Vec{X: 1}
	v2 := v3.Vec{Y: 1}
	v3_ := v3.Vec{X: 1, Y: 1}
	_, err := FacesFromTet(v0, v1, v2, v3_)
	assert.ErrorIs(t, err, ErrDegenerateTet)
}

func TestFacesFromTetRejectsReversedWinding(t *testing.T) {
	v0, v1, v2, v3_ := referenceTet()
	// Swapping two vertices reverses the winding FacesFromTet expects.
	_, err := FacesFromTet(v1, v0, v2, v3_)
	assert.ErrorIs(t, err, ErrDegenerateTet)
}

func TestSignedVolume(t *testing.T) {
	v0, v1, v2, v3_ := referenceTet()
	assert.InDelta(t, 1.0/6.0, SignedVolume(v0, v1, v2, v3_), 1e-12)
	assert.InDelta(t, -1.0/6.0, SignedVolume(v1, v0, v2, v3_), 1e-12)
}
