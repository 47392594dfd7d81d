package tetvox

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v3 "github.com/sdfx-labs/tetvox/vec/v3"
	"github.com/sdfx-labs/tetvox/vec/v3i"
)

func TestNewGridAllocatesPerOrder(t *testing.T) {
	g := NewGrid(v3.Vec{X: 1, Y: 1, Z: 1}, v3i.Vec{X: 2, Y: 3, Z: 4}, 1)
	for m := 0; m < NumMoments(1); m++ {
		assert.Len(t, g.Moments[m], 24)
	}
	assert.Nil(t, g.Moments[NumMoments(1)])
}

func TestGridWriteAccumulateVsOverwrite(t *testing.T) {
	g := NewGrid(v3.Vec{X: 1, Y: 1, Z: 1}, v3i.Vec{X: 1, Y: 1, Z: 1}, 0)
	g.write(0, 0, 0, []float64{2.0}, false)
	assert.Equal(t, 2.0, g.At(0, 0, 0)[0])
	g.write(0, 0, 0, []float64{3.0}, true)
	assert.Equal(t, 5.0, g.At(0, 0, 0)[0])
	g.write(0, 0, 0, []float64{7.0}, false)
	assert.Equal(t, 7.0, g.At(0, 0, 0)[0])
}

func TestAccumulatorAddTracksExtremes(t *testing.T) {
	a := NewAccumulator()
	a.addInside([]float64{1.0})
	a.addStraddling([]float64{0.2})
	a.addOutside()

	assert.Equal(t, 1, a.NumIn)
	assert.Equal(t, 1, a.NumStraddling)
	assert.Equal(t, 1, a.NumOut)
	assert.Equal(t, 0.2, a.VoxMin)
	assert.Equal(t, 1.0, a.VoxMax)
	assert.InDelta(t, 1.2, a.MomTot[0], 1e-12)
}

func TestAccumulatorMerge(t *testing.T) {
	a := NewAccumulator()
	a.addInside([]float64{1.0})
	b := NewAccumulator()
	b.addInside([]float64{2.0})
	b.addOutside()

	a.Merge(b)
	assert.Equal(t, 2, a.NumIn)
	assert.Equal(t, 1, a.NumOut)
	assert.InDelta(t, 3.0, a.MomTot[0], 1e-12)
}

func TestClassify(t *testing.T) {
	faces, err := FacesFromTet(v3.Vec{}, v3.Vec{X: 1}, v3.Vec{Y: 1}, v3.Vec{Z: 1})
	if err != nil {
		t.Fatal(err)
	}
	inside := classify(faces, v3.Vec{X: 0.1, Y: 0.1, Z: 0.1})
	assert.Equal(t, faceMask, inside.fflags)

	outside := classify(faces, v3.Vec{X: -1, Y: -1, Z: -1})
	assert.NotEqual(t, faceMask, outside.fflags)
}

func TestFullVoxelMomentsOrder0(t *testing.T) {
	spacing := v3.Vec{X: 2, Y: 3, Z: 4}
	mom := fullVoxelMoments(spacing, 0, 0, 0, 0)
	assert.Len(t, mom, 1)
	assert.InDelta(t, 24.0, mom[0], 1e-12)
}

func TestFullVoxelMomentsCentroidOrder1(t *testing.T) {
	spacing := v3.Vec{X: 1, Y: 1, Z: 1}
	mom := fullVoxelMoments(spacing, 2, 3, 4, 1)
	vol := mom[0]
	// Voxel (2,3,4) at unit spacing spans [2,3]x[3,4]x[4,5]; centroid (2.5,3.5,4.5).
	assert.InDelta(t, 2.5, mom[1]/vol, 1e-12)
	assert.InDelta(t, 3.5, mom[2]/vol, 1e-12)
	assert.InDelta(t, 4.5, mom[3]/vol, 1e-12)
}

func TestOffsetCorrectOrder1(t *testing.T) {
	mom := []float64{2.0, 0.0, 0.0, 0.0}
	offsetCorrect(mom, v3.Vec{X: 1, Y: 2, Z: 3}, 1)
	assert.InDelta(t, 2.0, mom[1], 1e-12)
	assert.InDelta(t, 4.0, mom[2], 1e-12)
	assert.InDelta(t, 6.0, mom[3], 1e-12)
}
