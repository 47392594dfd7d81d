package tetvox

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v3 "github.com/sdfx-labs/tetvox/vec/v3"
)

func TestPartnerCornerFlipsOneAxis(t *testing.T) {
	// x-axis split pairs, per r3d.c's explicit x-axis corner pairing:
	// (1,0), (2,3), (6,7), (5,4).
	cases := map[int]int{1: 0, 0: 1, 2: 3, 3: 2, 6: 7, 7: 6, 5: 4, 4: 5}
	for c, want := range cases {
		assert.Equal(t, want, partnerCorner(c, 0), "corner %d", c)
	}
}

func TestPartnerCornerIsInvolution(t *testing.T) {
	for axis := 0; axis < 3; axis++ {
		for c := 0; c < 8; c++ {
			p := partnerCorner(c, axis)
			assert.Equal(t, c, partnerCorner(p, axis))
		}
	}
}

func TestSplitNodeAxisPriority(t *testing.T) {
	faces, err := FacesFromTet(v3.Vec{}, v3.Vec{X: 1}, v3.Vec{Y: 1}, v3.Vec{Z: 1})
	if err != nil {
		t.Fatal(err)
	}
	spacing := v3.Vec{X: 0.1, Y: 0.1, Z: 0.1}

	// A tie across all three axes must split x first.
	n := octNode{ioff: [3]int{8, 8, 8}}
	left, right := splitNode(n, faces, spacing)
	assert.Equal(t, 4, left.ioff[0])
	assert.Equal(t, 8, left.ioff[1])
	assert.Equal(t, 8, left.ioff[2])
	assert.Equal(t, 4, right.imin[0])
	assert.Equal(t, 4, right.ioff[0])

	// A longer y extent (x and z tied with each other, both below y) splits y.
	n2 := octNode{ioff: [3]int{4, 8, 4}}
	left2, right2 := splitNode(n2, faces, spacing)
	assert.Equal(t, 4, left2.ioff[1])
	assert.Equal(t, 4, right2.ioff[1])
	assert.Equal(t, 4, left2.ioff[0])
	assert.Equal(t, 4, right2.ioff[0])
}

func TestSplitNodeSharesUnchangedCorners(t *testing.T) {
	faces, err := FacesFromTet(v3.Vec{}, v3.Vec{X: 1}, v3.Vec{Y: 1}, v3.Vec{Z: 1})
	if err != nil {
		t.Fatal(err)
	}
	spacing := v3.Vec{X: 0.1, Y: 0.1, Z: 0.1}

	n := octNode{ioff: [3]int{4, 2, 2}}
	for c, o := range cornerOffset {
		n.corners[c] = classify(faces, v3.Vec{
			X: float64(o[0]*n.ioff[0]) * spacing.X,
			Y: float64(o[1]*n.ioff[1]) * spacing.Y,
			Z: float64(o[2]*n.ioff[2]) * spacing.Z,
		})
	}
	left, right := splitNode(n, faces, spacing)

	// Corner 0 has offset[x]==0: an x-axis split leaves its position (and
	// hence classification) unchanged for the left child, which keeps
	// the parent's imin along x. The right child's corner 0 sits at a
	// new position (the split plane) and is recomputed, not inherited.
	assert.Equal(t, n.corners[0], left.corners[0])

	// Corner 1 has offset[x]==1: the far-x corner is unchanged for the
	// right child (whose far face is still the parent's), but the left
	// child's corner 1 now sits on the split plane and is recomputed.
	assert.Equal(t, n.corners[1], right.corners[1])
}
