package tetvox

import (
	"fmt"

	v3 "github.com/sdfx-labs/tetvox/vec/v3"
)

//-----------------------------------------------------------------------------

// octNode is one block of the recursive octree split: an axis-aligned
// range of voxel indices [imin,imin+ioff) x ... and the classification
// of its eight corners, shared with neighboring blocks wherever they
// coincide (spec.md §4.6 "Octree driver", r3d_voxelize_tet's USE_TREE
// path).
type octNode struct {
	imin, ioff [3]int
	corners    [8]cornerClass
}

// maxOctStack bounds the octree traversal stack. A balanced split of up
// to a few million voxels never exceeds a few hundred live nodes; 4096
// mirrors r3d.c's treestack[256] with headroom for larger grids.
const maxOctStack = 4096

// VoxelizeOctree voxelizes the tetrahedron bounded by faces over g by
// recursively splitting the grid along its longest axis, sharing corner
// classifications across the split boundary instead of reclassifying
// every grid node up front. This amortizes classification cost to
// roughly O(sqrt(N)) for a tet spanning a small fraction of a large grid
// (spec.md §4.6), at the cost of a small per-node bookkeeping overhead
// dense sweeping doesn't pay.
//
// acc, if non-nil, accumulates whole-tet totals across every voxel
// touched.
func VoxelizeOctree(faces [4]Plane, g *Grid, acc *Accumulator) error {
	nx, ny, nz := g.N.X, g.N.Y, g.N.Z
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return fmt.Errorf("tetvox: grid must have positive extent, got %v", g.N)
	}

	root := octNode{ioff: [3]int{nx, ny, nz}}
	for c, o := range cornerOffset {
		pos := v3.Vec{
			X: float64(o[0]*nx) * g.Spacing.X,
			Y: float64(o[1]*ny) * g.Spacing.Y,
			Z: float64(o[2]*nz) * g.Spacing.Z,
		}
		root.corners[c] = classify(faces, pos)
	}

	stack := make([]octNode, 0, 64)
	stack = append(stack, root)

	half := v3.Vec{X: 0.5 * g.Spacing.X, Y: 0.5 * g.Spacing.Y, Z: 0.5 * g.Spacing.Z}
	cmin := half.Neg()
	cmax := half

	var poly polyhedron
	mom := make([]float64, NumMoments(g.Order))

	for len(stack) > 0 {
		if len(stack) > maxOctStack {
			return fmt.Errorf("tetvox: octree traversal stack exhausted (grid too large or too thin)")
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var orcmp, andcmp uint8 = 0x00, 0x0f
		for _, c := range n.corners {
			orcmp |= c.fflags
			andcmp &= c.fflags
		}

		switch {
		case andcmp == faceMask:
			fillFullBlock(g, n, acc)

		case orcmp != faceMask:
			if acc != nil {
				acc.NumOut += n.ioff[0] * n.ioff[1] * n.ioff[2]
			}

		case n.ioff[0] == 1 && n.ioff[1] == 1 && n.ioff[2] == 1:
			i, j, k := n.imin[0], n.imin[1], n.imin[2]
			poly.initBox(cmin, cmax)
			for c := range cornerOffset {
				poly.verts[c].fflags = n.corners[c].fflags
				poly.verts[c].fdist = n.corners[c].fdist
			}
			poly.clip(andcmp)
			poly.reduce(mom, g.Order)

			center := v3.Vec{
				X: (float64(i) + 0.5) * g.Spacing.X,
				Y: (float64(j) + 0.5) * g.Spacing.Y,
				Z: (float64(k) + 0.5) * g.Spacing.Z,
			}
			offsetCorrect(mom, center, g.Order)

			g.write(i, j, k, mom, false)
			if acc != nil {
				acc.addStraddling(mom)
			}

		default:
			left, right := splitNode(n, faces, g.Spacing)
			stack = append(stack, left, right)
		}
	}

	return nil
}

// fillFullBlock writes the closed-form fully-inside moments for every
// voxel in n, which is known (by the caller) to lie entirely within the
// tet.
func fillFullBlock(g *Grid, n octNode, acc *Accumulator) {
	for i := n.imin[0]; i < n.imin[0]+n.ioff[0]; i++ {
		for j := n.imin[1]; j < n.imin[1]+n.ioff[1]; j++ {
			for k := n.imin[2]; k < n.imin[2]+n.ioff[2]; k++ {
				m := fullVoxelMoments(g.Spacing, i, j, k, g.Order)
				g.write(i, j, k, m, false)
				if acc != nil {
					acc.addInside(m)
				}
			}
		}
	}
}

// splitNode halves n along its longest axis (ties broken in x, then y,
// then z order) and returns the two children, reusing the four corner
// classifications each keeps unchanged and computing the four it shares
// with its sibling exactly once (spec.md §4.6).
func splitNode(n octNode, faces [4]Plane, spacing v3.Vec) (left, right octNode) {
	var axis int
	switch {
	case n.ioff[0] >= n.ioff[1] && n.ioff[0] >= n.ioff[2]:
		axis = 0
	case n.ioff[1] >= n.ioff[0] && n.ioff[1] >= n.ioff[2]:
		axis = 1
	default:
		axis = 2
	}
	mid := n.ioff[axis] / 2

	left = n
	left.ioff[axis] = mid
	right = n
	right.imin[axis] = n.imin[axis] + mid
	right.ioff[axis] = n.ioff[axis] - mid
	// Both children start with every corner equal to the parent's; only
	// the four corners newly created on the split plane need overwriting
	// below (left's far face along axis, right's near face along axis).

	splitCoord := float64(n.imin[axis]+mid) * spacingComp(spacing, axis)

	for c1, o := range cornerOffset {
		if o[axis] != 1 {
			continue
		}
		c2 := partnerCorner(c1, axis)

		pos := v3.Vec{
			X: float64(n.imin[0]+cornerOffset[c1][0]*n.ioff[0]) * spacing.X,
			Y: float64(n.imin[1]+cornerOffset[c1][1]*n.ioff[1]) * spacing.Y,
			Z: float64(n.imin[2]+cornerOffset[c1][2]*n.ioff[2]) * spacing.Z,
		}
		switch axis {
		case 0:
			pos.X = splitCoord
		case 1:
			pos.Y = splitCoord
		default:
			pos.Z = splitCoord
		}

		cls := classify(faces, pos)
		left.corners[c1] = cls
		right.corners[c2] = cls
	}

	return left, right
}

// partnerCorner returns the corner index identical to c except with its
// axis-th offset bit flipped, i.e. the same physical point from the
// other side of a split along axis.
func partnerCorner(c, axis int) int {
	o := cornerOffset[c]
	o[axis] = 1 - o[axis]
	for i, oo := range cornerOffset {
		if oo == o {
			return i
		}
	}
	panic("tetvox: no partner corner found")
}

func spacingComp(spacing v3.Vec, axis int) float64 {
	switch axis {
	case 0:
		return spacing.X
	case 1:
		return spacing.Y
	default:
		return spacing.Z
	}
}
