package tetvox

import (
	"math"

	v3 "github.com/sdfx-labs/tetvox/vec/v3"
	"github.com/sdfx-labs/tetvox/vec/v3i"
)

//-----------------------------------------------------------------------------

// Grid holds a regular axis-aligned voxel lattice, anchored at the world
// origin, and the per-voxel moment buffers that VoxelizeDense and
// VoxelizeOctree populate (spec.md §3 "Grid").
//
// Voxel (i,j,k) spans [i*Spacing.X, (i+1)*Spacing.X] x ... ; there is no
// separate grid origin field because the tet's own vertices carry
// whatever world-to-grid translation the caller needs.
type Grid struct {
	Spacing v3.Vec
	N       v3i.Vec
	Order   int
	Moments [10][]float64
}

// NewGrid allocates a Grid spanning N.Volume() voxels at the given
// spacing, with moment buffers sized for Order (0, 1, or 2).
func NewGrid(spacing v3.Vec, n v3i.Vec, order int) *Grid {
	g := &Grid{Spacing: spacing, N: n, Order: order}
	nv := n.Volume()
	for m := 0; m < NumMoments(order); m++ {
		g.Moments[m] = make([]float64, nv)
	}
	return g
}

// vind returns the flattened index of voxel (i,j,k).
func (g *Grid) vind(i, j, k int) int {
	return g.N.Y*g.N.Z*i + g.N.Z*j + k
}

// At returns the moment vector (length NumMoments(g.Order)) stored for
// voxel (i,j,k).
func (g *Grid) At(i, j, k int) []float64 {
	idx := g.vind(i, j, k)
	mom := make([]float64, NumMoments(g.Order))
	for m := range mom {
		mom[m] = g.Moments[m][idx]
	}
	return mom
}

// write stores mom at voxel (i,j,k), either replacing the existing value
// (accumulate=false, the single-tet drivers' behavior) or adding to it
// (accumulate=true, meshio's multi-tet behavior).
func (g *Grid) write(i, j, k int, mom []float64, accumulate bool) {
	idx := g.vind(i, j, k)
	for m := range mom {
		if accumulate {
			g.Moments[m][idx] += mom[m]
		} else {
			g.Moments[m][idx] = mom[m]
		}
	}
}

//-----------------------------------------------------------------------------

// Accumulator tracks whole-tet running totals across all voxels touched
// by a voxelization pass: total moments, the per-voxel volume extremes,
// and a tally of how each voxel was classified (spec.md §4.5, §8).
// It is always passed by pointer so a single accumulation survives across
// the many voxel-local calls a driver makes.
type Accumulator struct {
	MomTot        [10]float64
	VoxMin        float64
	VoxMax        float64
	NumIn         int
	NumOut        int
	NumStraddling int
}

// NewAccumulator returns a zeroed Accumulator ready for use.
func NewAccumulator() *Accumulator {
	return &Accumulator{VoxMin: math.MaxFloat64, VoxMax: -math.MaxFloat64}
}

func (a *Accumulator) addInside(mom []float64) {
	a.NumIn++
	a.add(mom)
}

func (a *Accumulator) addStraddling(mom []float64) {
	a.NumStraddling++
	a.add(mom)
}

func (a *Accumulator) addOutside() {
	a.NumOut++
}

// Merge folds another Accumulator's totals into a, for combining the
// per-element results of a multi-tet voxelization (meshio.VoxelizeMesh).
func (a *Accumulator) Merge(b *Accumulator) {
	for m := range a.MomTot {
		a.MomTot[m] += b.MomTot[m]
	}
	if b.VoxMin < a.VoxMin {
		a.VoxMin = b.VoxMin
	}
	if b.VoxMax > a.VoxMax {
		a.VoxMax = b.VoxMax
	}
	a.NumIn += b.NumIn
	a.NumOut += b.NumOut
	a.NumStraddling += b.NumStraddling
}

func (a *Accumulator) add(mom []float64) {
	for m, v := range mom {
		a.MomTot[m] += v
	}
	if mom[0] < a.VoxMin {
		a.VoxMin = mom[0]
	}
	if mom[0] > a.VoxMax {
		a.VoxMax = mom[0]
	}
}

//-----------------------------------------------------------------------------

// cornerClass is a grid node's classification against the four tet faces:
// which faces it lies inside of (bits 0-3 of fflags) and its signed
// distance to each (spec.md §3 invariants I3/I4).
type cornerClass struct {
	fflags uint8
	fdist  [4]float64
}

// classify evaluates faces at pos and returns the corresponding
// cornerClass (r3d.c's per-grid-vertex classification loop).
func classify(faces [4]Plane, pos v3.Vec) cornerClass {
	var c cornerClass
	for f := 0; f < 4; f++ {
		d := faces[f].eval(pos)
		c.fdist[f] = d
		if d > 0.0 {
			c.fflags |= 1 << uint(f)
		}
	}
	return c
}

//-----------------------------------------------------------------------------

// fullVoxelMoments returns the closed-form moments of a fully-contained
// voxel (i,j,k), bypassing Clipper/Reducer entirely (spec.md §4.5,
// r3d_voxelize_tet's andcmp==0x0f branch).
func fullVoxelMoments(spacing v3.Vec, i, j, k, order int) []float64 {
	mom := make([]float64, NumMoments(order))
	locvol := spacing.X * spacing.Y * spacing.Z
	mom[0] = locvol
	if order < 1 {
		return mom
	}
	fi, fj, fk := float64(i), float64(j), float64(k)
	mom[1] = locvol * spacing.X * (fi + 0.5)
	mom[2] = locvol * spacing.Y * (fj + 0.5)
	mom[3] = locvol * spacing.Z * (fk + 0.5)
	if order < 2 {
		return mom
	}
	mom[4] = locvol * oneThird * spacing.X * spacing.X * (1 + 3*fi + 3*fi*fi)
	mom[5] = locvol * oneThird * spacing.Y * spacing.Y * (1 + 3*fj + 3*fj*fj)
	mom[6] = locvol * oneThird * spacing.Z * spacing.Z * (1 + 3*fk + 3*fk*fk)
	mom[7] = locvol * 0.25 * spacing.X * spacing.Y * (1 + 2*fi) * (1 + 2*fj)
	mom[8] = locvol * 0.25 * spacing.Y * spacing.Z * (1 + 2*fj) * (1 + 2*fk)
	mom[9] = locvol * 0.25 * spacing.X * spacing.Z * (1 + 2*fi) * (1 + 2*fk)
	return mom
}

const oneThird = 1.0 / 3.0

// offsetCorrect rewrites mom (computed by Clipper+Reducer over a voxel
// centered on its own local origin) into moments about the world origin,
// given the world-space center (xmin,ymin,zmin) of that voxel. The
// second-moment corrections must read mom[1..3] before they are
// overwritten by the first-moment correction below (spec.md §4.5,
// r3d_voxelize_tet's offset-correction block).
func offsetCorrect(mom []float64, center v3.Vec, order int) {
	if order < 2 {
		if order >= 1 {
			mom[1] += center.X * mom[0]
			mom[2] += center.Y * mom[0]
			mom[3] += center.Z * mom[0]
		}
		return
	}
	mom[4] += 2.0*center.X*mom[1] + center.X*center.X*mom[0]
	mom[5] += 2.0*center.Y*mom[2] + center.Y*center.Y*mom[0]
	mom[6] += 2.0*center.Z*mom[3] + center.Z*center.Z*mom[0]
	mom[7] += center.X*mom[2] + center.Y*mom[1] + center.X*center.Y*mom[0]
	mom[8] += center.Y*mom[3] + center.Z*mom[2] + center.Y*center.Z*mom[0]
	mom[9] += center.X*mom[3] + center.Z*mom[1] + center.X*center.Z*mom[0]

	mom[1] += center.X * mom[0]
	mom[2] += center.Y * mom[0]
	mom[3] += center.Z * mom[0]
}
