package tetvox

import (
	"fmt"

	v3 "github.com/sdfx-labs/tetvox/vec/v3"
	"github.com/sdfx-labs/tetvox/vec/v3i"
)

//-----------------------------------------------------------------------------

// VoxelizeDense voxelizes the tetrahedron bounded by faces over the whole
// of g in a single sweep: every grid node is classified once, then every
// voxel is dispatched to a closed-form fill, a clip+reduce, or left at
// zero, according to the AND/OR of its eight corner classifications
// (spec.md §4.5 "Dense driver", r3d_voxelize_tet's !USE_TREE path).
//
// acc, if non-nil, accumulates whole-tet totals across every voxel
// touched.
func VoxelizeDense(faces [4]Plane, g *Grid, acc *Accumulator) error {
	return VoxelizeDenseRange(faces, g, v3i.Vec{}, g.N, acc, false)
}

// VoxelizeDenseRange is VoxelizeDense restricted to the voxel index box
// [imin,imax) (imax exclusive, same convention as Grid.N). accumulate
// selects whether touched voxels are overwritten (false, VoxelizeDense's
// single-tet behavior) or added to (true, meshio's multi-tet behavior,
// where each voxel receives the sum of the tets that actually cover it).
func VoxelizeDenseRange(faces [4]Plane, g *Grid, imin, imax v3i.Vec, acc *Accumulator, accumulate bool) error {
	nx, ny, nz := imax.X-imin.X, imax.Y-imin.Y, imax.Z-imin.Z
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return fmt.Errorf("tetvox: voxelization range must have positive extent, got %v..%v", imin, imax)
	}

	// Classify every grid node in the (nx+1) x (ny+1) x (nz+1) node
	// lattice spanning the range once; gind flattens local node indices.
	gind := func(i, j, k int) int {
		return (ny+1)*(nz+1)*i + (nz+1)*j + k
	}
	nodes := make([]cornerClass, (nx+1)*(ny+1)*(nz+1))
	for i := 0; i <= nx; i++ {
		for j := 0; j <= ny; j++ {
			for k := 0; k <= nz; k++ {
				pos := v3.Vec{
					X: float64(imin.X+i) * g.Spacing.X,
					Y: float64(imin.Y+j) * g.Spacing.Y,
					Z: float64(imin.Z+k) * g.Spacing.Z,
				}
				nodes[gind(i, j, k)] = classify(faces, pos)
			}
		}
	}

	// Centered unit-voxel bounds, reused for every straddling voxel;
	// Clipper/Reducer then operate in this local frame and offsetCorrect
	// translates the result back to world coordinates (spec.md §4.5).
	half := v3.Vec{X: 0.5 * g.Spacing.X, Y: 0.5 * g.Spacing.Y, Z: 0.5 * g.Spacing.Z}
	cmin := half.Neg()
	cmax := half

	var poly polyhedron
	mom := make([]float64, NumMoments(g.Order))

	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				gi, gj, gk := imin.X+i, imin.Y+j, imin.Z+k

				var vv [8]int
				for c, o := range cornerOffset {
					vv[c] = gind(i+o[0], j+o[1], k+o[2])
				}

				var orcmp, andcmp uint8 = 0x00, 0x0f
				for _, idx := range vv {
					orcmp |= nodes[idx].fflags
					andcmp &= nodes[idx].fflags
				}

				switch {
				case andcmp == faceMask:
					m := fullVoxelMoments(g.Spacing, gi, gj, gk, g.Order)
					g.write(gi, gj, gk, m, accumulate)
					if acc != nil {
						acc.addInside(m)
					}

				case orcmp == faceMask:
					poly.initBox(cmin, cmax)
					for c, idx := range vv {
						poly.verts[c].fflags = nodes[idx].fflags
						poly.verts[c].fdist = nodes[idx].fdist
					}
					poly.clip(andcmp)
					poly.reduce(mom, g.Order)

					center := v3.Vec{
						X: (float64(gi) + 0.5) * g.Spacing.X,
						Y: (float64(gj) + 0.5) * g.Spacing.Y,
						Z: (float64(gk) + 0.5) * g.Spacing.Z,
					}
					offsetCorrect(mom, center, g.Order)

					g.write(gi, gj, gk, mom, accumulate)
					if acc != nil {
						acc.addStraddling(mom)
					}

				default:
					if acc != nil {
						acc.addOutside()
					}
				}
			}
		}
	}

	return nil
}
