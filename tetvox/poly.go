package tetvox

import (
	v3 "github.com/sdfx-labs/tetvox/vec/v3"
)

//-----------------------------------------------------------------------------

// maxVerts bounds the per-voxel vertex arena. A unit cube clipped against
// four planes produces at most 8 + 4*4 = 24 vertices in the worst case;
// 128 mirrors r3d.c's vertbuffer[128] with headroom (spec.md §4.3).
const maxVerts = 128

// maxStack bounds the clip/reduce traversal stacks (128 edge pairs).
const maxStack = 256

// clipMask is the transient clipped-vertex marker, bit 7 of fflags
// (spec.md §3, r3d.c CLIP_MASK).
const clipMask uint8 = 0x80

// faceMask is the mask over fflags bits 0..3 that must all be set for a
// point to lie inside all four tet faces.
const faceMask uint8 = 0x0f

//-----------------------------------------------------------------------------

// vertex is one node of the per-voxel polyhedron's doubly linked planar
// graph (spec.md §3 "Polyhedron").
type vertex struct {
	pos    v3.Vec
	nbrs   [3]uint8
	fflags uint8
	fdist  [4]float64
}

// polyhedron is the fixed-capacity, arena-indexed convex polyhedron that
// BoxInit initializes and Clipper carves down, one tet face at a time.
// Vertices referenced by small integer indices rather than pointers
// (spec.md §9 "Polyhedron as arena + indices").
type polyhedron struct {
	verts  [maxVerts]vertex
	nverts int
}

//-----------------------------------------------------------------------------

// boxNbrs is the canonical cube adjacency table (spec.md §4.2). Altering
// it inverts the orientation invariant (I2) that Clipper and Reducer rely
// on; it must be preserved verbatim.
var boxNbrs = [8][3]uint8{
	{1, 4, 3},
	{2, 5, 0},
	{3, 6, 1},
	{0, 7, 2},
	{7, 0, 5},
	{4, 1, 6},
	{5, 2, 7},
	{6, 3, 4},
}

// cornerOffset is the corner enumeration shared by BoxInit and the grid
// drivers' corner classification: vv[0]=(i,j,k), vv[1]=(i+1,j,k),
// vv[2]=(i+1,j+1,k), vv[3]=(i,j+1,k), vv[4]=(i,j,k+1), vv[5]=(i+1,j,k+1),
// vv[6]=(i+1,j+1,k+1), vv[7]=(i,j+1,k+1) (r3d.c's vv[] ordering).
var cornerOffset = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// boxCorner returns the position of cube corner i (0..7), in the
// cornerOffset enumeration, given the box's min/max corners.
func boxCorner(min, max v3.Vec, i int) v3.Vec {
	o := cornerOffset[i]
	p := min
	if o[0] == 1 {
		p.X = max.X
	}
	if o[1] == 1 {
		p.Y = max.Y
	}
	if o[2] == 1 {
		p.Z = max.Z
	}
	return p
}

// initBox resets p to the canonical 8-vertex unit-cube polyhedron
// spanning [min,max] (spec.md §4.2, r3du_init_box), using the same
// corner enumeration as boxCorner.
func (p *polyhedron) initBox(min, max v3.Vec) {
	p.nverts = 8
	for i := range cornerOffset {
		v := &p.verts[i]
		v.nbrs = boxNbrs[i]
		v.fflags = 0
		v.fdist = [4]float64{}
		v.pos = boxCorner(min, max, i)
	}
}

//-----------------------------------------------------------------------------

// clip intersects p with the halfspace of each tet face f whose bit is
// clear in andcmp (faces with their bit set already contain every active
// vertex, so they're skipped). On return, p contains exactly the
// intersection of the entry polyhedron with the four tet halfspaces,
// with invariants (I1)-(I4) restored (spec.md §4.3, r3d_clip_tet).
func (p *polyhedron) clip(andcmp uint8) {
	var vstack [maxStack]uint8

	for f := uint8(0); f < 4; f++ {
		fmask := uint8(1) << f
		if andcmp&fmask != 0 {
			continue
		}

		// Find any vertex outside face f (convexity means one is enough).
		vcur := uint8(127)
		for v := 0; vcur >= 127 && v < p.nverts; v++ {
			if p.verts[v].fflags&(clipMask|fmask) == 0 {
				vcur = uint8(v)
			}
		}
		if vcur >= 127 {
			// Every active vertex is already inside f: fully inside, skip.
			continue
		}

		nstack := 0
		push := func(vprev, vc uint8) {
			vstack[nstack] = vprev
			vstack[nstack+1] = vc
			nstack += 2
		}
		push(vcur, p.verts[vcur].nbrs[1])
		push(vcur, p.verts[vcur].nbrs[0])
		push(vcur, p.verts[vcur].nbrs[2])
		p.verts[vcur].fflags |= clipMask

		firstNew := -1
		prevNew := -1

		for nstack > 0 {
			nstack -= 2
			vprev, vc := vstack[nstack], vstack[nstack+1]

			if p.verts[vc].fflags&clipMask != 0 {
				continue
			}

			if p.verts[vc].fflags&fmask != 0 {
				// vc is inside f: clip the edge (vprev,vc) and emit a new
				// vertex on face f's plane.
				if p.nverts >= maxVerts {
					panic("tetvox: polyhedron vertex buffer exhausted")
				}
				nv := p.nverts
				dPrev := p.verts[vprev].fdist[f]
				dCur := p.verts[vc].fdist[f]
				wa := -dPrev
				wb := dCur
				newPos := v3.Vec{
					X: (wa*p.verts[vc].pos.X + wb*p.verts[vprev].pos.X) / (wa + wb),
					Y: (wa*p.verts[vc].pos.Y + wb*p.verts[vprev].pos.Y) / (wa + wb),
					Z: (wa*p.verts[vc].pos.Z + wb*p.verts[vprev].pos.Z) / (wa + wb),
				}
				p.verts[nv] = vertex{pos: newPos}

				// Doubly link the new vertex into vc in place of vprev.
				for np := 0; np < 3; np++ {
					if p.verts[vc].nbrs[np] == vprev {
						p.verts[vc].nbrs[np] = uint8(nv)
						break
					}
				}
				p.verts[nv].nbrs[0] = vc

				// Chain around the cut polygon.
				if prevNew >= 0 {
					p.verts[nv].nbrs[2] = uint8(prevNew)
					p.verts[prevNew].nbrs[1] = uint8(nv)
				}
				if firstNew < 0 {
					firstNew = nv
				}

				// Secant-interpolate fdist for the remaining faces.
				for ff := f + 1; ff < 4; ff++ {
					ffmask := uint8(1) << ff
					if andcmp&ffmask != 0 {
						continue
					}
					dPrevFF := p.verts[vprev].fdist[ff]
					dCurFF := p.verts[vc].fdist[ff]
					newDist := (dPrevFF*dCur - dPrev*dCurFF) / (dCur - dPrev)
					p.verts[nv].fdist[ff] = newDist
					if newDist > 0.0 {
						p.verts[nv].fflags |= ffmask
					}
				}

				prevNew = nv
				p.nverts++
			} else {
				// vc is outside f: mark clipped, continue the flood fill.
				var np int
				for np = 0; np < 3; np++ {
					if p.verts[vc].nbrs[np] == vprev {
						break
					}
				}
				p.verts[vc].fflags |= clipMask
				push(vc, p.verts[vc].nbrs[(np+2)%3])
				push(vc, p.verts[vc].nbrs[(np+1)%3])
			}

			if nstack+2 > maxStack {
				panic("tetvox: clip traversal stack exhausted")
			}
		}

		if firstNew >= 0 {
			p.verts[firstNew].nbrs[2] = uint8(prevNew)
			p.verts[prevNew].nbrs[1] = uint8(firstNew)
		}
	}
}
