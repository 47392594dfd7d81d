package tetvox

import (
	v3 "github.com/sdfx-labs/tetvox/vec/v3"
)

//-----------------------------------------------------------------------------

// NumMoments returns the number of moments computed at the given
// polynomial order: 1, 4, or 10 for order 0, 1, 2 (spec.md §4.4).
func NumMoments(order int) int {
	switch order {
	case 0:
		return 1
	case 1:
		return 4
	case 2:
		return 10
	default:
		panic("tetvox: order must be 0, 1, or 2")
	}
}

const (
	oneSixth  = 1.0 / 6.0
	oneFourth = 1.0 / 4.0
	oneTenth  = 1.0 / 10.0
	oneTwenty = 1.0 / 20.0
)

//-----------------------------------------------------------------------------

// reduce integrates the polynomial moments (up to the given order) of the
// active (unclipped) region of p, accumulating into mom, whose length
// must be at least NumMoments(order). mom is zeroed first.
//
// Each face of the polyhedron is triangle-fanned from the vertex at which
// its traversal began (vstart); every resulting triangle (vstart, v1, v2)
// contributes the signed tetrahedron (coordinate origin, vstart, v1, v2)
// to the running totals via the divergence theorem. Because the surface
// is closed, these per-face cones sum to exactly the interior volume/
// moments regardless of where the origin sits relative to the polyhedron
// (spec.md §4.4, r3d_reduce). emarks ensures each directed edge of each
// face is visited exactly once.
func (p *polyhedron) reduce(mom []float64, order int) {
	for i := range mom {
		mom[i] = 0.0
	}

	var emarks [maxVerts][3]bool
	var vstack [maxStack]uint8
	nstack := 0

	// Find the first unclipped vertex.
	vcur := uint8(127)
	for v := 0; vcur >= 127 && v < p.nverts; v++ {
		if p.verts[v].fflags&clipMask == 0 {
			vcur = uint8(v)
		}
	}
	if vcur >= 127 {
		return
	}

	vstack[0] = vcur
	vstack[1] = 0
	nstack = 2

	for nstack > 0 {
		pnext := vstack[nstack-1]
		vcur := vstack[nstack-2]
		nstack -= 2

		if emarks[vcur][pnext] {
			continue
		}

		emarks[vcur][pnext] = true
		vstart := vcur
		v0 := p.verts[vstart].pos
		vnext := p.verts[vcur].nbrs[pnext]
		vstack[nstack] = vcur
		vstack[nstack+1] = (pnext + 1) % 3
		nstack += 2

		np := p.edgeIndex(vnext, vcur)
		vcur = vnext
		pnext = uint8((np + 1) % 3)
		emarks[vcur][pnext] = true
		vnext = p.verts[vcur].nbrs[pnext]
		vstack[nstack] = vcur
		vstack[nstack+1] = (pnext + 1) % 3
		nstack += 2

		for vnext != vstart {
			v2 := p.verts[vcur].pos
			v1 := p.verts[vnext].pos
			accumTet(mom, order, v0, v1, v2)

			np = p.edgeIndex(vnext, vcur)
			vcur = vnext
			pnext = uint8((np + 1) % 3)
			emarks[vcur][pnext] = true
			vnext = p.verts[vcur].nbrs[pnext]
			vstack[nstack] = vcur
			vstack[nstack+1] = (pnext + 1) % 3
			nstack += 2
		}
	}
}

// edgeIndex returns the slot in verts[from].nbrs that points to to. The
// caller guarantees the edge exists (invariant I1).
func (p *polyhedron) edgeIndex(from, to uint8) int {
	for e := 0; e < 3; e++ {
		if p.verts[from].nbrs[e] == to {
			return e
		}
	}
	panic("tetvox: inconsistent polyhedron graph (I1 violated)")
}

//-----------------------------------------------------------------------------

// accumTet adds the moments of the signed tetrahedron (origin, v0, v1, v2)
// to mom, using the closed-form polynomial integral formulas of
// r3d_reduce (spec.md §4.4).
func accumTet(mom []float64, order int, v0, v1, v2 v3.Vec) {
	vol := oneSixth * v0.Dot(v1.Cross(v2))
	mom[0] += vol

	if order < 1 {
		return
	}

	mom[1] += vol * oneFourth * (v0.X + v1.X + v2.X)
	mom[2] += vol * oneFourth * (v0.Y + v1.Y + v2.Y)
	mom[3] += vol * oneFourth * (v0.Z + v1.Z + v2.Z)

	if order < 2 {
		return
	}

	mom[4] += vol * oneTenth * (v0.X*v0.X + v1.X*v1.X + v2.X*v2.X + v1.X*v2.X + v0.X*(v1.X+v2.X))
	mom[5] += vol * oneTenth * (v0.Y*v0.Y + v1.Y*v1.Y + v2.Y*v2.Y + v1.Y*v2.Y + v0.Y*(v1.Y+v2.Y))
	mom[6] += vol * oneTenth * (v0.Z*v0.Z + v1.Z*v1.Z + v2.Z*v2.Z + v1.Z*v2.Z + v0.Z*(v1.Z+v2.Z))

	mom[7] += vol * oneTwenty * (v2.X*v0.Y + v2.X*v1.Y + 2*v2.X*v2.Y +
		v0.X*(2*v0.Y+v1.Y+v2.Y) + v1.X*(v0.Y+2*v1.Y+v2.Y))
	mom[8] += vol * oneTwenty * (v2.Y*v0.Z + v2.Y*v1.Z + 2*v2.Y*v2.Z +
		v0.Y*(2*v0.Z+v1.Z+v2.Z) + v1.Y*(v0.Z+2*v1.Z+v2.Z))
	mom[9] += vol * oneTwenty * (v2.X*v0.Z + v2.X*v1.Z + 2*v2.X*v2.Z +
		v0.X*(2*v0.Z+v1.Z+v2.Z) + v1.X*(v0.Z+2*v1.Z+v2.Z))
}
