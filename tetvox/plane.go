package tetvox

import (
	"errors"
	"fmt"

	v3 "github.com/sdfx-labs/tetvox/vec/v3"
)

//-----------------------------------------------------------------------------

// ErrNonFinite is returned when a tetrahedron vertex contains a NaN or Inf
// component.
var ErrNonFinite = errors.New("tetvox: non-finite vertex")

// ErrDegenerateTet is returned when the four input vertices do not bound a
// non-zero volume: a face normal shorter than 1e-12 (colinear triple), or
// a face plane that does not strictly contain its opposite vertex
// (coplanar input or reversed winding).
var ErrDegenerateTet = errors.New("tetvox: degenerate tetrahedron")

//-----------------------------------------------------------------------------

// Plane is an oriented halfspace: {x : D + N.Dot(x) > 0} is "inside".
type Plane struct {
	N v3.Vec
	D float64
}

// eval returns D + N.Dot(p), the signed perpendicular distance of p from
// the plane (positive on the inside).
func (p Plane) eval(pos v3.Vec) float64 {
	return p.D + p.N.Dot(pos)
}

//-----------------------------------------------------------------------------

// SignedVolume returns the signed volume of the tetrahedron (v0,v1,v2,v3),
// one sixth of det[v1-v0, v2-v0, v3-v0]. A non-degenerate tet with the winding FacesFromTet
// expects has SignedVolume > 0; callers with unknown winding should swap
// two vertices when it comes back negative (spec.md open question (ii)).
func SignedVolume(v0, v1, v2, v3_ v3.Vec) float64 {
	a := v1.Sub(v0)
	b := v2.Sub(v0)
	c := v3_.Sub(v0)
	return v3.Det3(a, b, c) / 6.0
}

//-----------------------------------------------------------------------------

// FacesFromTet derives the four oriented supporting planes of a
// tetrahedron from its four vertices. Plane k's normal points into the
// tet interior as seen from the opposite vertex vk: D_k + N_k.Dot(vk) > 0.
//
// FacesFromTet does not detect degenerate input beyond a basic
// finiteness/epsilon check (spec.md §4.1): a near-zero face normal
// indicates a colinear or coplanar triple and is reported as
// ErrDegenerateTet. The caller remains responsible for supplying a
// non-degenerate tetrahedron.
func FacesFromTet(v0, v1, v2, v3_ v3.Vec) ([4]Plane, error) {
	var faces [4]Plane

	verts := [4]v3.Vec{v0, v1, v2, v3_}
	for _, v := range verts {
		if !v.IsFinite() {
			return faces, ErrNonFinite
		}
	}

	// Opposite-vertex triples (a,b,c): the normal is cross(vb-va, vc-va),
	// and d is set from the centroid of the three face vertices (which is
	// independent of a,b,c's order within the triple). The orderings below
	// reproduce r3du_tet_faces_from_verts in r3d.c component-for-component;
	// they are not a simple rotation of one another because the original
	// hand-expands each face's cross product independently.
	type triple struct{ a, b, c int }
	order := [4]triple{
		{1, 3, 2}, // face 0, opposite vertex 0
		{2, 3, 0}, // face 1, opposite vertex 1
		{3, 1, 0}, // face 2, opposite vertex 2
		{0, 1, 2}, // face 3, opposite vertex 3
	}

	for k, t := range order {
		a, b, c := verts[t.a], verts[t.b], verts[t.c]
		n := b.Sub(a).Cross(c.Sub(a))
		length := n.Length()
		if length < 1e-12 {
			return faces, fmt.Errorf("%w: face %d normal has length %g", ErrDegenerateTet, k, length)
		}
		n = n.Normalize()
		centroid := a.Add(b).Add(c).DivScalar(3.0)
		faces[k] = Plane{N: n, D: -n.Dot(centroid)}
	}

	// Sanity check: each plane must classify its own opposite vertex as
	// strictly inside, per the contract in spec.md §4.1. A correctly
	// wound, non-degenerate tet always satisfies this; if it doesn't, the
	// input winding was reversed and the caller needs to swap vertices
	// (see DESIGN.md open question 2) or the tet truly is degenerate.
	for k := range faces {
		if faces[k].eval(verts[k]) <= 0 {
			return faces, fmt.Errorf("%w: face %d does not contain opposite vertex (wrong winding?)", ErrDegenerateTet, k)
		}
	}

	return faces, nil
}
