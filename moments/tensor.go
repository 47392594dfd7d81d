// Package moments turns a raw tetvox moment vector into the derived
// quantities callers actually want: centroid, inertia tensor, and
// relative-tolerance comparisons between moment vectors.
package moments

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//-----------------------------------------------------------------------------

// Vector is the canonical ordering of tetvox's raw moment output:
// [1, x, y, z, x^2, y^2, z^2, xy, yz, zx] (spec.md §4.4).
type Vector []float64

// Volume returns the zeroth moment.
func (v Vector) Volume() float64 {
	return v[0]
}

// Centroid returns the first moments divided by volume. Callers must
// check Volume() > 0 first; a zero-volume region has no centroid.
func (v Vector) Centroid() (x, y, z float64) {
	vol := v[0]
	return v[1] / vol, v[2] / vol, v[3] / vol
}

//-----------------------------------------------------------------------------

// Tensor is the 3x3 symmetric second-moment-of-volume matrix
//
//	[ x2  xy  zx ]
//	[ xy  y2  yz ]
//	[ zx  yz  z2 ]
//
// assembled from a length-10 moment vector (spec.md §4.4 order 2).
type Tensor struct {
	*mat.SymDense
}

// NewTensor builds a Tensor from mom, which must have at least 10
// entries (order-2 output).
func NewTensor(mom Vector) (Tensor, error) {
	if len(mom) < 10 {
		return Tensor{}, fmt.Errorf("moments: NewTensor requires order-2 input (10 entries), got %d", len(mom))
	}
	sym := mat.NewSymDense(3, []float64{
		mom[4], mom[7], mom[9],
		0, mom[5], mom[8],
		0, 0, mom[6],
	})
	return Tensor{sym}, nil
}

// Trace returns x2 + y2 + z2, the scalar polar second moment.
func (t Tensor) Trace() float64 {
	return mat.Trace(t.SymDense)
}

//-----------------------------------------------------------------------------

// Close reports whether a and b agree to within a relative tolerance rtol
// (falling back to an absolute tolerance atol near zero), element-wise.
func Close(a, b Vector, rtol, atol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !floats.EqualWithinAbsOrRel(a[i], b[i], atol, rtol) {
			return false
		}
	}
	return true
}

// MaxRelDiff returns the largest relative difference between a and b
// across all components, for reporting a property-test failure with a
// concrete magnitude rather than a bare pass/fail.
func MaxRelDiff(a, b Vector) float64 {
	worst := 0.0
	for i := range a {
		denom := math.Max(math.Abs(a[i]), math.Abs(b[i]))
		if denom == 0 {
			continue
		}
		d := math.Abs(a[i]-b[i]) / denom
		if d > worst {
			worst = d
		}
	}
	return worst
}

// Sum adds a collection of moment vectors component-wise. Summing the
// moments over a partition of a region gives the moments of the whole
// (partition invariance, P4).
func Sum(vecs ...Vector) Vector {
	if len(vecs) == 0 {
		return nil
	}
	out := make(Vector, len(vecs[0]))
	for _, v := range vecs {
		for i, x := range v {
			out[i] += x
		}
	}
	return out
}
