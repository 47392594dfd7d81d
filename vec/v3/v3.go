// Package v3 provides 3D vector operations.
package v3

import "math"

//-----------------------------------------------------------------------------

// Vec is a 3D float64 vector.
type Vec struct {
	X, Y, Z float64
}

// Zero is the zero vector.
var Zero = Vec{}

//-----------------------------------------------------------------------------

// Add returns a + b.
func (a Vec) Add(b Vec) Vec {
	return Vec{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func (a Vec) Sub(b Vec) Vec {
	return Vec{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product of a and b.
func (a Vec) Mul(b Vec) Vec {
	return Vec{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Div returns the component-wise quotient of a and b.
func (a Vec) Div(b Vec) Vec {
	return Vec{a.X / b.X, a.Y / b.Y, a.Z / b.Z}
}

// AddScalar returns a + k (k added to each component).
func (a Vec) AddScalar(k float64) Vec {
	return Vec{a.X + k, a.Y + k, a.Z + k}
}

// MulScalar returns a * k.
func (a Vec) MulScalar(k float64) Vec {
	return Vec{a.X * k, a.Y * k, a.Z * k}
}

// DivScalar returns a / k.
func (a Vec) DivScalar(k float64) Vec {
	return Vec{a.X / k, a.Y / k, a.Z / k}
}

// Neg returns -a.
func (a Vec) Neg() Vec {
	return Vec{-a.X, -a.Y, -a.Z}
}

// Dot returns the dot product of a and b.
func (a Vec) Dot(b Vec) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a x b.
func (a Vec) Cross(b Vec) Vec {
	return Vec{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the euclidean length of a.
func (a Vec) Length() float64 {
	return math.Sqrt(a.Dot(a))
}

// Normalize returns a unit vector in the direction of a.
// The divisor is guarded with 1e-299, mirroring r3d.c's `norm` macro,
// so a zero vector normalizes to itself instead of producing NaN.
func (a Vec) Normalize() Vec {
	return a.DivScalar(a.Length() + 1.0e-299)
}

// Min returns the component-wise minimum of a and b.
func (a Vec) Min(b Vec) Vec {
	return Vec{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)}
}

// Max returns the component-wise maximum of a and b.
func (a Vec) Max(b Vec) Vec {
	return Vec{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)}
}

// Ceil returns the component-wise ceiling of a.
func (a Vec) Ceil() Vec {
	return Vec{math.Ceil(a.X), math.Ceil(a.Y), math.Ceil(a.Z)}
}

// Abs returns the component-wise absolute value of a.
func (a Vec) Abs() Vec {
	return Vec{math.Abs(a.X), math.Abs(a.Y), math.Abs(a.Z)}
}

// MaxComponent returns the largest component of a.
func (a Vec) MaxComponent() float64 {
	return math.Max(a.X, math.Max(a.Y, a.Z))
}

// MinComponent returns the smallest component of a.
func (a Vec) MinComponent() float64 {
	return math.Min(a.X, math.Min(a.Y, a.Z))
}

// Equals returns true if a and b are equal to within tolerance.
func (a Vec) Equals(b Vec, tolerance float64) bool {
	return a.Sub(b).Length() <= tolerance
}

// IsFinite returns true iff all components of a are finite (not NaN or Inf).
func (a Vec) IsFinite() bool {
	return !math.IsInf(a.X, 0) && !math.IsNaN(a.X) &&
		!math.IsInf(a.Y, 0) && !math.IsNaN(a.Y) &&
		!math.IsInf(a.Z, 0) && !math.IsNaN(a.Z)
}

//-----------------------------------------------------------------------------

// Det3 returns the determinant of the 3x3 matrix with rows a, b, c.
func Det3(a, b, c Vec) float64 {
	return a.X*(b.Y*c.Z-b.Z*c.Y) - a.Y*(b.X*c.Z-b.Z*c.X) + a.Z*(b.X*c.Y-b.Y*c.X)
}

//-----------------------------------------------------------------------------

// Box3 is an axis-aligned 3D bounding box.
type Box3 struct {
	Min, Max Vec
}

// NewBox3 returns a box3 given a center and size.
func NewBox3(center, size Vec) Box3 {
	half := size.MulScalar(0.5)
	return Box3{center.Sub(half), center.Add(half)}
}

// Size returns the size of the box.
func (b Box3) Size() Vec {
	return b.Max.Sub(b.Min)
}

// Center returns the center of the box.
func (b Box3) Center() Vec {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Extend returns the bounding box of b and b2.
func (b Box3) Extend(b2 Box3) Box3 {
	return Box3{b.Min.Min(b2.Min), b.Max.Max(b2.Max)}
}

// Contains returns true if p lies within b (inclusive of the boundary).
func (b Box3) Contains(p Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Overlaps returns true if b and b2 overlap.
func (b Box3) Overlaps(b2 Box3) bool {
	return b.Min.X <= b2.Max.X && b.Max.X >= b2.Min.X &&
		b.Min.Y <= b2.Max.Y && b.Max.Y >= b2.Min.Y &&
		b.Min.Z <= b2.Max.Z && b.Max.Z >= b2.Min.Z
}

//-----------------------------------------------------------------------------
