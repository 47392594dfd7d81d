// Package v3i provides 3D integer vector operations, used for grid
// indices and voxel counts.
package v3i

//-----------------------------------------------------------------------------

// Vec is a 3D integer vector.
type Vec struct {
	X, Y, Z int
}

// Add returns a + b.
func (a Vec) Add(b Vec) Vec {
	return Vec{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func (a Vec) Sub(b Vec) Vec {
	return Vec{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Volume returns the product of the components, the number of
// voxels/cells spanned by a vector used as a voxel count.
func (a Vec) Volume() int {
	return a.X * a.Y * a.Z
}

//-----------------------------------------------------------------------------
