// Package conv converts between the vec/v3 and vec/v3i vector types.
package conv

import (
	v3 "github.com/sdfx-labs/tetvox/vec/v3"
	"github.com/sdfx-labs/tetvox/vec/v3i"
)

// V3ToV3i converts a float64 vector to an integer vector (truncating).
func V3ToV3i(a v3.Vec) v3i.Vec {
	return v3i.Vec{X: int(a.X), Y: int(a.Y), Z: int(a.Z)}
}

// V3iToV3 converts an integer vector to a float64 vector.
func V3iToV3(a v3i.Vec) v3.Vec {
	return v3.Vec{X: float64(a.X), Y: float64(a.Y), Z: float64(a.Z)}
}
