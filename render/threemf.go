package render

import (
	"fmt"
	"io"

	"github.com/hpinc/go3mf"

	"github.com/sdfx-labs/tetvox/tetvox"
)

//-----------------------------------------------------------------------------

// cubeTris lists the 12 triangles of a unit cube in cornerOffset-style
// corner order (0..7, same enumeration tetvox uses for its own box
// corners), wound outward.
var cubeTris = [12][3]int{
	{0, 3, 2}, {0, 2, 1}, // bottom (z=0)
	{4, 5, 6}, {4, 6, 7}, // top (z=1)
	{0, 1, 5}, {0, 5, 4}, // y=0
	{2, 3, 7}, {2, 7, 6}, // y=1
	{0, 4, 7}, {0, 7, 3}, // x=0
	{1, 2, 6}, {1, 6, 5}, // x=1
}

var cubeCorners = [8][3]float32{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// Write3MF exports every voxel of g with nonzero volume (m0 > 0) as an
// independent cube in a single 3MF mesh, for loading into a CAD/slicer
// viewer as a coarse visual check of a voxelization run. This plays the
// same "hand the result to a mesh format a real tool can open" role the
// teacher's STL/3MF export does for SDF output.
func Write3MF(w io.Writer, g *tetvox.Grid) error {
	model := &go3mf.Model{}
	mesh := new(go3mf.Mesh)

	sx, sy, sz := g.Spacing.X, g.Spacing.Y, g.Spacing.Z
	for i := 0; i < g.N.X; i++ {
		for j := 0; j < g.N.Y; j++ {
			for k := 0; k < g.N.Z; k++ {
				mom := g.At(i, j, k)
				if mom[0] <= 0 {
					continue
				}
				base := uint32(len(mesh.Vertices.Vertex))
				for _, c := range cubeCorners {
					mesh.Vertices.Vertex = append(mesh.Vertices.Vertex, go3mf.Point3D{
						(float32(i) + c[0]) * float32(sx),
						(float32(j) + c[1]) * float32(sy),
						(float32(k) + c[2]) * float32(sz),
					})
				}
				for _, t := range cubeTris {
					mesh.Triangles.Triangle = append(mesh.Triangles.Triangle, go3mf.Triangle{
						V1: base + uint32(t[0]),
						V2: base + uint32(t[1]),
						V3: base + uint32(t[2]),
					})
				}
			}
		}
	}

	obj := &go3mf.Object{
		ID:   1,
		Mesh: mesh,
	}
	model.Resources.Objects = append(model.Resources.Objects, obj)
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: 1})

	enc := go3mf.NewEncoder(w)
	if err := enc.Encode(model); err != nil {
		return fmt.Errorf("render: encoding 3mf: %w", err)
	}
	return nil
}
