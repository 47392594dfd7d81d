package render

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"

	"github.com/sdfx-labs/tetvox/tetvox"
)

//-----------------------------------------------------------------------------

// WriteSliceDXF exports Z layer k of g's m0 field as a 2D DXF drawing:
// one rectangle outline per occupied (nonzero-volume) voxel, on a single
// "VOXELS" layer, mirroring the layer-oriented mesh export convention
// where elements are stored by layer along the Z axis.
func WriteSliceDXF(path string, g *tetvox.Grid, k int) error {
	if k < 0 || k >= g.N.Z {
		return fmt.Errorf("render: layer %d out of range [0,%d)", k, g.N.Z)
	}

	d := dxf.NewDrawing()
	d.AddLayer("VOXELS", color.White, dxf.DefaultLineType, true)

	sx, sy := g.Spacing.X, g.Spacing.Y
	for i := 0; i < g.N.X; i++ {
		for j := 0; j < g.N.Y; j++ {
			mom := g.At(i, j, k)
			if mom[0] <= 0 {
				continue
			}
			x0, y0 := float64(i)*sx, float64(j)*sy
			x1, y1 := x0+sx, y0+sy
			d.Line(x0, y0, 0, x1, y0, 0)
			d.Line(x1, y0, 0, x1, y1, 0)
			d.Line(x1, y1, 0, x0, y1, 0)
			d.Line(x0, y1, 0, x0, y0, 0)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("render: writing %s: %w", path, err)
	}
	return nil
}
