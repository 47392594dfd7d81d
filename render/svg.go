// Package render exports slices of a tetvox.Grid for visual inspection:
// SVG and PNG heatmaps of a single Z layer, a 3MF mesh of the occupied
// voxels, and a DXF drawing of a layer's voxel outlines. None of this is
// part of the voxelization core; it exists purely so a human (or a CAD
// viewer) can sanity-check a run.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/sdfx-labs/tetvox/tetvox"
)

//-----------------------------------------------------------------------------

// heatColor maps a normalized volume fraction t (0..1) to RGB components,
// a simple blue-to-red ramp that works equally for the SVG and PNG
// renderers.
func heatColor(t float64) (r, g, b uint8) {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	r = uint8(255 * t)
	b = uint8(255 * (1 - t))
	g = uint8(255 * (1 - absFloat(t-0.5)*2))
	return
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// layerScale returns the volume of one fully-filled voxel of g. The
// renderers divide each voxel's m0 (its zeroth moment, i.e. covered
// volume) by it to get a fill fraction, so a straddling voxel always
// reads lighter than a fully-interior one.
func layerScale(g *tetvox.Grid) float64 {
	return g.Spacing.X * g.Spacing.Y * g.Spacing.Z
}

//-----------------------------------------------------------------------------

// WriteSliceSVG renders Z layer k of g's m0 field as an SVG heatmap, one
// <rect> per voxel, cellPx pixels on a side.
func WriteSliceSVG(w io.Writer, g *tetvox.Grid, k int, cellPx int) error {
	if k < 0 || k >= g.N.Z {
		return fmt.Errorf("render: layer %d out of range [0,%d)", k, g.N.Z)
	}
	full := layerScale(g)

	canvas := svg.New(w)
	canvas.Start(g.N.X*cellPx, g.N.Y*cellPx)
	defer canvas.End()

	for i := 0; i < g.N.X; i++ {
		for j := 0; j < g.N.Y; j++ {
			mom := g.At(i, j, k)
			t := 0.0
			if full > 0 {
				t = mom[0] / full
			}
			r, gg, b := heatColor(t)
			style := fmt.Sprintf("fill:rgb(%d,%d,%d);stroke:none", r, gg, b)
			canvas.Rect(i*cellPx, j*cellPx, cellPx, cellPx, style)
		}
	}
	return nil
}
