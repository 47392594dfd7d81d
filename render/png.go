package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/golang/freetype"
	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/sdfx-labs/tetvox/tetvox"
)

//-----------------------------------------------------------------------------

const legendHeight = 24

// WriteSlicePNG rasterizes Z layer k of g's m0 field to a PNG heatmap,
// with a legend band along the bottom naming the layer, the debug-export
// counterpart of render.WriteSliceSVG for viewers that want a raster
// image rather than a vector one.
func WriteSlicePNG(w io.Writer, g *tetvox.Grid, k int, cellPx int) error {
	if k < 0 || k >= g.N.Z {
		return fmt.Errorf("render: layer %d out of range [0,%d)", k, g.N.Z)
	}
	full := layerScale(g)

	width := g.N.X * cellPx
	height := g.N.Y*cellPx + legendHeight
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gc := draw2dimg.NewGraphicContext(img)

	for i := 0; i < g.N.X; i++ {
		for j := 0; j < g.N.Y; j++ {
			mom := g.At(i, j, k)
			t := 0.0
			if full > 0 {
				t = mom[0] / full
			}
			r, gg, b := heatColor(t)
			gc.SetFillColor(color.RGBA{r, gg, b, 255})
			draw2dkit.Rectangle(gc, float64(i*cellPx), float64(j*cellPx), float64((i+1)*cellPx), float64((j+1)*cellPx))
			gc.Fill()
		}
	}

	if err := drawLegend(gc, g.N.Y*cellPx, k); err != nil {
		return err
	}

	return png.Encode(w, img)
}

// legendFont names the font registered below; draw2dimg.RegisterFont
// keys its font cache off this struct rather than a file path.
var legendFont = draw2d.FontData{Name: "goregular", Family: draw2d.FontFamilySans, Style: draw2d.FontStyleNormal}

// drawLegend writes the layer index as text beneath the heatmap, using
// freetype to parse an embedded TrueType face and draw2d's font-drawing
// path to rasterize it (the same "parse font, draw string" split the
// draw2d/freetype pairing is built around).
func drawLegend(gc *draw2dimg.GraphicContext, yOffset, layer int) error {
	font, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return fmt.Errorf("render: parsing legend font: %w", err)
	}
	draw2dimg.RegisterFont(legendFont, font)

	gc.SetFontData(legendFont)
	gc.SetFillColor(color.Black)
	gc.SetFontSize(14)
	gc.FillStringAt(fmt.Sprintf("layer z=%d", layer), 4, float64(yOffset)+16)
	return nil
}
