//go:build !noraster

package icongen

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/foodtracker/icongen/imop"
	"golang.org/x/image/colornames"
)

func init() {
	newRasterRenderer = func() Renderer { return NewRasterRenderer() }
}

var (
	circleFill    = color.NRGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff} // #2E7D32
	circleOutline = color.NRGBA{R: 0x1b, G: 0x5e, B: 0x20, A: 0xff} // #1B5E20
	plateOutline  = color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff} // #E0E0E0
)

// RasterRenderer draws the icon as a PNG image.
type RasterRenderer struct {
	op *imop.Composite
}

var (
	_ Renderer = (*RasterRenderer)(nil)
	_ Drawer   = (*RasterRenderer)(nil)
)

// NewRasterRenderer returns a renderer flattening its layers with source-over.
func NewRasterRenderer() *RasterRenderer {
	op := imop.InitOp()
	op.Set(imop.SrcOver)
	return &RasterRenderer{op: op}
}

// Format implements Renderer.
func (r *RasterRenderer) Format() Format { return PNG }

// Render implements Renderer.
func (r *RasterRenderer) Render(w io.Writer, ic Icon) error {
	img, err := r.Draw(ic)
	if err != nil {
		return err
	}
	return imaging.Encode(w, img, imaging.PNG)
}

// Draw paints the base circle and, for detailed icons, the tableware on a
// separate layer, then composites the layers into a single image.
func (r *RasterRenderer) Draw(ic Icon) (image.Image, error) {
	if ic.Size <= 0 {
		return nil, fmt.Errorf("invalid icon size: %d", ic.Size)
	}
	var (
		size = ic.Size
		pad  = ic.Padding()
	)

	base := gg.NewContext(size, size)
	drawEllipse(base, pad, pad, size-pad, size-pad, circleFill, circleOutline, 2)

	details := gg.NewContext(size, size)
	if ic.Detailed() {
		drawTableware(details, ic)
	}

	bmp := r.op.Draw(nil, imaging.Clone(details.Image()), imaging.Clone(base.Image()))
	return bmp.Img, nil
}

// drawTableware draws a simplified fork, knife and plate around the center.
func drawTableware(dc *gg.Context, ic Icon) {
	c, s := ic.Center(), ic.Size

	drawRect(dc, c-s/8, c-s/6, c-s/10, c+s/6, colornames.White)
	drawRect(dc, c+s/10, c-s/6, c+s/8, c+s/6, colornames.White)

	drawEllipse(dc, c-s/4, c, c+s/4, c+s/8, colornames.White, plateOutline, 1)
}

// drawRect fills the rectangle whose corners (x0,y0) and (x1,y1) are both inclusive.
func drawRect(dc *gg.Context, x0, y0, x1, y1 int, fill color.Color) {
	dc.DrawRectangle(float64(x0), float64(y0), float64(x1-x0+1), float64(y1-y0+1))
	dc.SetColor(fill)
	dc.Fill()
}

// drawEllipse fills the ellipse inscribed in the inclusive bounding box and
// strokes its outline inside the box.
func drawEllipse(dc *gg.Context, x0, y0, x1, y1 int, fill, outline color.Color, width float64) {
	var (
		cx = float64(x0+x1+1) / 2
		cy = float64(y0+y1+1) / 2
		rx = float64(x1-x0+1) / 2
		ry = float64(y1-y0+1) / 2
	)
	dc.DrawEllipse(cx, cy, rx, ry)
	dc.SetColor(fill)
	dc.Fill()

	dc.DrawEllipse(cx, cy, rx-width/2, ry-width/2)
	dc.SetColor(outline)
	dc.SetLineWidth(width)
	dc.Stroke()
}
