// Package imop implements the Porter-Duff composition operations
// used for mixing a graphic element with its backdrop.
// The image/draw core package implements only source-over-destination and source,
// this package covers the remaining operations.
//
// The icon renderer draws every layer on its own transparent canvas
// and flattens them with these operations.
package imop

import (
	"image"
	"image/color"
	"math"

	"github.com/foodtracker/icongen/utils"
)

const (
	Clear   = "clear"
	Copy    = "copy"
	Dst     = "dst"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// Bitmap holds the result of a composition.
type Bitmap struct {
	Img *image.NRGBA
}

// Composite holds the currently active composition operation.
type Composite struct {
	current string
	ops     []string
}

// NewBitmap allocates a transparent bitmap of the given size.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// InitOp returns a Composite defaulting to source-over.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops: []string{
			Clear, Copy, Dst, SrcOver, DstOver, SrcIn,
			DstIn, SrcOut, DstOut, SrcAtop, DstAtop, Xor,
		},
	}
}

// Set activates one of the supported composition operations.
// Unknown operations are ignored.
func (op *Composite) Set(cop string) {
	if contains(op.ops, cop) {
		op.current = cop
	}
}

// Get returns the currently active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// Draw composes src over the dst backdrop using the active operation
// and stores the outcome in bitmap. A nil bitmap is allocated on the fly.
// src and dst are expected to share the same bounds.
func (op *Composite) Draw(bitmap *Bitmap, src, dst *image.NRGBA) *Bitmap {
	b := src.Bounds()
	if bitmap == nil {
		bitmap = NewBitmap(b)
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			s := src.NRGBAAt(x, y)
			d := dst.NRGBAAt(x, y)

			rs, gs, bs, as := norm(s.R), norm(s.G), norm(s.B), norm(s.A)
			rb, gb, bb, ab := norm(d.R), norm(d.G), norm(d.B), norm(d.A)

			// Weights of the source and backdrop colors, in premultiplied space.
			var fs, fb float64
			switch op.current {
			case Clear:
				fs, fb = 0, 0
			case Copy:
				fs, fb = 1, 0
			case Dst:
				fs, fb = 0, 1
			case SrcOver:
				fs, fb = 1, 1-as
			case DstOver:
				fs, fb = 1-ab, 1
			case SrcIn:
				fs, fb = ab, 0
			case DstIn:
				fs, fb = 0, as
			case SrcOut:
				fs, fb = 1-ab, 0
			case DstOut:
				fs, fb = 0, 1-as
			case SrcAtop:
				fs, fb = ab, 1-as
			case DstAtop:
				fs, fb = 1-ab, as
			case Xor:
				fs, fb = 1-ab, 1-as
			}

			an := as*fs + ab*fb
			if an <= 0 {
				bitmap.Img.SetNRGBA(x, y, color.NRGBA{})
				continue
			}
			rn := (as*rs*fs + ab*rb*fb) / an
			gn := (as*gs*fs + ab*gb*fb) / an
			bn := (as*bs*fs + ab*bb*fb) / an

			bitmap.Img.SetNRGBA(x, y, color.NRGBA{
				R: denorm(rn),
				G: denorm(gn),
				B: denorm(bn),
				A: denorm(an),
			})
		}
	}
	return bitmap
}

func norm(c uint8) float64 {
	return float64(c) / 255
}

func denorm(v float64) uint8 {
	return uint8(math.Round(utils.Min(utils.Max(v, 0), 1) * 255))
}

func contains(ops []string, op string) bool {
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	return false
}
