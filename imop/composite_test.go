package imop

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComp_Basic(t *testing.T) {
	assert := assert.New(t)

	op := InitOp()
	assert.Equal(SrcOver, op.Get())

	op.Set(Clear)
	assert.Equal(Clear, op.Get())

	op.Set("unsupported_composite_operation")
	assert.Equal(Clear, op.Get())

	op.Set(Dst)
	assert.Equal(Dst, op.Get())
}

func TestComp_Ops(t *testing.T) {
	transparent := color.NRGBA{}
	cyan := color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	magenta := color.NRGBA{R: 233, G: 30, B: 99, A: 255}

	rect := image.Rect(0, 0, 10, 10)
	source := image.NewNRGBA(rect)
	backdrop := image.NewNRGBA(rect)

	// The source covers the bottom-left area, the backdrop the top-right one,
	// and they overlap around the center.
	draw.Draw(source, image.Rect(0, 4, 6, 10), &image.Uniform{cyan}, image.Point{}, draw.Src)
	draw.Draw(backdrop, image.Rect(4, 0, 10, 6), &image.Uniform{magenta}, image.Point{}, draw.Src)

	testCases := []struct {
		op         string
		topRight   color.NRGBA
		bottomLeft color.NRGBA
		center     color.NRGBA
	}{
		{Clear, transparent, transparent, transparent},
		{Copy, transparent, cyan, cyan},
		{Dst, magenta, transparent, magenta},
		{SrcOver, magenta, cyan, cyan},
		{DstOver, magenta, cyan, magenta},
		{SrcIn, transparent, transparent, cyan},
		{DstIn, transparent, transparent, magenta},
		{SrcOut, transparent, cyan, transparent},
		{DstOut, magenta, transparent, transparent},
		{SrcAtop, magenta, transparent, cyan},
		{DstAtop, transparent, cyan, magenta},
		{Xor, magenta, cyan, transparent},
	}

	for _, tc := range testCases {
		t.Run(tc.op, func(t *testing.T) {
			op := InitOp()
			op.Set(tc.op)
			bmp := op.Draw(nil, source, backdrop)

			assert.Equal(t, tc.topRight, bmp.Img.NRGBAAt(9, 0))
			assert.Equal(t, tc.bottomLeft, bmp.Img.NRGBAAt(0, 9))
			assert.Equal(t, tc.center, bmp.Img.NRGBAAt(5, 5))
		})
	}
}

func TestComp_SrcOverKeepsStraightAlpha(t *testing.T) {
	rect := image.Rect(0, 0, 1, 1)
	source := image.NewNRGBA(rect)
	backdrop := image.NewNRGBA(rect)

	// A half transparent white source over a transparent backdrop must stay white.
	source.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 128})

	bmp := InitOp().Draw(nil, source, backdrop)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 128}, bmp.Img.NRGBAAt(0, 0))
}
