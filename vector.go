package icongen

import (
	"bufio"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

const (
	vectorFill = "#2E7D32"
	plateGlyph = "🍽️"
)

// VectorRenderer emits a placeholder SVG: the green circle with a centered plate glyph.
type VectorRenderer struct{}

var _ Renderer = VectorRenderer{}

// NewVectorRenderer returns the fallback renderer.
func NewVectorRenderer() VectorRenderer {
	return VectorRenderer{}
}

// Format implements Renderer.
func (VectorRenderer) Format() Format { return SVG }

// Render implements Renderer.
func (VectorRenderer) Render(w io.Writer, ic Icon) error {
	if ic.Size <= 0 {
		return fmt.Errorf("invalid icon size: %d", ic.Size)
	}
	bw := bufio.NewWriter(w)
	c := ic.Center()

	canvas := svg.New(bw)
	canvas.Start(ic.Size, ic.Size)
	canvas.Circle(c, c, ic.Radius(), fmt.Sprintf(`fill="%s"`, vectorFill))
	canvas.Text(c, c, plateGlyph,
		`text-anchor="middle"`,
		`dy="0.35em"`,
		`font-family="Arial"`,
		fmt.Sprintf(`font-size="%d"`, ic.FontSize()),
		`fill="white"`,
	)
	canvas.End()

	return bw.Flush()
}
