package icongen

import (
	"image"
	"io"
)

// Format is the output file extension of a renderer.
type Format string

const (
	PNG Format = ".png"
	SVG Format = ".svg"
)

// MimeType returns the media type used in web app manifests.
func (f Format) MimeType() string {
	switch f {
	case PNG:
		return "image/png"
	case SVG:
		return "image/svg+xml"
	}
	return "application/octet-stream"
}

// Renderer turns an icon description into an encoded image.
type Renderer interface {
	Format() Format
	Render(w io.Writer, ic Icon) error
}

// Drawer is implemented by renderers which can hand out the decoded raster.
type Drawer interface {
	Draw(ic Icon) (image.Image, error)
}

// newRasterRenderer is assigned by the raster backend when it is compiled in.
// Building with the noraster tag leaves it nil.
var newRasterRenderer func() Renderer

// SelectRenderer picks the renderer once, at startup. The raster renderer wins
// when it is available, passes its probe and vector output is not forced.
// fallback reports that the raster renderer was wanted but could not be used.
func SelectRenderer(forceVector bool) (r Renderer, fallback bool) {
	if forceVector {
		return NewVectorRenderer(), false
	}
	if newRasterRenderer != nil {
		r = newRasterRenderer()
		if probe(r) == nil {
			return r, false
		}
	}
	return NewVectorRenderer(), true
}

// probe renders the smallest possible icon to make sure the backend works end to end.
func probe(r Renderer) error {
	return r.Render(io.Discard, Icon{Size: 1})
}
