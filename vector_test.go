package icongen

import (
	"bytes"
	"encoding/xml"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type svgDoc struct {
	XMLName xml.Name `xml:"svg"`
	Width   int      `xml:"width,attr"`
	Height  int      `xml:"height,attr"`
	Circle  struct {
		Cx   int    `xml:"cx,attr"`
		Cy   int    `xml:"cy,attr"`
		R    int    `xml:"r,attr"`
		Fill string `xml:"fill,attr"`
	} `xml:"circle"`
	Text struct {
		X        int    `xml:"x,attr"`
		Y        int    `xml:"y,attr"`
		Anchor   string `xml:"text-anchor,attr"`
		FontSize int    `xml:"font-size,attr"`
		Fill     string `xml:"fill,attr"`
		Value    string `xml:",chardata"`
	} `xml:"text"`
}

func TestVector_Render(t *testing.T) {
	r := NewVectorRenderer()
	assert.Equal(t, SVG, r.Format())

	for _, ic := range DefaultIcons() {
		t.Run(ic.Stem(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, r.Render(&buf, ic))

			var doc svgDoc
			require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc), "invalid markup: %s", buf.String())

			assert.Equal(t, ic.Size, doc.Width)
			assert.Equal(t, ic.Size, doc.Height)
			assert.Equal(t, ic.Size/2, doc.Circle.Cx)
			assert.Equal(t, ic.Size/2, doc.Circle.Cy)
			assert.Equal(t, ic.Size/2-4, doc.Circle.R)
			assert.Equal(t, "#2E7D32", doc.Circle.Fill)

			assert.Equal(t, ic.Size/2, doc.Text.X)
			assert.Equal(t, ic.Size/2, doc.Text.Y)
			assert.Equal(t, "middle", doc.Text.Anchor)
			assert.Equal(t, "white", doc.Text.Fill)
			assert.Equal(t, max(ic.Size/4, 12), doc.Text.FontSize)
			assert.Equal(t, plateGlyph, doc.Text.Value)
		})
	}
}

func TestVector_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	r := NewVectorRenderer()

	require.NoError(t, r.Render(&a, NewIcon(180)))
	require.NoError(t, r.Render(&b, NewIcon(180)))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestVector_InvalidSize(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, NewVectorRenderer().Render(&buf, Icon{}))
	assert.Zero(t, buf.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestVector_WriteError(t *testing.T) {
	assert.Error(t, NewVectorRenderer().Render(failingWriter{}, NewIcon(72)))
}
