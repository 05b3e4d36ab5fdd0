package icongen

import (
	"fmt"

	"github.com/foodtracker/icongen/utils"
)

// DetailThreshold is the smallest icon size that gets the utensils and the plate.
// Smaller icons render the circle only.
const DetailThreshold = 96

// Icon describes one square icon of the set.
type Icon struct {
	Size int
	// Name overrides the generic icon-{N}x{N} file stem.
	Name string
}

// BaseSizes are the generic manifest icon sizes.
var BaseSizes = []int{72, 96, 128, 144, 152, 192, 384, 512}

// NamedIcons are the platform specific variants, in generation order.
var NamedIcons = []Icon{
	{Size: 180, Name: "apple-touch-icon"},
	{Size: 32, Name: "favicon-32x32"},
	{Size: 16, Name: "favicon-16x16"},
}

// DefaultIcons returns the complete icon set: the base sizes followed by the named variants.
func DefaultIcons() []Icon {
	icons := make([]Icon, 0, len(BaseSizes)+len(NamedIcons))
	for _, size := range BaseSizes {
		icons = append(icons, NewIcon(size))
	}
	return append(icons, NamedIcons...)
}

// NewIcon returns the icon for size, applying the special name if size has one.
func NewIcon(size int) Icon {
	for _, ic := range NamedIcons {
		if ic.Size == size {
			return ic
		}
	}
	return Icon{Size: size}
}

// Stem returns the file name without extension.
func (ic Icon) Stem() string {
	if ic.Name != "" {
		return ic.Name
	}
	return fmt.Sprintf("icon-%dx%d", ic.Size, ic.Size)
}

// Filename returns the file name for the given output format.
func (ic Icon) Filename(f Format) string {
	return ic.Stem() + string(f)
}

// Center is the integer midpoint of the canvas.
func (ic Icon) Center() int { return ic.Size / 2 }

// Padding is the inset of the raster circle from every canvas edge.
func (ic Icon) Padding() int { return ic.Size / 10 }

// Radius is the circle radius used by the vector placeholder.
func (ic Icon) Radius() int { return ic.Center() - 4 }

// FontSize is the glyph size used by the vector placeholder.
func (ic Icon) FontSize() int { return utils.Max(ic.Size/4, 12) }

// Detailed reports whether the utensils and plate are drawn.
func (ic Icon) Detailed() bool { return ic.Size >= DetailThreshold }

// Dimensions returns the "NxN" notation used in status lines and manifests.
func (ic Icon) Dimensions() string {
	return fmt.Sprintf("%dx%d", ic.Size, ic.Size)
}
