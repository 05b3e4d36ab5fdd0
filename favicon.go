package icongen

import (
	"bytes"
	"fmt"
	"image"
	"os"

	ico "github.com/sergeymakinen/go-ico"
)

// FaviconName is the file name of the multi-resolution favicon bundle.
const FaviconName = "favicon.ico"

// FaviconSizes are the resolutions embedded in the favicon bundle.
var FaviconSizes = []int{16, 32, 48}

// EncodeFavicon draws every size with d and bundles the images in ICO format.
func EncodeFavicon(d Drawer, sizes []int) ([]byte, error) {
	images := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		img, err := d.Draw(NewIcon(size))
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, images); err != nil {
		return nil, fmt.Errorf("failed to encode ico: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFavicon writes the favicon bundle to path.
func WriteFavicon(path string, d Drawer, sizes []int) error {
	data, err := EncodeFavicon(d, sizes)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
