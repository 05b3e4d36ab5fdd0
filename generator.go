package icongen

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/foodtracker/icongen/utils"
)

// Ops holds the options of a generation run.
type Ops struct {
	// Dst is the output directory. It has to exist already.
	Dst string
	// Vector forces the SVG renderer.
	Vector bool
	// Favicon additionally bundles a multi-resolution favicon.ico.
	Favicon bool
	// Manifest is the path of the icons JSON fragment. Empty disables it.
	Manifest string
	// Prefix is prepended to the file names in the manifest.
	Prefix string
}

// Generator writes an icon set with a single renderer and reports progress on Out.
type Generator struct {
	Renderer Renderer
	Out      io.Writer

	decorate bool
}

// NewGenerator returns a Generator. Progress lines are colored only when out is a terminal.
func NewGenerator(r Renderer, out io.Writer) *Generator {
	return &Generator{
		Renderer: r,
		Out:      out,
		decorate: utils.IsTerminal(out),
	}
}

// Execute selects the renderer, writes the default icon set into op.Dst
// together with the optional favicon bundle and manifest, and prints the banners.
// The first failing write aborts the run.
func Execute(op *Ops, out io.Writer) error {
	r, fallback := SelectRenderer(op.Vector)
	g := NewGenerator(r, out)

	if fallback {
		g.status(utils.StatusMessage, "⚠️  Raster backend not available. Creating placeholder icons...\n")
	}

	icons := DefaultIcons()
	if _, err := g.Generate(op.Dst, icons); err != nil {
		return err
	}

	if op.Favicon {
		if d, ok := r.(Drawer); ok {
			path := filepath.Join(op.Dst, FaviconName)
			if err := WriteFavicon(path, d, FaviconSizes); err != nil {
				return err
			}
			g.created(FaviconName, fmt.Sprintf("%d sizes", len(FaviconSizes)))
		} else {
			g.status(utils.StatusMessage, "⚠️  Skipping %s, it needs the raster backend\n", FaviconName)
		}
	}

	if op.Manifest != "" {
		m := NewManifest(op.Prefix, icons, r.Format())
		if err := WriteManifest(op.Manifest, m); err != nil {
			return err
		}
		g.created(filepath.Base(op.Manifest), fmt.Sprintf("%d icons", len(m.Icons)))
	}

	switch r.Format() {
	case PNG:
		g.status(utils.SuccessMessage, "\n✅ All PWA icons created successfully!\n")
		g.status(utils.DefaultMessage, "📱 Icons are now available for PWA installation\n")
	default:
		g.status(utils.SuccessMessage, "\n✅ SVG icons created as fallback!\n")
		g.status(utils.DefaultMessage, "📦 Build without the noraster tag for PNG icons\n")
	}
	return nil
}

// Generate renders every icon, in order, into dir and returns the written paths.
// Existing files are overwritten. The directory is never created.
func (g *Generator) Generate(dir string, icons []Icon) ([]string, error) {
	paths := make([]string, 0, len(icons))
	for _, ic := range icons {
		name := ic.Filename(g.Renderer.Format())
		path := filepath.Join(dir, name)

		if err := g.writeIcon(path, ic); err != nil {
			return paths, err
		}
		paths = append(paths, path)
		g.created(name, ic.Dimensions())
	}
	return paths, nil
}

func (g *Generator) writeIcon(path string, ic Icon) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := g.Renderer.Render(w, ic); err != nil {
		return fmt.Errorf("unable to render %s: %w", filepath.Base(path), err)
	}
	return w.Flush()
}

func (g *Generator) created(name, detail string) {
	fmt.Fprintf(g.Out, "Created %s (%s)\n", g.decorateText(name, utils.SuccessMessage), detail)
}

func (g *Generator) status(msgType utils.MessageType, format string, args ...any) {
	fmt.Fprint(g.Out, g.decorateText(fmt.Sprintf(format, args...), msgType))
}

func (g *Generator) decorateText(s string, msgType utils.MessageType) string {
	if !g.decorate {
		return s
	}
	return utils.DecorateText(s, msgType)
}
