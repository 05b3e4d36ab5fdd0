/*
Package icongen generates the icon set required by an installable web application:
the generic manifest icons (72 to 512 pixels), the Apple touch icon and the two favicons.

Icons are drawn as PNG files. When the raster backend is not compiled in
(build tag noraster) or fails its startup probe, SVG placeholders with the same
file name stems are written instead.

The package provides a command line interface. To check the supported flags type:

	$ icongen --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"
		"os"

		"github.com/foodtracker/icongen"
	)

	func main() {
		op := &icongen.Ops{Dst: "public/icons"}

		if err := icongen.Execute(op, os.Stdout); err != nil {
			log.Fatalf("Error generating the icons: %v", err)
		}
	}
*/
package icongen
