package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/foodtracker/icongen"
	"github.com/foodtracker/icongen/utils"
)

const HelpBanner = `
┬┌─┐┌─┐┌┐┌┌─┐┌─┐┌┐┌
││  │ ││││││ ┬├┤ │││
┴└─┘└─┘┘└┘└─┘└─┘┘└┘

PWA icon set generator.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	destination = flag.String("out", "public/icons", "Output directory (must exist)")
	vector      = flag.Bool("vector", false, "Write SVG placeholders instead of PNG icons")
	favicon     = flag.Bool("ico", false, "Also bundle a multi-resolution favicon.ico")
	manifest    = flag.String("manifest", "", "Write the manifest icons JSON to this path")
	prefix      = flag.String("prefix", "/icons/", "Icon src prefix used in the manifest")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	op := &icongen.Ops{
		Dst:      *destination,
		Vector:   *vector,
		Favicon:  *favicon,
		Manifest: *manifest,
		Prefix:   *prefix,
	}

	now := time.Now()
	if err := icongen.Execute(op, os.Stdout); err != nil {
		log.Fatalf(
			utils.DecorateText("Error generating the icons: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}
