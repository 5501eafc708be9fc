// tartv-icons writes the TarTV launcher, web and favicon PNGs into a Flutter
// project. Run it from the project root (or pass -base).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/maxhully/tartv"
)

var (
	green = color.New(color.FgGreen).Add(color.Bold)
	red   = color.New(color.FgRed).Add(color.Bold)
)

func main() {
	var baseDir string
	flag.StringVar(&baseDir, "base", ".", "Flutter project directory to write the icons into")
	flag.Parse()

	exporter := tartv.NewExporter(baseDir)
	exporter.Progress = func(w tartv.Written) {
		fmt.Printf("generated %s (%dx%d)\n", w.Path, w.Size, w.Size)
	}
	if err := exporter.Export(); err != nil {
		red.Fprintf(os.Stderr, "error generating icons: %v\n", err)
		if tartv.IsFilesystem(err) {
			fmt.Fprintf(os.Stderr, "make sure %s exists and is writable\n", baseDir)
		}
		os.Exit(1)
	}

	fmt.Println()
	green.Println("All #TarTV icons generated!")
	fmt.Println(`Run "flutter clean" and "flutter build apk" to pick up the new icons.`)
}
