// Package tartv exports the TarTV app icons at every size a Flutter
// project needs.
package tartv

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/maxhully/tartv/icongen"
	"github.com/oxtoacart/bpool"
)

// Density is an Android launcher icon bucket.
type Density struct {
	Folder string
	Size   int
}

// AndroidDensities are the launcher icon buckets, smallest first.
var AndroidDensities = []Density{
	{"mipmap-mdpi", 48},
	{"mipmap-hdpi", 72},
	{"mipmap-xhdpi", 96},
	{"mipmap-xxhdpi", 144},
	{"mipmap-xxxhdpi", 192},
}

// WebIconSizes each get a plain and a maskable copy under web/icons.
var WebIconSizes = []int{192, 512}

// FaviconSize is the edge length of web/favicon.png.
const FaviconSize = 32

// Target is one rendered size and every file it gets written to. All paths
// of a target receive the same bytes. Paths are slash-separated and relative
// to the base directory.
type Target struct {
	Size  int
	Paths []string
}

// DefaultTargets lays the size tables out over a Flutter project: Android
// launcher icons first, then the web icons (plain and maskable), then the
// favicon.
func DefaultTargets() []Target {
	targets := make([]Target, 0, len(AndroidDensities)+len(WebIconSizes)+1)
	for _, d := range AndroidDensities {
		targets = append(targets, Target{
			Size:  d.Size,
			Paths: []string{path.Join("android/app/src/main/res", d.Folder, "ic_launcher.png")},
		})
	}
	for _, size := range WebIconSizes {
		targets = append(targets, Target{
			Size: size,
			Paths: []string{
				fmt.Sprintf("web/icons/Icon-%d.png", size),
				fmt.Sprintf("web/icons/Icon-maskable-%d.png", size),
			},
		})
	}
	return append(targets, Target{Size: FaviconSize, Paths: []string{"web/favicon.png"}})
}

// Written is reported once per file, after it hits the disk.
type Written struct {
	Path string
	Size int
}

// ExportError says which step of the export failed and on which file.
type ExportError struct {
	Op   string // "encode", "mkdir" or "write"
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// IsFilesystem reports whether err came from creating a directory or
// writing a file, as opposed to producing the image itself.
func IsFilesystem(err error) bool {
	var exportErr *ExportError
	if !errors.As(err, &exportErr) {
		return false
	}
	return exportErr.Op == "mkdir" || exportErr.Op == "write"
}

// Exporter writes Targets under BaseDir. Progress, if set, is called after
// each file is written.
type Exporter struct {
	BaseDir  string
	Targets  []Target
	Progress func(Written)

	bufpool *bpool.BufferPool
}

// NewExporter returns an Exporter for the default Flutter icon set.
func NewExporter(baseDir string) *Exporter {
	return &Exporter{
		BaseDir: baseDir,
		Targets: DefaultTargets(),
		bufpool: bpool.NewBufferPool(4),
	}
}

// Export renders every target and writes it out, in order. The first error
// stops the run; files written before it are left in place.
func (e *Exporter) Export() error {
	if e.bufpool == nil {
		e.bufpool = bpool.NewBufferPool(4)
	}
	for _, target := range e.Targets {
		if err := e.exportTarget(target); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) exportTarget(target Target) error {
	if len(target.Paths) == 0 {
		return nil
	}
	// Encode once so every copy of a target is byte-for-byte identical.
	buf := e.bufpool.Get()
	defer e.bufpool.Put(buf)
	if err := icongen.RenderPNG(buf, target.Size); err != nil {
		return &ExportError{Op: "encode", Path: target.Paths[0], Err: err}
	}
	for _, p := range target.Paths {
		dst := filepath.Join(e.BaseDir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return &ExportError{Op: "mkdir", Path: filepath.Dir(dst), Err: err}
		}
		if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
			return &ExportError{Op: "write", Path: dst, Err: err}
		}
		if e.Progress != nil {
			e.Progress(Written{Path: p, Size: target.Size})
		}
	}
	return nil
}

// Export writes the full icon set under baseDir.
func Export(baseDir string) error {
	return NewExporter(baseDir).Export()
}
