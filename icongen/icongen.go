// Package icongen draws the TarTV app icon: a white "#" on a rounded blue
// gradient tile, with a little TV in the bottom-right corner.
package icongen

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// TarSystem colours. The tile fades from PrimaryBlue at the top to DarkBlue
// at the bottom.
var (
	PrimaryBlue = color.NRGBA{R: 43, G: 92, B: 176, A: 255} // #2B5CB0
	DarkBlue    = color.NRGBA{R: 30, G: 64, B: 128, A: 255} // #1E4080
)

var (
	hashWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	tvWhite   = color.NRGBA{R: 255, G: 255, B: 255, A: 200}
)

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t)
}

// GradientAt is the colour of row y on a tile of the given size.
func GradientAt(y, size int) color.NRGBA {
	t := float64(y) / float64(size)
	return color.NRGBA{
		R: lerp(PrimaryBlue.R, DarkBlue.R, t),
		G: lerp(PrimaryBlue.G, DarkBlue.G, t),
		B: lerp(PrimaryBlue.B, DarkBlue.B, t),
		A: 255,
	}
}

func gradient(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		row := image.Rect(0, y, size, y+1)
		draw.Draw(img, row, image.NewUniform(GradientAt(y, size)), image.Point{}, draw.Src)
	}
	return img
}

// px maps a pixel index to the centre of that pixel.
func px(v int) float64 {
	return float64(v) + 0.5
}

func roundedRect(w, h, r float64) *canvas.Path {
	if w <= 0 || h <= 0 {
		return &canvas.Path{}
	}
	if r <= 0 {
		return canvas.Rectangle(w, h)
	}
	return canvas.RoundedRectangle(w, h, r)
}

// line is a butt-capped stroke between the centres of two pixels.
func line(x0, y0, x1, y1 int, width float64) *canvas.Path {
	p := &canvas.Path{}
	if x0 == x1 && y0 == y1 {
		// Tiny icons collapse some strokes to a point; there's nothing to draw.
		return p
	}
	p.MoveTo(px(x0), px(y0))
	p.LineTo(px(x1), px(y1))
	return p.Stroke(width, canvas.ButtCap, canvas.MiterJoin, canvas.Tolerance)
}

// coverage rasterizes p (in image coordinates, y pointing down) into an
// alpha mask for a size×size tile. ToVectorRasterizer expects canvas
// coordinates with y pointing up, so the path is mirrored about the tile
// height first.
func coverage(size int, p *canvas.Path) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	ras := vector.NewRasterizer(size, size)
	flip := canvas.Identity.Translate(0, float64(size)).Scale(1, -1)
	p.Transform(flip).ToVectorRasterizer(ras, canvas.DPMM(1.0))
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func mix(under, over, a uint8) uint8 {
	return uint8((int(over)*int(a) + int(under)*(255-int(a)) + 127) / 255)
}

// paint replaces every pixel p covers with c, alpha included. Only the
// partly covered edge pixels are mixed with what was there before.
func paint(dst *image.NRGBA, p *canvas.Path, c color.NRGBA) {
	cov := coverage(dst.Bounds().Dx(), p)
	for i, a := range cov.Pix {
		if a == 0 {
			continue
		}
		pix := dst.Pix[i*4 : i*4+4 : i*4+4]
		pix[0] = mix(pix[0], c.R, a)
		pix[1] = mix(pix[1], c.G, a)
		pix[2] = mix(pix[2], c.B, a)
		pix[3] = mix(pix[3], c.A, a)
	}
}

// clipCorners drops anything in the corner squares whose centre is more than
// half a pixel outside the arc, so the outermost corner pixel is always empty.
func clipCorners(mask *image.Alpha, r int) {
	size := mask.Bounds().Dx()
	rf := float64(r)
	for y := 0; y < r; y++ {
		for x := 0; x < r; x++ {
			if math.Hypot(rf-px(x), rf-px(y)) <= rf-0.5 {
				continue
			}
			mask.SetAlpha(x, y, color.Alpha{})
			mask.SetAlpha(size-1-x, y, color.Alpha{})
			mask.SetAlpha(x, size-1-y, color.Alpha{})
			mask.SetAlpha(size-1-x, size-1-y, color.Alpha{})
		}
	}
}

// Mask returns the rounded-rectangle opacity mask for a tile of the given
// size. The corner radius is 15% of the size.
func Mask(size int) *image.Alpha {
	s := float64(size)
	r := int(0.15 * s)
	mask := coverage(size, roundedRect(s, s, float64(r)))
	clipCorners(mask, r)
	return mask
}

func drawHash(dst *image.NRGBA, size int) {
	s := float64(size)
	center := size / 2
	hashSize := int(0.4 * s)
	offset := int(0.3 * float64(hashSize))
	width := float64(max(1, int(0.08*s)))
	from, to := center-hashSize/2, center+hashSize/2

	for _, c := range []int{center - offset, center + offset} {
		paint(dst, line(c, from, c, to, width), hashWhite)
		paint(dst, line(from, c, to, c, width), hashWhite)
	}
}

func drawTV(dst *image.NRGBA, size int) {
	s := float64(size)
	tv := int(0.15 * s)
	if tv == 0 {
		return
	}
	t := float64(tv)
	x := size - tv - int(0.1*s)
	y := x

	body := roundedRect(t, float64(int(0.7*t)), float64(int(0.1*t)))
	paint(dst, body.Translate(float64(x), float64(y)), tvWhite)

	width := float64(max(1, int(0.015*s)))
	top := y - int(0.3*t)
	paint(dst, line(x+int(0.3*t), y, x+int(0.2*t), top, width), tvWhite)
	paint(dst, line(x+int(0.7*t), y, x+int(0.8*t), top, width), tvWhite)
}

// Render draws the icon at size×size pixels. Pixels outside the rounded tile
// are fully transparent.
func Render(size int) *image.NRGBA {
	if size <= 0 {
		return image.NewNRGBA(image.Rectangle{})
	}
	bounds := image.Rect(0, 0, size, size)
	out := image.NewNRGBA(bounds)
	draw.Draw(out, bounds, gradient(size), image.Point{}, draw.Src)

	// Opacity comes from the mask alone; whatever alpha the gradient had is
	// thrown away.
	mask := Mask(size)
	for i, a := range mask.Pix {
		out.Pix[i*4+3] = a
	}

	drawHash(out, size)
	drawTV(out, size)
	return out
}

// RenderPNG writes Render(size) to w as a PNG.
func RenderPNG(w io.Writer, size int) error {
	return png.Encode(w, Render(size))
}
