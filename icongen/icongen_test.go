package icongen

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sizes = []int{32, 48, 72, 96, 144, 192, 512}

func TestRenderIsSquare(t *testing.T) {
	for _, size := range append([]int{1, 2, 7}, sizes...) {
		img := Render(size)
		assert.Equal(t, size, img.Bounds().Dx(), "width at size %d", size)
		assert.Equal(t, size, img.Bounds().Dy(), "height at size %d", size)
	}
}

func TestRenderNonPositiveSize(t *testing.T) {
	assert.True(t, Render(0).Bounds().Empty())
	assert.True(t, Render(-3).Bounds().Empty())
}

func TestCornersAreTransparent(t *testing.T) {
	// Every size from the first one with a non-zero corner radius.
	var all []int
	for size := 7; size < 32; size++ {
		all = append(all, size)
	}
	for _, size := range append(all, sizes...) {
		img := Render(size)
		last := size - 1
		for _, p := range [][2]int{{0, 0}, {last, 0}, {0, last}, {last, last}} {
			assert.Zero(t, img.NRGBAAt(p[0], p[1]).A, "corner %v at size %d", p, size)
		}
	}
}

func TestMaskCoversMiddle(t *testing.T) {
	mask := Mask(96)
	assert.Equal(t, uint8(255), mask.AlphaAt(48, 48).A)
	assert.Equal(t, uint8(255), mask.AlphaAt(48, 0).A)
	assert.Equal(t, uint8(255), mask.AlphaAt(0, 48).A)
	assert.Zero(t, mask.AlphaAt(0, 0).A)
}

func TestCenterSitsBetweenHashStrokes(t *testing.T) {
	for _, size := range sizes {
		img := Render(size)
		c := size / 2
		want := GradientAt(c, size)
		got := img.NRGBAAt(c, c)
		assert.Equal(t, want, got, "centre pixel at size %d", size)
	}
}

func TestHashStrokesAreWhite(t *testing.T) {
	for _, size := range sizes {
		img := Render(size)
		c := size / 2
		offset := int(0.3 * float64(int(0.4*float64(size))))
		for _, p := range [][2]int{{c - offset, c}, {c + offset, c}, {c, c - offset}, {c, c + offset}} {
			pix := img.NRGBAAt(p[0], p[1])
			assert.Equal(t, uint8(255), pix.A, "stroke %v at size %d", p, size)
			assert.GreaterOrEqual(t, pix.R, uint8(250), "stroke %v at size %d", p, size)
			assert.GreaterOrEqual(t, pix.B, uint8(250), "stroke %v at size %d", p, size)
		}
	}
}

func TestTVBodyReplacesTile(t *testing.T) {
	img := Render(192)
	// tv = 28, anchored at (145, 145), body 28x19.
	pix := img.NRGBAAt(159, 154)
	assert.Equal(t, uint8(200), pix.A)
	assert.GreaterOrEqual(t, pix.R, uint8(250))
	assert.GreaterOrEqual(t, pix.G, uint8(250))
	assert.GreaterOrEqual(t, pix.B, uint8(250))
}

func TestMaskSmallRadiusCorners(t *testing.T) {
	// Radius 1, 2 and 3: the quarter circle still covers part of the corner
	// pixel, but the corner must stay empty.
	for _, size := range []int{7, 13, 14, 19, 20, 26} {
		mask := Mask(size)
		last := size - 1
		assert.Zero(t, mask.AlphaAt(0, 0).A, "size %d", size)
		assert.Zero(t, mask.AlphaAt(last, 0).A, "size %d", size)
		assert.Zero(t, mask.AlphaAt(0, last).A, "size %d", size)
		assert.Zero(t, mask.AlphaAt(last, last).A, "size %d", size)
		assert.Equal(t, uint8(255), mask.AlphaAt(size/2, size/2).A, "size %d", size)
	}
}

func TestGradientRunsDownwards(t *testing.T) {
	for _, size := range sizes {
		img := Render(size)
		// Just inside the rounded corners and left of the hash, so every
		// row is opaque and untouched by glyphs.
		x := int(0.15*float64(size)) + 1
		prev := img.NRGBAAt(x, 0)
		assert.Equal(t, PrimaryBlue, prev)
		for y := 1; y < size; y++ {
			cur := img.NRGBAAt(x, y)
			require.Equal(t, GradientAt(y, size), cur, "row %d at size %d", y, size)
			require.LessOrEqual(t, cur.R, prev.R)
			require.LessOrEqual(t, cur.G, prev.G)
			require.LessOrEqual(t, cur.B, prev.B)
			prev = cur
		}
	}
}

func TestGradientAt(t *testing.T) {
	assert.Equal(t, PrimaryBlue, GradientAt(0, 100))
	// (43*0.5 + 30*0.5, 92*0.5 + 64*0.5, 176*0.5 + 128*0.5), truncated
	assert.Equal(t, uint8(36), GradientAt(50, 100).R)
	assert.Equal(t, uint8(78), GradientAt(50, 100).G)
	assert.Equal(t, uint8(152), GradientAt(50, 100).B)
}

func TestRenderIsDeterministic(t *testing.T) {
	a := Render(144)
	b := Render(144)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, 48))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 48, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
	_, _, _, a := img.At(0, 0).RGBA()
	assert.Zero(t, a)
}
