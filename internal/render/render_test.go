package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasDrawsSquaresWithGap(t *testing.T) {
	cells := []uint8{
		0, 200,
		20, 0,
	}
	img, err := Canvas(cells, 2, 2, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 12, 12), img.Bounds())

	black := color.RGBA{A: 255}
	assert.Equal(t, black, img.RGBAAt(0, 0), "empty cell stays background")
	assert.Equal(t, Grayscale(200), img.RGBAAt(6, 0))
	assert.Equal(t, Grayscale(200), img.RGBAAt(10, 4))
	assert.Equal(t, black, img.RGBAAt(11, 4), "gap column")
	assert.Equal(t, black, img.RGBAAt(8, 5), "gap row")
	assert.Equal(t, Grayscale(20), img.RGBAAt(0, 6))
}

func TestPaintRejectsMismatchedCells(t *testing.T) {
	_, err := Canvas([]uint8{1, 2, 3}, 2, 2, DefaultOptions())
	require.ErrorIs(t, err, ErrCellCount)
}

func TestParseTint(t *testing.T) {
	p, err := ParseTint("#FF8000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, G: 128, A: 255}, p(255))
	assert.Equal(t, color.RGBA{A: 255}, p(0))

	p, err = ParseTint("gray")
	require.NoError(t, err)
	assert.Equal(t, Grayscale(70), p(70))

	_, err = ParseTint("ff80")
	assert.Error(t, err)
	_, err = ParseTint("zzzzzz")
	assert.Error(t, err)
}

func TestCaptionExtendsCanvas(t *testing.T) {
	img, err := Canvas(make([]uint8, 20*4), 20, 4, DefaultOptions())
	require.NoError(t, err)

	out := Caption(img, "seed 1", color.White)
	assert.Equal(t, img.Bounds().Dx(), out.Bounds().Dx())
	assert.Equal(t, img.Bounds().Dy()+captionHeight, out.Bounds().Dy())

	lit := false
	for y := img.Bounds().Dy(); y < out.Bounds().Dy() && !lit; y++ {
		for x := 0; x < out.Bounds().Dx(); x++ {
			if out.RGBAAt(x, y).R > 128 {
				lit = true
				break
			}
		}
	}
	assert.True(t, lit, "caption text should be drawn in the band")
}

func TestSheetTilesImages(t *testing.T) {
	a, err := Canvas([]uint8{255}, 1, 1, Options{PixelSize: 10})
	require.NoError(t, err)
	b, err := Canvas([]uint8{0}, 1, 1, Options{PixelSize: 10, Background: color.RGBA{A: 255}})
	require.NoError(t, err)

	sheet := Sheet([]*image.RGBA{a, b, a}, 2, 0.5)
	assert.Equal(t, image.Rect(0, 0, 10, 10), sheet.Bounds())
	assert.Equal(t, uint8(255), sheet.RGBAAt(2, 2).R)
	assert.Equal(t, uint8(0), sheet.RGBAAt(7, 2).R)
	assert.Equal(t, uint8(255), sheet.RGBAAt(2, 7).R)
}

func TestWritePNGRoundTrips(t *testing.T) {
	img, err := Canvas([]uint8{255, 0, 0, 70}, 2, 2, DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
