package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ErrCellCount is returned when a cell slice does not match the grid size.
var ErrCellCount = errors.New("render: cell count does not match grid size")

// Options controls how cells are laid out on the canvas.
type Options struct {
	// PixelSize is the pitch of one cell on the canvas.
	PixelSize int
	// Gap is left empty between neighbouring squares.
	Gap        int
	Background color.RGBA
	Palette    Palette
}

// DefaultOptions draws 6 pixel cells with a 1 pixel gap on black.
func DefaultOptions() Options {
	return Options{
		PixelSize:  6,
		Gap:        1,
		Background: color.RGBA{A: 255},
		Palette:    Grayscale,
	}
}

func (o Options) normalized() Options {
	if o.PixelSize <= 0 {
		o.PixelSize = 1
	}
	if o.Gap < 0 || o.Gap >= o.PixelSize {
		o.Gap = 0
	}
	if o.Palette == nil {
		o.Palette = Grayscale
	}
	return o
}

// Canvas allocates an image of w*PixelSize by h*PixelSize and paints cells
// onto it.
func Canvas(cells []uint8, w, h int, opts Options) (*image.RGBA, error) {
	opts = opts.normalized()
	dst := image.NewRGBA(image.Rect(0, 0, w*opts.PixelSize, h*opts.PixelSize))
	if err := Paint(dst, cells, w, h, opts); err != nil {
		return nil, err
	}
	return dst, nil
}

// Paint redraws every cell of a w x h grid into dst as a filled square of
// edge PixelSize-Gap. Empty cells are left as background.
func Paint(dst *image.RGBA, cells []uint8, w, h int, opts Options) error {
	if len(cells) != w*h {
		return fmt.Errorf("%w: %d cells for %dx%d", ErrCellCount, len(cells), w, h)
	}
	opts = opts.normalized()
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	edge := opts.PixelSize - opts.Gap
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := cells[y*w+x]
			if v == 0 {
				continue
			}
			r := image.Rect(x*opts.PixelSize, y*opts.PixelSize, x*opts.PixelSize+edge, y*opts.PixelSize+edge)
			draw.Draw(dst, r, image.NewUniform(opts.Palette(v)), image.Point{}, draw.Src)
		}
	}
	return nil
}

// Sheet tiles images into a contact sheet with perRow columns, shrinking each
// tile by scale.
func Sheet(images []*image.RGBA, perRow int, scale float64) *image.RGBA {
	if len(images) == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	if perRow <= 0 {
		perRow = len(images)
	}
	if scale <= 0 {
		scale = 1
	}
	tb := images[0].Bounds()
	tw := int(float64(tb.Dx()) * scale)
	th := int(float64(tb.Dy()) * scale)
	rows := (len(images) + perRow - 1) / perRow
	sheet := image.NewRGBA(image.Rect(0, 0, tw*min(perRow, len(images)), th*rows))
	for i, img := range images {
		cell := image.Rect(0, 0, tw, th).Add(image.Pt((i%perRow)*tw, (i/perRow)*th))
		draw.ApproxBiLinear.Scale(sheet, cell, img, img.Bounds(), draw.Src, nil)
	}
	return sheet
}
