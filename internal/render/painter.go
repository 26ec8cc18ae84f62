//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps an offscreen canvas in sync with the grid and draws it.
type GridPainter struct {
	w, h   int
	opts   Options
	canvas *image.RGBA
	img    *ebiten.Image
}

// NewGridPainter allocates a painter for a w x h grid.
func NewGridPainter(w, h int, opts Options) *GridPainter {
	opts = opts.normalized()
	gp := &GridPainter{w: w, h: h, opts: opts}
	gp.canvas = image.NewRGBA(image.Rect(0, 0, w*opts.PixelSize, h*opts.PixelSize))
	gp.img = ebiten.NewImage(w*opts.PixelSize, h*opts.PixelSize)
	return gp
}

// Blit repaints the canvas from cells and draws it onto dst. Mismatched
// cell slices are ignored.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8) {
	if err := Paint(gp.canvas, cells, gp.w, gp.h, gp.opts); err != nil {
		return
	}
	gp.img.WritePixels(gp.canvas.Pix)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the canvas dimensions in pixels.
func (gp *GridPainter) Size() (int, int) {
	return gp.w * gp.opts.PixelSize, gp.h * gp.opts.PixelSize
}
