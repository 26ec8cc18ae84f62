package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// captionHeight is the band reserved under a captioned canvas.
const captionHeight = 18

// Caption returns a copy of img extended by a text band at the bottom.
func Caption(img *image.RGBA, text string, fg color.Color) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()+captionHeight))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.RGBA{R: 16, G: 16, B: 20, A: 255}), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, 0, b.Dx(), b.Dy()), img, b.Min, draw.Src)
	d := font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(fg),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, b.Dy()+captionHeight-5),
	}
	d.DrawString(text)
	return out
}
