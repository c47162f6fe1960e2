package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lvillar/dqfile/registry"
)

var (
	guideBackground = color.RGBA{0xff, 0xff, 0xff, 0xff}
	guideOutline    = color.RGBA{0x1f, 0x3a, 0x68, 0xff}
	guideRequired   = color.RGBA{0xc0, 0x39, 0x2b, 0xff}
	guideText       = color.RGBA{0x47, 0x55, 0x69, 0xff}
)

// Guide writes a PNG of page n showing every registry field as an outlined
// box labeled with its id. scale is pixels per point; values below 1 are
// treated as 1.
func Guide(w io.Writer, n int, scale float64) error {
	defs := registry.FieldsForPage(n)
	if len(defs) == 0 {
		return fmt.Errorf("%w: no fields on page %d", ErrPageRange, n)
	}
	if scale < 1 {
		scale = 1
	}
	pw, ph := int(612*scale), int(792*scale)
	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	draw.Draw(img, img.Bounds(), image.NewUniform(guideBackground), image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img, Src: image.NewUniform(guideText), Face: basicfont.Face7x13}
	for _, def := range defs {
		x0 := int(def.X / 100 * float64(pw))
		y0 := int(def.Y / 100 * float64(ph))
		x1 := x0 + int(def.Width/100*float64(pw))
		h := def.Height
		if h <= 0 {
			h = 1.8
		}
		y1 := y0 + int(h/100*float64(ph))
		c := guideOutline
		if def.Required {
			c = guideRequired
		}
		outline(img, image.Rect(x0, y0, x1, y1), c)
		d.Dot = fixed.P(x0+2, y1-2)
		d.DrawString(def.ID)
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("overlay: guide page %d: %w", n, err)
	}
	return nil
}

// outline draws a one pixel rectangle border.
func outline(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for x := r.Min.X; x <= r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y, c)
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X, y, c)
	}
}
