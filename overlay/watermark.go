package overlay

import (
	"github.com/go-pdf/fpdf"
)

// Watermark is diagonal text stamped over a page, such as SPECIMEN on a
// sample application.
type Watermark struct {
	Text     string   // watermark text
	FontSize float64  // font size in points (default: 60)
	Color    RGBColor // text color (default: light gray)
	Opacity  float64  // 0.0 to 1.0 (default: 0.3)
	Angle    float64  // rotation angle in degrees (default: 45)
}

// RGBColor represents an RGB color value.
type RGBColor struct {
	R, G, B int
}

func (wm Watermark) withDefaults() Watermark {
	if wm.FontSize == 0 {
		wm.FontSize = 60
	}
	if wm.Opacity == 0 {
		wm.Opacity = 0.3
	}
	if wm.Angle == 0 {
		wm.Angle = 45
	}
	if wm.Color == (RGBColor{}) {
		wm.Color = RGBColor{200, 200, 200}
	}
	return wm
}

// Stamp copies every page of data and draws wm over it.
func Stamp(data []byte, wm Watermark) ([]byte, error) {
	src, err := openSource(data)
	if err != nil {
		return nil, err
	}
	pdf := newPDF()
	for n := 1; n <= src.pages; n++ {
		w, h := src.addPage(pdf, n)
		drawWatermark(pdf, wm, w, h)
	}
	return output(pdf)
}

// drawWatermark renders the text centered on the current page.
func drawWatermark(pdf *fpdf.Fpdf, wm Watermark, pageW, pageH float64) {
	if wm.Text == "" {
		return
	}
	wm = wm.withDefaults()
	pdf.SetFont(fontFamily, "B", wm.FontSize)
	pdf.SetTextColor(wm.Color.R, wm.Color.G, wm.Color.B)
	pdf.SetAlpha(wm.Opacity, "Normal")

	textW := pdf.GetStringWidth(wm.Text)
	cx, cy := pageW/2, pageH/2

	pdf.TransformBegin()
	pdf.TransformRotate(wm.Angle, cx, cy)
	pdf.Text(cx-textW/2, cy+wm.FontSize/3, wm.Text)
	pdf.TransformEnd()

	pdf.SetAlpha(1.0, "Normal")
}
