package overlay

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/registry"
)

// minFontSize is the smallest size a value is shrunk to when it does not
// fit its field.
const minFontSize = 5.0

// Option configures Render.
type Option func(*renderConfig)

type renderConfig struct {
	watermark *Watermark
	outline   bool
}

// WithWatermark stamps wm across every rendered page.
func WithWatermark(wm Watermark) Option {
	return func(c *renderConfig) {
		c.watermark = &wm
	}
}

// WithOutlines draws the outline of every registry field, filled or not.
func WithOutlines() Option {
	return func(c *renderConfig) {
		c.outline = true
	}
}

// Render draws the answers onto a copy of template at the positions in the
// registry. Template pages without definitions are copied unchanged.
func Render(template []byte, in answers.Answers, opts ...Option) ([]byte, error) {
	cfg := &renderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	src, err := openSource(template)
	if err != nil {
		return nil, err
	}
	pdf := newPDF()
	for n := 1; n <= src.pages; n++ {
		w, h := src.addPage(pdf, n)
		for _, d := range registry.FieldsForPage(n) {
			drawValue(pdf, d, in, w, h, cfg.outline)
		}
		if cfg.watermark != nil {
			drawWatermark(pdf, *cfg.watermark, w, h)
		}
	}
	if pdf.Err() {
		return nil, fmt.Errorf("overlay: render: %w", pdf.Error())
	}
	return output(pdf)
}

// drawValue writes one answer inside its field. fpdf measures y from the
// top edge, so the PDF rectangle is flipped against the page height.
func drawValue(pdf *fpdf.Fpdf, d registry.FieldDefinition, in answers.Answers, pageW, pageH float64, outline bool) {
	r := d.Resolve(pageW, pageH)
	top := pageH - r.URY
	if outline {
		pdf.SetDrawColor(150, 170, 200)
		pdf.SetLineWidth(0.5)
		pdf.Rect(r.LLX, top, r.Width(), r.Height(), "D")
	}
	pdf.SetTextColor(0, 0, 0)

	if d.Type == registry.TypeCheckbox {
		if !in.Bool(d.ID) {
			return
		}
		size := r.Height()
		pdf.SetFont(fontFamily, "B", size)
		mark := "X"
		x := r.LLX + (r.Width()-pdf.GetStringWidth(mark))/2
		pdf.Text(x, top+r.Height()*0.85, mark)
		return
	}

	v := strings.TrimSpace(in.Text(d.ID))
	if v == "" {
		return
	}
	size := d.Size()
	pdf.SetFont(fontFamily, "", size)
	for size > minFontSize && pdf.GetStringWidth(v) > r.Width()-4 {
		size -= 0.5
		pdf.SetFontSize(size)
	}
	baseline := top + (r.Height()+size*0.7)/2
	pdf.Text(r.LLX+2, baseline, v)
}
