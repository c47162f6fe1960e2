package canvas

import (
	"bytes"
	"fmt"

	"github.com/boombuler/barcode/qr"
	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/barcode"

	"github.com/lvillar/dqfile/form"
)

// Color is an RGB color with 0-255 components.
type Color struct{ R, G, B int }

// Palette used by the application forms.
var (
	Black     = Color{0, 0, 0}
	White     = Color{255, 255, 255}
	Navy      = Color{24, 48, 92}
	Slate     = Color{90, 100, 115}
	LightGray = Color{225, 229, 235}
	FieldLine = Color{150, 155, 165}
)

// TextStyle selects the font and color of drawn text.
type TextStyle struct {
	Size  float64
	Bold  bool
	Color Color
}

// Symbology selects a barcode type.
type Symbology int

const (
	Code128 Symbology = iota
	PDF417
	QR
)

// Page is one page of a Document. Drawing on a page that is not the most
// recently added one is allowed; the Document switches its write target.
type Page struct {
	doc    *Document
	number int
}

// Number returns the 1-based page number.
func (p *Page) Number() int { return p.number }

// Document returns the owning document.
func (p *Page) Document() *Document { return p.doc }

// activate makes p the fpdf write target and reports whether drawing should
// proceed.
func (p *Page) activate() bool {
	if p.doc.Err() != nil {
		return false
	}
	if p.doc.done {
		p.doc.SetError(ErrSerialized)
		return false
	}
	if p.doc.pdf.PageNo() != p.number {
		p.doc.pdf.SetPage(p.number)
	}
	return true
}

// fy converts a PDF user-space y to fpdf's top-left origin.
func fy(y float64) float64 { return PageHeight - y }

// Text draws s with its baseline at (x, y).
func (p *Page) Text(x, y float64, s string, st TextStyle) {
	if s == "" || !p.activate() {
		return
	}
	pdf := p.doc.pdf
	if st.Size <= 0 {
		st.Size = 9
	}
	p.doc.useFont(st.Bold, st.Size)
	pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
	pdf.SetFillColor(st.Color.R, st.Color.G, st.Color.B)
	pdf.Text(x, fy(y), s)
}

// FillRect fills the rectangle whose lower-left corner is (x, y).
func (p *Page) FillRect(x, y, w, h float64, c Color) {
	if !p.activate() {
		return
	}
	pdf := p.doc.pdf
	pdf.SetFillColor(c.R, c.G, c.B)
	pdf.Rect(x, fy(y+h), w, h, "F")
}

// StrokeRect outlines the rectangle whose lower-left corner is (x, y).
func (p *Page) StrokeRect(x, y, w, h, lineWidth float64, c Color) {
	if !p.activate() {
		return
	}
	pdf := p.doc.pdf
	pdf.SetLineWidth(lineWidth)
	pdf.SetDrawColor(c.R, c.G, c.B)
	pdf.Rect(x, fy(y+h), w, h, "D")
}

// Line strokes a straight line.
func (p *Page) Line(x1, y1, x2, y2, lineWidth float64, c Color) {
	if !p.activate() {
		return
	}
	pdf := p.doc.pdf
	pdf.SetLineWidth(lineWidth)
	pdf.SetDrawColor(c.R, c.G, c.B)
	pdf.Line(x1, fy(y1), x2, fy(y2))
}

// AddField registers an interactive field on this page. The field's Page is
// set from p; a duplicate name is recorded as the document error.
func (p *Page) AddField(f form.Field) {
	if !p.activate() {
		return
	}
	f.Page = p.number
	if err := p.doc.fields.Add(f); err != nil {
		p.doc.SetError(err)
	}
}

// TextField draws a field box and registers a text field over it.
func (p *Page) TextField(name string, x, y, w, h float64, value string) {
	p.StrokeRect(x, y, w, h, 0.5, FieldLine)
	p.AddField(form.Field{
		Name:  name,
		Kind:  form.KindText,
		Rect:  form.Rect{LLX: x, LLY: y, URX: x + w, URY: y + h},
		Value: value,
	})
}

// SignatureField draws a signature rule and registers a typed-name field.
func (p *Page) SignatureField(name string, x, y, w, h float64, value string) {
	p.Line(x, y, x+w, y, 0.75, Black)
	p.AddField(form.Field{
		Name:    name,
		Kind:    form.KindSignature,
		Rect:    form.Rect{LLX: x, LLY: y, URX: x + w, URY: y + h},
		Value:   value,
		Tooltip: "Type full legal name to sign",
	})
}

// Checkbox draws a square and registers a check box over it.
func (p *Page) Checkbox(name string, x, y, size float64, checked bool) {
	p.StrokeRect(x, y, size, size, 0.75, Black)
	p.AddField(form.Field{
		Name:    name,
		Kind:    form.KindCheckbox,
		Rect:    form.Rect{LLX: x, LLY: y, URX: x + size, URY: y + size},
		Checked: checked,
	})
}

// Image draws a PNG or JPEG with its lower-left corner at (x, y). Images are
// registered once per name and shared between pages.
func (p *Page) Image(name string, data []byte, x, y, w, h float64) {
	if !p.activate() {
		return
	}
	pdf := p.doc.pdf
	opts := fpdf.ImageOptions{ReadDpi: true}
	if pdf.GetImageInfo(name) == nil {
		opts.ImageType = pdf.ImageTypeFromMime(sniffImage(data))
		if info := pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data)); info == nil {
			p.doc.SetError(fmt.Errorf("canvas: registering image %q: %w", name, pdf.Error()))
			return
		}
	}
	pdf.ImageOptions(name, x, fy(y+h), w, h, false, opts, 0, "")
}

// Barcode draws code in the given symbology scaled into the rectangle whose
// lower-left corner is (x, y).
func (p *Page) Barcode(sym Symbology, code string, x, y, w, h float64) {
	if !p.activate() {
		return
	}
	pdf := p.doc.pdf
	var key string
	switch sym {
	case Code128:
		key = barcode.RegisterCode128(pdf, code)
	case PDF417:
		key = barcode.RegisterPdf417(pdf, code, 6, 2)
	case QR:
		key = barcode.RegisterQR(pdf, code, qr.M, qr.Auto)
	default:
		p.doc.SetError(fmt.Errorf("canvas: unknown symbology %d", sym))
		return
	}
	if key == "" {
		p.doc.SetError(fmt.Errorf("canvas: encoding barcode %q: %w", code, pdf.Error()))
		return
	}
	barcode.Barcode(pdf, key, x, fy(y+h), w, h, false)
}

// NoteBottom records that content reached y while the page's bottom limit
// is limit. Drawing below the limit is kept but reported by Overflow.
func (p *Page) NoteBottom(y, limit float64) {
	if y >= limit {
		return
	}
	if low, ok := p.doc.overflow[p.number]; !ok || y < low {
		p.doc.overflow[p.number] = y
	}
}

func sniffImage(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG")):
		return "image/png"
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8}):
		return "image/jpeg"
	case bytes.HasPrefix(data, []byte("GIF8")):
		return "image/gif"
	}
	return ""
}
