// Package canvas owns the in-memory PDF that one application is drawn into:
// the fpdf document, its two embedded fonts, the interactive field collector
// and the ordered list of pages.
//
// Coordinates passed to Page methods are PDF user space in points, with the
// origin at the bottom-left corner of a US Letter page. A Document is used
// by exactly one generation request and is not safe for concurrent use.
package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lvillar/dqfile/form"
)

// US Letter in points.
const (
	PageWidth  = 612.0
	PageHeight = 792.0
)

// FontFamily is the family name the embedded fonts are registered under.
const FontFamily = "go"

var (
	// ErrPageRange is returned for a page number the document does not have.
	ErrPageRange = errors.New("canvas: page number out of range")
	// ErrSerialized is returned when a document is modified after Serialize.
	ErrSerialized = errors.New("canvas: document already serialized")
)

// Metadata is written to the PDF /Info dictionary.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Created  time.Time
}

// Document is one application being built.
type Document struct {
	pdf      *fpdf.Fpdf
	fields   *form.Builder
	pages    []*Page
	err      error
	done     bool
	overflow map[int]float64
}

// New creates an empty document with the embedded fonts registered.
// compress controls Flate compression of page content streams.
func New(meta Metadata, compress bool) *Document {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCompression(compress)
	pdf.SetCatalogSort(true)
	pdf.AddUTF8FontFromBytes(FontFamily, "", goregular.TTF)
	pdf.AddUTF8FontFromBytes(FontFamily, "B", gobold.TTF)

	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetKeywords(meta.Keywords, true)
	pdf.SetCreator(meta.Creator, true)
	if !meta.Created.IsZero() {
		pdf.SetCreationDate(meta.Created)
		pdf.SetModificationDate(meta.Created)
	}

	d := &Document{
		pdf:      pdf,
		fields:   form.NewBuilder(),
		overflow: make(map[int]float64),
	}
	if err := pdf.Error(); err != nil {
		d.err = fmt.Errorf("canvas: loading fonts: %w", err)
	}
	return d
}

// AddPage appends a blank page and returns it. Pages are never reordered.
func (d *Document) AddPage() *Page {
	if d.done {
		d.SetError(ErrSerialized)
	}
	d.pdf.AddPage()
	p := &Page{doc: d, number: d.pdf.PageCount()}
	d.pages = append(d.pages, p)
	return p
}

// Pages returns the pages in emission order.
func (d *Document) Pages() []*Page {
	out := make([]*Page, len(d.pages))
	copy(out, d.pages)
	return out
}

// Page returns page n, counting from 1.
func (d *Document) Page(n int) (*Page, error) {
	if n < 1 || n > len(d.pages) {
		return nil, fmt.Errorf("%w: %d of %d", ErrPageRange, n, len(d.pages))
	}
	return d.pages[n-1], nil
}

// PageCount returns the number of pages emitted so far.
func (d *Document) PageCount() int { return len(d.pages) }

// Fields returns the interactive fields declared so far.
func (d *Document) Fields() []form.Field { return d.fields.Fields() }

// FieldNames returns the declared field names in declaration order.
func (d *Document) FieldNames() []string { return d.fields.Names() }

// Err returns the first error recorded while drawing, if any.
func (d *Document) Err() error {
	if d.err != nil {
		return d.err
	}
	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	return nil
}

// SetError records err unless an earlier error is already held.
func (d *Document) SetError(err error) {
	if d.err == nil && err != nil {
		d.err = err
	}
}

// Measure returns the advance width of s in points.
func (d *Document) Measure(s string, bold bool, size float64) float64 {
	d.useFont(bold, size)
	return d.pdf.GetStringWidth(s)
}

// Overflow returns, per page number, the lowest y drawn below the bottom
// limit recorded with NoteBottom.
func (d *Document) Overflow() map[int]float64 {
	out := make(map[int]float64, len(d.overflow))
	for k, v := range d.overflow {
		out[k] = v
	}
	return out
}

// Serialize writes the page content, then appends the interactive form.
// A document can be serialized once.
func (d *Document) Serialize() ([]byte, error) {
	if err := d.Err(); err != nil {
		return nil, err
	}
	if d.done {
		return nil, ErrSerialized
	}
	d.done = true

	// fpdf writes pages 1..current, so the last page must be current.
	d.pdf.SetPage(d.pdf.PageCount())
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("canvas: writing pages: %w", err)
	}
	out, err := form.Inject(buf.Bytes(), d.fields.Fields())
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	return out, nil
}

func (d *Document) useFont(bold bool, size float64) {
	style := ""
	if bold {
		style = "B"
	}
	d.pdf.SetFont(FontFamily, style, size)
}
