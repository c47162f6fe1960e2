// Package overlay renders answers through the field-position registry
// instead of the page builders: onto a pre-printed template PDF, into an
// HTML mirror of one page, or as a PNG guide of field positions.
//
// Template pages are imported with gofpdi and drawn into a new fpdf
// document, so the output is a flat PDF without form fields.
package overlay

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lvillar/dqfile/reader"
)

// ErrPageRange is returned for page numbers the source does not have.
var ErrPageRange = errors.New("overlay: page out of range")

const fontFamily = "go"

// letter is the size used when a source page reports no media box.
var letter = fpdf.SizeType{Wd: 612, Ht: 792}

// source is a PDF whose pages are imported as templates.
type source struct {
	pages int
	rs    io.ReadSeeker
	imp   *gofpdi.Importer
}

func openSource(data []byte) (*source, error) {
	doc, err := reader.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("overlay: reading source: %w", err)
	}
	return &source{
		pages: doc.NumPages(),
		rs:    bytes.NewReader(data),
		imp:   gofpdi.NewImporter(),
	}, nil
}

// newPDF returns an empty document in points with the Go fonts loaded.
func newPDF() *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.AddUTF8FontFromBytes(fontFamily, "", goregular.TTF)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", gobold.TTF)
	return pdf
}

// addPage imports page n of src as a new page of pdf and returns its size.
func (src *source) addPage(pdf *fpdf.Fpdf, n int) (w, h float64) {
	tplID := src.imp.ImportPageFromStream(pdf, &src.rs, n, "/MediaBox")
	w, h = letter.Wd, letter.Ht
	if dims, ok := src.imp.GetPageSizes()[n]; ok {
		if mb, ok := dims["/MediaBox"]; ok && mb["w"] > 0 && mb["h"] > 0 {
			w, h = mb["w"], mb["h"]
		}
	}
	pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})
	src.imp.UseImportedTemplate(pdf, tplID, 0, 0, w, h)
	return w, h
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("overlay: writing: %w", err)
	}
	return buf.Bytes(), nil
}

// Extract copies pages first through last, inclusive and 1-based, into a
// new flat PDF.
func Extract(data []byte, first, last int) ([]byte, error) {
	src, err := openSource(data)
	if err != nil {
		return nil, err
	}
	if first < 1 || last < first || last > src.pages {
		return nil, fmt.Errorf("%w: [%d, %d] of %d", ErrPageRange, first, last, src.pages)
	}
	pdf := newPDF()
	for n := first; n <= last; n++ {
		src.addPage(pdf, n)
	}
	return output(pdf)
}
