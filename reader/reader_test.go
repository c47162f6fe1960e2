package reader_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"

	"github.com/lvillar/dqfile/reader"
)

// generateTestPDF creates a Letter PDF with one page per text using fpdf.
func generateTestPDF(t *testing.T, texts ...string) []byte {
	t.Helper()
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetFont("Helvetica", "", 12)

	for _, text := range texts {
		pdf.AddPage()
		pdf.Text(40, 60, text)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("generating test PDF: %v", err)
	}
	return buf.Bytes()
}

func TestOpenRoundTrip(t *testing.T) {
	data := generateTestPDF(t, "Hello World", "Page Two")

	doc, err := reader.ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reading PDF: %v", err)
	}

	if doc.NumPages() != 2 {
		t.Errorf("expected 2 pages, got %d", doc.NumPages())
	}

	if doc.Version == "" {
		t.Error("expected non-empty PDF version")
	}
}

func TestPageAccess(t *testing.T) {
	data := generateTestPDF(t, "First", "Second", "Third")

	doc, err := reader.Parse(data)
	if err != nil {
		t.Fatalf("reading PDF: %v", err)
	}

	for i := 1; i <= 3; i++ {
		page, err := doc.Page(i)
		if err != nil {
			t.Errorf("page %d: %v", i, err)
			continue
		}
		if page.Number != i {
			t.Errorf("page %d: number = %d", i, page.Number)
		}
		// Letter is 612 x 792
		if page.MediaBox.Width() != 612 || page.MediaBox.Height() != 792 {
			t.Errorf("page %d: unexpected MediaBox: %v", i, page.MediaBox)
		}
	}

	if _, err := doc.Page(0); err == nil {
		t.Error("expected error for page 0")
	}
	if _, err := doc.Page(4); err == nil {
		t.Error("expected error for page 4")
	}
}

func TestPagesIterator(t *testing.T) {
	data := generateTestPDF(t, "A", "B")

	doc, err := reader.Parse(data)
	if err != nil {
		t.Fatalf("reading PDF: %v", err)
	}

	count := 0
	for num, page := range doc.Pages() {
		count++
		if page.Number != num {
			t.Errorf("iterator: page.Number=%d, num=%d", page.Number, num)
		}
	}
	if count != 2 {
		t.Errorf("iterator: expected 2 iterations, got %d", count)
	}
}

func TestTextExtraction(t *testing.T) {
	data := generateTestPDF(t, "Page 1 of 25")

	doc, err := reader.Parse(data)
	if err != nil {
		t.Fatalf("reading PDF: %v", err)
	}

	page, err := doc.Page(1)
	if err != nil {
		t.Fatalf("getting page 1: %v", err)
	}

	text, err := page.ExtractText()
	if err != nil {
		t.Fatalf("extracting text: %v", err)
	}
	if !strings.Contains(text, "Page 1 of 25") {
		t.Errorf("extracted text %q does not contain the page label", text)
	}
}

func TestMetadata(t *testing.T) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetTitle("Driver Employment Application", false)
	pdf.SetAuthor("Acme Freight", false)
	pdf.SetFont("Helvetica", "", 12)
	pdf.AddPage()
	pdf.Text(40, 60, "Metadata test")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("generating PDF: %v", err)
	}

	doc, err := reader.Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("reading PDF: %v", err)
	}

	meta := doc.Metadata()
	if meta["Title"] != "Driver Employment Application" {
		t.Errorf("Title = %q, want %q", meta["Title"], "Driver Employment Application")
	}
	if meta["Author"] != "Acme Freight" {
		t.Errorf("Author = %q, want %q", meta["Author"], "Acme Freight")
	}
}

func TestContentStream(t *testing.T) {
	data := generateTestPDF(t, "Page 1 content")

	doc, err := reader.Parse(data)
	if err != nil {
		t.Fatalf("reading PDF: %v", err)
	}

	page, err := doc.Page(1)
	if err != nil {
		t.Fatalf("getting page: %v", err)
	}

	content, err := page.ContentStream()
	if err != nil {
		t.Fatalf("getting content stream: %v", err)
	}
	if !bytes.Contains(content, []byte("Tj")) {
		t.Errorf("content stream has no text operator: %q", content)
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := reader.Parse([]byte("not a pdf")); err == nil {
		t.Error("expected an error for non-PDF input")
	}
}
