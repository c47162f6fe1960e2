package overlay_test

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"

	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/overlay"
	"github.com/lvillar/dqfile/reader"
)

// templatePDF creates a Letter PDF with n pages, each labeled with its number.
func templatePDF(t *testing.T, n int) []byte {
	t.Helper()
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetFont("Helvetica", "", 10)
	for i := 1; i <= n; i++ {
		pdf.AddPage()
		pdf.Text(40, 40, "Template page")
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	return buf.Bytes()
}

func pageCount(t *testing.T, data []byte) int {
	t.Helper()
	doc, err := reader.Parse(data)
	if err != nil {
		t.Fatalf("reading PDF: %v", err)
	}
	return doc.NumPages()
}

func TestExtract(t *testing.T) {
	src := templatePDF(t, 25)
	out, err := overlay.Extract(src, 12, 15)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got := pageCount(t, out); got != 4 {
		t.Errorf("extracted %d pages, want 4", got)
	}
	for _, r := range [][2]int{{0, 1}, {3, 2}, {20, 26}} {
		if _, err := overlay.Extract(src, r[0], r[1]); !errors.Is(err, overlay.ErrPageRange) {
			t.Errorf("Extract(%d, %d) error = %v, want ErrPageRange", r[0], r[1], err)
		}
	}
}

func TestMerge(t *testing.T) {
	out, err := overlay.Merge(templatePDF(t, 3), templatePDF(t, 2))
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if got := pageCount(t, out); got != 5 {
		t.Errorf("merged %d pages, want 5", got)
	}
	if _, err := overlay.Merge(); !errors.Is(err, overlay.ErrNoInput) {
		t.Errorf("Merge() error = %v, want ErrNoInput", err)
	}
	if _, err := overlay.Merge([]byte("not a pdf")); err == nil {
		t.Error("Merge accepted garbage")
	}
}

func TestRender(t *testing.T) {
	in := answers.FromMap(map[string]any{
		"first_name": "Dana",
		"last_name":  "Reyes",
		"ssn":        "123-45-6789",
		"acc_none":   true,
	})
	out, err := overlay.Render(templatePDF(t, 25), in,
		overlay.WithOutlines(),
		overlay.WithWatermark(overlay.Watermark{Text: "SPECIMEN"}),
	)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := pageCount(t, out); got != 25 {
		t.Errorf("rendered %d pages, want 25", got)
	}
	doc, err := reader.Parse(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	fields, err := doc.FormFields()
	if err != nil {
		t.Fatalf("FormFields: %v", err)
	}
	if len(fields) != 0 {
		t.Errorf("overlay output has %d form fields, want a flat PDF", len(fields))
	}
}

func TestStamp(t *testing.T) {
	out, err := overlay.Stamp(templatePDF(t, 2), overlay.Watermark{Text: "COPY", Opacity: 0.2})
	if err != nil {
		t.Fatalf("Stamp: %v", err)
	}
	if got := pageCount(t, out); got != 2 {
		t.Errorf("stamped %d pages, want 2", got)
	}
}

func TestMirror(t *testing.T) {
	in := answers.FromMap(map[string]any{
		"first_name": "<script>alert(1)</script>Dana",
		"last_name":  "O'Neil & Sons",
	})
	var buf bytes.Buffer
	if err := overlay.Mirror(&buf, 2, in); err != nil {
		t.Fatalf("Mirror: %v", err)
	}
	html := buf.String()
	for _, want := range []string{`id="first_name"`, `id="ssn"`, "Dana", "Neil &amp; Sons", "missing"} {
		if !strings.Contains(html, want) {
			t.Errorf("mirror lacks %q", want)
		}
	}
	if strings.Contains(html, "<script") || strings.Contains(html, "alert(1)") {
		t.Error("markup from an answer reached the page")
	}

	if err := overlay.Mirror(&buf, 99, in); !errors.Is(err, overlay.ErrPageRange) {
		t.Errorf("Mirror(99) error = %v, want ErrPageRange", err)
	}
}

func TestGuide(t *testing.T) {
	var buf bytes.Buffer
	if err := overlay.Guide(&buf, 2, 2); err != nil {
		t.Fatalf("Guide: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1224 || b.Dy() != 1584 {
		t.Errorf("image is %dx%d, want 1224x1584", b.Dx(), b.Dy())
	}
	if err := overlay.Guide(&buf, 99, 1); !errors.Is(err, overlay.ErrPageRange) {
		t.Errorf("Guide(99) error = %v, want ErrPageRange", err)
	}
}
