package layout_test

import (
	"errors"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/lvillar/dqfile/canvas"
	"github.com/lvillar/dqfile/form"
	"github.com/lvillar/dqfile/layout"
)

func newPage(t *testing.T) (*canvas.Document, *canvas.Page) {
	t.Helper()
	doc := canvas.New(canvas.Metadata{Title: "layout test"}, false)
	if err := doc.Err(); err != nil {
		t.Fatalf("canvas.New: %v", err)
	}
	return doc, doc.AddPage()
}

// runeWidth measures every rune as one point.
func runeWidth(s string) float64 { return float64(utf8.RuneCountInString(s)) }

func TestCursorDown(t *testing.T) {
	c := layout.Start()
	if c.Y() != layout.Top {
		t.Fatalf("Start().Y() = %v, want %v", c.Y(), layout.Top)
	}
	for _, dy := range []float64{10, 0, -5, 0.1} {
		next := c.Down(dy)
		if !next.Below(c) {
			t.Errorf("Down(%v) moved from %v to %v", dy, c.Y(), next.Y())
		}
		c = next
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{"fits", "one two", 20, []string{"one two"}},
		{"greedy", "aaa bbb ccc", 7, []string{"aaa bbb", "ccc"}},
		{"long word alone", "a verylongword b", 5, []string{"a", "verylongword", "b"}},
		{"newline", "first\nsecond", 50, []string{"first", "second"}},
		{"blank line kept", "a\n\nb", 50, []string{"a", "", "b"}},
		{"trailing newline dropped", "a\n", 50, []string{"a"}},
		{"empty", "", 50, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layout.Wrap(runeWidth, tt.text, tt.width)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Wrap mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWrapKeepsWordsAndWidth(t *testing.T) {
	text := "I authorize you to make such investigations and inquiries of my personal, employment, financial or medical history and other related matters as may be necessary in arriving at an employment decision."
	for _, width := range []float64{20, 45, 80, 200} {
		lines := layout.Wrap(runeWidth, text, width)
		if got := strings.Join(lines, " "); got != text {
			t.Errorf("width %v: rejoined text differs:\n%s", width, got)
		}
		for _, l := range lines {
			if runeWidth(l) > width && strings.Contains(l, " ") {
				t.Errorf("width %v: line %q is %v wide", width, l, runeWidth(l))
			}
		}
	}
}

func TestProportional(t *testing.T) {
	cols := layout.Proportional([]string{"Date", "Nature", "Location", "Fatalities"}, []float64{1, 3, 2, 1})
	if err := cols.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if math.Abs(cols.Total()-layout.ContentWidth) > 0.001 {
		t.Errorf("Total = %v, want %v", cols.Total(), layout.ContentWidth)
	}
	offs := cols.Offsets()
	if offs[0] != layout.Left {
		t.Errorf("first offset = %v, want %v", offs[0], layout.Left)
	}
	for i := 1; i < len(offs); i++ {
		if want := offs[i-1] + cols[i-1].Width; math.Abs(offs[i]-want) > 1e-9 {
			t.Errorf("offset %d = %v, want %v", i, offs[i], want)
		}
	}
}

func TestColumnsCheck(t *testing.T) {
	cols := layout.Columns{{Header: "A", Width: 100}, {Header: "B", Width: 100}}
	if err := cols.Check(); !errors.Is(err, layout.ErrWidthMismatch) {
		t.Errorf("Check = %v, want ErrWidthMismatch", err)
	}
}

func TestTableRowMismatchIsRecorded(t *testing.T) {
	doc, p := newPage(t)
	cols := layout.Proportional([]string{"Date", "Location"}, []float64{1, 1})
	cur := layout.TableHeader(p, cols, layout.Start())
	next := layout.TableRow(p, cols, []string{"acc1_date"}, nil, cur)
	if !next.Below(cur) {
		t.Error("TableRow did not advance the cursor")
	}
	if err := doc.Err(); !errors.Is(err, layout.ErrColumnCount) {
		t.Errorf("Err = %v, want ErrColumnCount", err)
	}
}

func TestTableRowFieldsAlignWithHeader(t *testing.T) {
	doc, p := newPage(t)
	cols := layout.Proportional([]string{"State", "License No.", "Class"}, []float64{1, 3, 1})
	cur := layout.TableHeader(p, cols, layout.Start())
	layout.TableRow(p, cols, []string{"lic1_state", "lic1_number", "lic1_class"}, []string{"TX", "12345678"}, cur)
	if err := doc.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	fields := doc.Fields()
	if len(fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(fields))
	}
	for i, x := range cols.Offsets() {
		if fields[i].Rect.LLX != x || math.Abs(fields[i].Rect.Width()-cols[i].Width) > 1e-9 {
			t.Errorf("field %s at %v width %v, column at %v width %v",
				fields[i].Name, fields[i].Rect.LLX, fields[i].Rect.Width(), x, cols[i].Width)
		}
	}
	if fields[0].Value != "TX" || fields[2].Value != "" {
		t.Errorf("values = %q, %q", fields[0].Value, fields[2].Value)
	}
}

func TestLabeledRow(t *testing.T) {
	doc, p := newPage(t)
	cols := layout.Proportional([]string{"Equipment", "Type", "From", "To", "Miles"}, []float64{3, 2, 1, 1, 1})
	cur := layout.TableHeader(p, cols, layout.Start())
	layout.LabeledRow(p, cols, layout.CheckItem{Name: "exp_tractor_driven", Label: "Tractor", Checked: true},
		[]string{"exp_tractor_type", "exp_tractor_from", "exp_tractor_to", "exp_tractor_miles"}, nil, cur)
	if err := doc.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	want := []string{"exp_tractor_driven", "exp_tractor_type", "exp_tractor_from", "exp_tractor_to", "exp_tractor_miles"}
	if diff := cmp.Diff(want, doc.FieldNames()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if f := doc.Fields()[0]; f.Kind != form.KindCheckbox || !f.Checked {
		t.Errorf("caption field = %+v", f)
	}

	layout.LabeledRow(p, cols, layout.CheckItem{Name: "exp_bus_driven"}, []string{"exp_bus_type"}, nil, cur.Down(40))
	if err := doc.Err(); !errors.Is(err, layout.ErrColumnCount) {
		t.Errorf("Err = %v, want ErrColumnCount", err)
	}
}

func TestFieldRowTooWide(t *testing.T) {
	doc, p := newPage(t)
	layout.FieldRow(p, layout.Start(),
		layout.FieldSpec{Label: "A", Name: "a", Width: 300},
		layout.FieldSpec{Label: "B", Name: "b", Width: 300},
	)
	if err := doc.Err(); !errors.Is(err, layout.ErrRowTooWide) {
		t.Errorf("Err = %v, want ErrRowTooWide", err)
	}
}

func TestFieldRowSharesFreeSpace(t *testing.T) {
	doc, p := newPage(t)
	next := layout.FieldRow(p, layout.Start(),
		layout.FieldSpec{Label: "First", Name: "first_name"},
		layout.FieldSpec{Label: "MI", Name: "middle_name", Width: 40},
		layout.FieldSpec{Label: "Last", Name: "last_name"},
	)
	if got, want := layout.Start().Y()-next.Y(), layout.FieldRowHeight; got != want {
		t.Errorf("row height = %v, want %v", got, want)
	}
	f := doc.Fields()
	if f[0].Rect.Width() != f[2].Rect.Width() {
		t.Errorf("flexible widths differ: %v vs %v", f[0].Rect.Width(), f[2].Rect.Width())
	}
	if end := f[2].Rect.URX; math.Abs(end-layout.Right) > 1e-6 {
		t.Errorf("row ends at %v, want %v", end, layout.Right)
	}
}

func TestYesNoNames(t *testing.T) {
	doc, p := newPage(t)
	cur := layout.Start()
	next := layout.YesNo(p, "license_denied", "Have you ever been denied a license?", true, false, cur)
	if !next.Below(cur) {
		t.Error("YesNo did not advance the cursor")
	}
	if diff := cmp.Diff([]string{"license_denied_yes", "license_denied_no"}, doc.FieldNames()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	f := doc.Fields()
	if !f[0].Checked || f[1].Checked {
		t.Errorf("checked = %v, %v; want true, false", f[0].Checked, f[1].Checked)
	}
}

func TestSignatureDate(t *testing.T) {
	doc, p := newPage(t)
	layout.SignatureDate(p, "applicant_cert", "Applicant signature", "Dana Reyes", "03/02/2026", layout.Start())
	f := doc.Fields()
	if len(f) != 2 {
		t.Fatalf("got %d fields, want 2", len(f))
	}
	if f[0].Name != "applicant_cert_signature" || f[0].Kind != form.KindSignature || f[0].Value != "Dana Reyes" {
		t.Errorf("signature field = %+v", f[0])
	}
	if f[1].Name != "applicant_cert_date" || f[1].Value != "03/02/2026" {
		t.Errorf("date field = %+v", f[1])
	}
	if f[1].Rect.LLX <= f[0].Rect.URX {
		t.Error("date field overlaps the signature line")
	}
}

func TestPrimitivesAdvance(t *testing.T) {
	_, p := newPage(t)
	cur := layout.Start()
	steps := []func(layout.Cursor) layout.Cursor{
		func(c layout.Cursor) layout.Cursor { return layout.CompanyHeader(p, layout.Company{Name: "Acme"}, c) },
		func(c layout.Cursor) layout.Cursor { return layout.SectionHeader(p, "Applicant Information", c) },
		func(c layout.Cursor) layout.Cursor { return layout.Subheading(p, "Addresses", c) },
		func(c layout.Cursor) layout.Cursor { return layout.Paragraph(p, "", c) },
		func(c layout.Cursor) layout.Cursor { return layout.Rule(p, c) },
		func(c layout.Cursor) layout.Cursor { return layout.Bold(p, "Notes", c) },
		func(c layout.Cursor) layout.Cursor { return layout.CheckboxRow(p, layout.Left, c) },
	}
	for i, step := range steps {
		next := step(cur)
		if !next.Below(cur) {
			t.Errorf("step %d did not advance: %v -> %v", i, cur.Y(), next.Y())
		}
		cur = next
	}
}

func TestCheckboxRowWraps(t *testing.T) {
	doc, p := newPage(t)
	var items []layout.CheckItem
	for _, s := range strings.Fields("Alabama Alaska Arizona Arkansas California Colorado Connecticut Delaware Florida Georgia Hawaii Idaho") {
		items = append(items, layout.CheckItem{Name: "state_" + strings.ToLower(s), Label: s})
	}
	cur := layout.Start()
	next := layout.CheckboxRow(p, layout.Left, cur, items...)
	if cur.Y()-next.Y() <= layout.BoxSize+5 {
		t.Error("a row wider than the page did not wrap")
	}
	for _, f := range doc.Fields() {
		if f.Rect.URX > layout.Right+1e-6 {
			t.Errorf("%s ends at %v past the right margin", f.Name, f.Rect.URX)
		}
	}
}

func TestPageLabel(t *testing.T) {
	if got := layout.PageLabel(3, 25); got != "Page 3 of 25" {
		t.Errorf("PageLabel = %q", got)
	}
}
