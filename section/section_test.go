package section_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/canvas"
	"github.com/lvillar/dqfile/form"
	"github.com/lvillar/dqfile/layout"
	"github.com/lvillar/dqfile/section"
)

var env = section.Env{
	Company:       layout.Company{Name: "Acme Freight", Address: "100 Depot Rd, Dallas, TX 75201", DOTNumber: "1234567", MCNumber: "654321"},
	ControlNumber: "DQ-7f3a9c",
	Issued:        time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
}

func newDoc(t *testing.T) *canvas.Document {
	t.Helper()
	doc := canvas.New(canvas.Metadata{Title: "section test"}, false)
	if err := doc.Err(); err != nil {
		t.Fatalf("canvas.New: %v", err)
	}
	return doc
}

func fieldsByName(doc *canvas.Document) map[string]form.Field {
	out := make(map[string]form.Field)
	for _, f := range doc.Fields() {
		out[f.Name] = f
	}
	return out
}

func TestCatalog(t *testing.T) {
	cat := section.Catalog()
	if len(cat) != 14 {
		t.Fatalf("catalog has %d sections, want 14", len(cat))
	}
	if got := section.TotalPages(); got != 25 {
		t.Errorf("TotalPages = %d, want 25", got)
	}
	var names []string
	for _, s := range cat {
		names = append(names, s.Name)
		if s.Pages < 1 || s.Build == nil || s.Title == "" {
			t.Errorf("incomplete section %+v", s)
		}
	}
	want := []string{"checklist", "applicant", "employment", "accidents", "license", "experience", "training",
		"certification", "review", "authorizations", "inquiries", "roadtest", "medical", "hiring"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("section order mismatch (-want +got):\n%s", diff)
	}
	if s, ok := section.Lookup("inquiries"); !ok || s.Pages != answers.InquiryLetters {
		t.Errorf("Lookup(inquiries) = %+v, %v", s, ok)
	}
	if _, ok := section.Lookup("nope"); ok {
		t.Error("Lookup found an unknown section")
	}
}

func TestBuildersEmitDeclaredPages(t *testing.T) {
	for _, s := range section.Catalog() {
		t.Run(s.Name, func(t *testing.T) {
			doc := newDoc(t)
			pages, err := s.Build(doc, answers.Answers{}, env)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if len(pages) != s.Pages || doc.PageCount() != s.Pages {
				t.Fatalf("built %d pages (document has %d), want %d", len(pages), doc.PageCount(), s.Pages)
			}
			for i, p := range pages {
				if p.Number() != i+1 {
					t.Errorf("page %d numbered %d", i+1, p.Number())
				}
			}
			if len(doc.FieldNames()) == 0 {
				t.Error("section declares no fields")
			}
			for page, y := range doc.Overflow() {
				t.Errorf("page %d drawn down to y=%.1f, below the bottom margin", page, y)
			}
		})
	}
}

func TestBuildersInSequenceHaveUniqueNames(t *testing.T) {
	doc := newDoc(t)
	for _, s := range section.Catalog() {
		if _, err := s.Build(doc, answers.Answers{}, env); err != nil {
			t.Fatalf("%s: %v", s.Name, err)
		}
	}
	if doc.PageCount() != section.TotalPages() {
		t.Errorf("document has %d pages, want %d", doc.PageCount(), section.TotalPages())
	}
	seen := make(map[string]bool)
	for _, n := range doc.FieldNames() {
		if seen[n] {
			t.Errorf("duplicate field %q", n)
		}
		seen[n] = true
	}
}

func TestInquiriesPrefillFromEmployment(t *testing.T) {
	doc := newDoc(t)
	in := answers.FromMap(map[string]any{
		"emp1_name":     "Acme Freight",
		"emp1_phone":    "214-555-0100",
		"emp1_address":  "100 Depot Rd",
		"emp1_city":     "Dallas",
		"emp1_state":    "TX",
		"emp1_zip":      "75201",
		"emp2_name":     "Bluebonnet Haulers",
		"inq2_employer": "Bluebonnet Haulers LLC",
	})
	if _, err := section.Inquiries(doc, in, env); err != nil {
		t.Fatalf("Inquiries: %v", err)
	}
	f := fieldsByName(doc)
	for name, want := range map[string]string{
		"inq1_employer": "Acme Freight",
		"inq1_phone":    "214-555-0100",
		"inq2_employer": "Bluebonnet Haulers LLC",
		"inq3_employer": "",
	} {
		if got := f[name].Value; got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
	if addr := f["inq1_address"].Value; addr == "" {
		t.Error("inq1_address was not prefilled")
	}
	if f["inq6_respondent_date"].Page != answers.InquiryLetters {
		t.Errorf("inq6 fields are on page %d", f["inq6_respondent_date"].Page)
	}
}

func TestAnswersPrefillFields(t *testing.T) {
	doc := newDoc(t)
	in := answers.FromMap(map[string]any{
		"first_name":            "Dana",
		"middle_name":           "L",
		"last_name":             "Reyes",
		"ssn":                   "123-45-6789",
		"age_21_yes":            true,
		"worked_here_before_no": "yes",
	})
	for _, build := range []section.BuildFunc{section.Checklist, section.Applicant} {
		if _, err := build(doc, in, env); err != nil {
			t.Fatalf("build: %v", err)
		}
	}
	f := fieldsByName(doc)
	if got := f["dq_driver_name"].Value; got != "Dana L Reyes" {
		t.Errorf("dq_driver_name = %q", got)
	}
	if got := f["ssn"].Value; got != "123-45-6789" {
		t.Errorf("ssn = %q", got)
	}
	if !f["age_21_yes"].Checked || f["age_21_no"].Checked {
		t.Error("age_21 boxes not prefilled")
	}
	if !f["worked_here_before_no"].Checked {
		t.Error("string answer did not check worked_here_before_no")
	}
	if f["first_name"].Page != 2 {
		t.Errorf("first_name on page %d, want 2", f["first_name"].Page)
	}
}

func TestWrapStaysInsideContentWidth(t *testing.T) {
	doc := newDoc(t)
	measure := func(s string) float64 { return doc.Measure(s, false, 9) }
	const sentence = "I certify that all information provided in this application is true and complete to the best of my knowledge."
	if layout.ContentWidth != 495 {
		t.Fatalf("content width = %v, want 495", layout.ContentWidth)
	}
	lines := layout.Wrap(measure, sentence, 495)
	if len(lines) == 0 {
		t.Fatal("no lines")
	}
	if got := strings.Join(lines, " "); got != sentence {
		t.Errorf("wrapped text = %q", got)
	}
	for _, l := range lines {
		if w := measure(l); w > 495 {
			t.Errorf("line %q is %.1fpt wide", l, w)
		}
	}
}

func TestCertificationStatementWraps(t *testing.T) {
	doc := newDoc(t)
	lines := layout.Wrap(func(s string) float64 { return doc.Measure(s, false, layout.BodySize) }, section.CertificationStatement, layout.ContentWidth)
	if len(lines) < 2 {
		t.Errorf("certification statement wrapped into %d lines", len(lines))
	}
	for _, l := range lines {
		if w := doc.Measure(l, false, layout.BodySize); w > layout.ContentWidth {
			t.Errorf("line %q is %.1fpt wide", l, w)
		}
	}
}
