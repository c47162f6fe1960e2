// Package section contains the page builders of the driver application.
//
// Each builder appends a fixed number of pages to a canvas.Document, draws
// its section with the layout primitives and returns the pages it created.
// Row counts are fixed per section; answers beyond a budget have no field.
package section

import (
	"strings"
	"time"

	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/canvas"
	"github.com/lvillar/dqfile/layout"
)

// Env carries the per-request values that are not applicant answers.
type Env struct {
	Company       layout.Company
	ControlNumber string
	Issued        time.Time
}

// BuildFunc draws a section into doc.
type BuildFunc func(doc *canvas.Document, in answers.Answers, env Env) ([]*canvas.Page, error)

// Section is one entry of the application in assembly order.
type Section struct {
	Name  string
	Title string
	Pages int
	Build BuildFunc
}

// Catalog returns the sections in the order they appear in the
// application. The order follows the driver qualification file layout
// and is fixed.
func Catalog() []Section {
	return []Section{
		{Name: "checklist", Title: "Driver Qualification File Checklist", Pages: 1, Build: Checklist},
		{Name: "applicant", Title: "Applicant Information", Pages: 1, Build: Applicant},
		{Name: "employment", Title: "Employment History", Pages: 2, Build: Employment},
		{Name: "accidents", Title: "Accident Record and Traffic Convictions", Pages: 1, Build: Accidents},
		{Name: "license", Title: "License Information", Pages: 1, Build: License},
		{Name: "experience", Title: "Driving Experience", Pages: 1, Build: Experience},
		{Name: "training", Title: "Education and Training", Pages: 1, Build: Training},
		{Name: "certification", Title: "Applicant Certification", Pages: 1, Build: Certification},
		{Name: "review", Title: "Annual Review", Pages: 2, Build: Review},
		{Name: "authorizations", Title: "Disclosures and Authorizations", Pages: 4, Build: Authorizations},
		{Name: "inquiries", Title: "Previous Employer Inquiries", Pages: answers.InquiryLetters, Build: Inquiries},
		{Name: "roadtest", Title: "Road Test", Pages: 1, Build: RoadTest},
		{Name: "medical", Title: "Medical Certification", Pages: 2, Build: Medical},
		{Name: "hiring", Title: "Internal Hiring Record", Pages: 1, Build: Hiring},
	}
}

// TotalPages returns the page count of the complete application.
func TotalPages() int {
	n := 0
	for _, s := range Catalog() {
		n += s.Pages
	}
	return n
}

// Lookup returns the section with the given name.
func Lookup(name string) (Section, bool) {
	for _, s := range Catalog() {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// start adds a page with the company banner and a section title.
func start(doc *canvas.Document, env Env, title string) (*canvas.Page, layout.Cursor) {
	p := doc.AddPage()
	cur := layout.CompanyHeader(p, env.Company, layout.Start())
	return p, layout.SectionHeader(p, title, cur)
}

// done returns pages together with any error recorded while drawing them.
func done(doc *canvas.Document, pages ...*canvas.Page) ([]*canvas.Page, error) {
	if err := doc.Err(); err != nil {
		return nil, err
	}
	return pages, nil
}

// filler reads field values from the answers by field id.
type filler struct {
	in answers.Answers
}

func (f filler) text(name string) string { return f.in.Text(name) }
func (f filler) on(name string) bool     { return f.in.Bool(name) }

// or returns the answer for name, or fallback when it is blank.
func (f filler) or(name, fallback string) string {
	if v := f.in.Text(name); strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func (f filler) spec(label, name string, width float64) layout.FieldSpec {
	return layout.FieldSpec{Label: label, Name: name, Value: f.text(name), Width: width}
}

func (f filler) check(name, label string) layout.CheckItem {
	return layout.CheckItem{Name: name, Label: label, Checked: f.on(name)}
}

// slots returns the ids and answers of row i of a repeated group.
func (f filler) slots(prefix string, i int, fields ...string) (names, values []string) {
	names = make([]string, len(fields))
	values = make([]string, len(fields))
	for j, field := range fields {
		names[j] = answers.Slot(prefix, i, field)
		values[j] = f.text(names[j])
	}
	return names, values
}

// yesNo draws a question whose boxes are prefilled from prefix_yes and
// prefix_no.
func (f filler) yesNo(p *canvas.Page, prefix, question string, cur layout.Cursor) layout.Cursor {
	return layout.YesNo(p, prefix, question, f.on(prefix+"_yes"), f.on(prefix+"_no"), cur)
}

// signature draws prefix_signature and prefix_date.
func (f filler) signature(p *canvas.Page, prefix, label string, cur layout.Cursor) layout.Cursor {
	return layout.SignatureDate(p, prefix, label, f.text(prefix+"_signature"), f.text(prefix+"_date"), cur)
}

// applicantName joins the applicant's first, middle and last name.
func (f filler) applicantName() string {
	var parts []string
	for _, k := range []string{"first_name", "middle_name", "last_name"} {
		if v := strings.TrimSpace(f.text(k)); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}
