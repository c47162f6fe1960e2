// Package registry is the field-position table for overlaying answers onto
// a fixed, pre-printed application template.
//
// Positions are stored as percentages of the page so the same table serves
// any rendering size; Resolve converts them to points when they are used.
// Every id in the table is also the name of a field on the same page of the
// generated application.
package registry

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/form"
)

// Type is the kind of input a definition describes.
type Type string

const (
	TypeText      Type = "text"
	TypeCheckbox  Type = "checkbox"
	TypeDate      Type = "date"
	TypeSignature Type = "signature"
)

// Kind returns the form field kind used to render the type.
func (t Type) Kind() form.Kind {
	switch t {
	case TypeCheckbox:
		return form.KindCheckbox
	case TypeSignature:
		return form.KindSignature
	default:
		return form.KindText
	}
}

// Format is an optional value format checked by CheckFormats.
type Format string

const (
	FormatNone  Format = ""
	FormatPhone Format = "phone"
	FormatSSN   Format = "ssn"
	FormatDate  Format = "date"
	FormatZIP   Format = "zip"
	FormatState Format = "state"
)

// DefaultFontSize is used when a definition does not set one.
const DefaultFontSize = 9

// FieldDefinition positions one field of the template. X, Y, Width and
// Height are percentages of the page width and height, with Y measured
// from the top edge to the top of the field.
type FieldDefinition struct {
	ID          string  `json:"id"`
	Page        int     `json:"page"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height,omitempty"`
	Type        Type    `json:"type"`
	Label       string  `json:"label"`
	Required    bool    `json:"required,omitempty"`
	Format      Format  `json:"format,omitempty"`
	Placeholder string  `json:"placeholder,omitempty"`
	FontSize    float64 `json:"fontSize,omitempty"`
}

// defaultHeight is the height in percent used when Height is zero.
const defaultHeight = 1.8

// Resolve converts the definition to a rectangle in PDF user space
// (origin bottom-left) for a page of the given size in points.
func (d FieldDefinition) Resolve(pageW, pageH float64) form.Rect {
	h := d.Height
	if h <= 0 {
		h = defaultHeight
	}
	llx := pageW * d.X / 100
	ury := pageH - pageH*d.Y/100
	return form.Rect{
		LLX: llx,
		LLY: ury - pageH*h/100,
		URX: llx + pageW*d.Width/100,
		URY: ury,
	}
}

// Size returns the font size to render the value with.
func (d FieldDefinition) Size() float64 {
	if d.FontSize > 0 {
		return d.FontSize
	}
	return DefaultFontSize
}

// Fields returns a copy of every definition in table order.
func Fields() []FieldDefinition {
	return slices.Clone(definitions)
}

// FieldsForPage returns the definitions on page n, in table order.
func FieldsForPage(n int) []FieldDefinition {
	var out []FieldDefinition
	for _, d := range definitions {
		if d.Page == n {
			out = append(out, d)
		}
	}
	return out
}

// Pages returns the page numbers that have at least one definition.
func Pages() []int {
	var out []int
	for _, d := range definitions {
		if !slices.Contains(out, d.Page) {
			out = append(out, d.Page)
		}
	}
	slices.Sort(out)
	return out
}

// Lookup returns the definition with the given id.
func Lookup(id string) (FieldDefinition, bool) {
	for _, d := range definitions {
		if d.ID == id {
			return d, true
		}
	}
	return FieldDefinition{}, false
}

// Required returns the required definitions in table order.
func Required() []FieldDefinition {
	var out []FieldDefinition
	for _, d := range definitions {
		if d.Required {
			out = append(out, d)
		}
	}
	return out
}

// Result is the outcome of ValidateFields. Missing holds the labels of
// required fields without a value, in table order.
type Result struct {
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing"`
}

// ValidateFields checks that every required field has a value that is not
// blank after trimming. The rule is the same for every field type, so "no"
// answers a required check box. Answers without a definition are ignored.
func ValidateFields(in answers.Answers) Result {
	r := Result{Missing: []string{}}
	for _, d := range definitions {
		if !d.Required {
			continue
		}
		if strings.TrimSpace(in.Text(d.ID)) == "" {
			r.Missing = append(r.Missing, d.Label)
		}
	}
	r.Valid = len(r.Missing) == 0
	return r
}

// FormatError describes a value that does not match its field's format.
type FormatError struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Format Format `json:"format"`
	Value  string `json:"value"`
}

func (e FormatError) Error() string {
	return fmt.Sprintf("%s: %q is not a valid %s", e.Label, e.Value, e.Format)
}

// CheckFormats returns a FormatError for every non-blank answer whose
// definition has a Format the value does not match. Blank values are left
// to ValidateFields.
func CheckFormats(in answers.Answers) []FormatError {
	var out []FormatError
	for _, d := range definitions {
		if d.Format == FormatNone {
			continue
		}
		v := strings.TrimSpace(in.Text(d.ID))
		if v == "" || Valid(d.Format, v) {
			continue
		}
		out = append(out, FormatError{ID: d.ID, Label: d.Label, Format: d.Format, Value: v})
	}
	return out
}

var (
	ssnPattern = regexp.MustCompile(`^\d{3}-?\d{2}-?\d{4}$`)
	zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

var dateLayouts = []string{answers.DateLayout, "1/2/2006", "2006-01-02"}

var states = strings.Fields(`AL AK AZ AR CA CO CT DE DC FL GA HI ID IL IN IA KS KY LA ME MD MA
MI MN MS MO MT NE NV NH NJ NM NY NC ND OH OK OR PA RI SC SD TN TX UT VT VA WA WV WI WY
AS GU MP PR VI AB BC MB NB NL NS NT NU ON PE QC SK YT`)

// Valid reports whether v matches format f.
func Valid(f Format, v string) bool {
	switch f {
	case FormatPhone:
		digits := 0
		for _, r := range v {
			switch {
			case r >= '0' && r <= '9':
				digits++
			case strings.ContainsRune(" ()-.+", r):
			default:
				return false
			}
		}
		return digits == 10 || (digits == 11 && strings.HasPrefix(strings.TrimLeft(v, "+ "), "1"))
	case FormatSSN:
		return ssnPattern.MatchString(v)
	case FormatZIP:
		return zipPattern.MatchString(v)
	case FormatState:
		return slices.Contains(states, strings.ToUpper(v))
	case FormatDate:
		for _, l := range dateLayouts {
			if _, err := time.Parse(l, v); err == nil {
				return true
			}
		}
		return false
	}
	return true
}

// Export writes every definition to w as indented JSON.
func Export(w io.Writer) error {
	return ExportPage(w, 0)
}

// ExportPage writes the definitions of page n to w as indented JSON. A
// page of zero exports the whole table.
func ExportPage(w io.Writer, n int) error {
	defs := Fields()
	if n > 0 {
		defs = FieldsForPage(n)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(defs); err != nil {
		return fmt.Errorf("registry: encoding: %w", err)
	}
	return nil
}
