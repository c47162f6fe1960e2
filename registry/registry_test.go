package registry_test

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/registry"
)

// sampleValue returns a value that passes the definition's format check.
func sampleValue(d registry.FieldDefinition) any {
	if d.Type == registry.TypeCheckbox {
		return true
	}
	switch d.Format {
	case registry.FormatPhone:
		return "(214) 555-0100"
	case registry.FormatSSN:
		return "123-45-6789"
	case registry.FormatDate:
		return "03/02/2026"
	case registry.FormatZIP:
		return "75201"
	case registry.FormatState:
		return "TX"
	}
	return "value"
}

func completeAnswers() answers.Answers {
	in := answers.Answers{}
	for _, d := range registry.Required() {
		in[d.ID] = sampleValue(d)
	}
	return in
}

func TestTableIsWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range registry.Fields() {
		if seen[d.ID] {
			t.Errorf("duplicate id %q", d.ID)
		}
		seen[d.ID] = true
		if d.Page < 1 || d.Page > 25 {
			t.Errorf("%s: page %d out of range", d.ID, d.Page)
		}
		if d.X < 0 || d.Y < 0 || d.Width <= 0 || d.X+d.Width > 100 || d.Y+d.Height > 100 {
			t.Errorf("%s: box (%v, %v, %v, %v) leaves the page", d.ID, d.X, d.Y, d.Width, d.Height)
		}
		if d.Label == "" {
			t.Errorf("%s: no label", d.ID)
		}
	}
}

func TestFieldsForPage(t *testing.T) {
	for _, n := range registry.Pages() {
		var want []registry.FieldDefinition
		for _, d := range registry.Fields() {
			if d.Page == n {
				want = append(want, d)
			}
		}
		if diff := cmp.Diff(want, registry.FieldsForPage(n)); diff != "" {
			t.Errorf("page %d mismatch (-want +got):\n%s", n, diff)
		}
	}
	if got := registry.FieldsForPage(99); len(got) != 0 {
		t.Errorf("FieldsForPage(99) returned %d fields", len(got))
	}
	if got := registry.FieldsForPage(9); len(got) == 0 {
		t.Error("certification page has no fields")
	}
}

func TestFieldsReturnsCopy(t *testing.T) {
	defs := registry.Fields()
	defs[0].ID = "changed"
	if registry.Fields()[0].ID == "changed" {
		t.Error("Fields exposes the table")
	}
}

func TestLookup(t *testing.T) {
	d, ok := registry.Lookup("ssn")
	if !ok || d.Page != 2 || d.Format != registry.FormatSSN || !d.Required {
		t.Errorf("Lookup(ssn) = %+v, %v", d, ok)
	}
	if _, ok := registry.Lookup("nope"); ok {
		t.Error("Lookup found an unknown id")
	}
}

func TestValidateFieldsEmpty(t *testing.T) {
	r := registry.ValidateFields(answers.Answers{})
	if r.Valid {
		t.Error("empty answers are valid")
	}
	req := registry.Required()
	if len(r.Missing) != len(req) {
		t.Fatalf("missing %d fields, want %d", len(r.Missing), len(req))
	}
	for i, d := range req {
		if r.Missing[i] != d.Label {
			t.Errorf("missing[%d] = %q, want %q", i, r.Missing[i], d.Label)
		}
	}
}

func TestValidateFieldsComplete(t *testing.T) {
	r := registry.ValidateFields(completeAnswers())
	if !r.Valid || len(r.Missing) != 0 {
		t.Errorf("complete answers: %+v", r)
	}
	if r.Missing == nil {
		t.Error("Missing is nil, want an empty slice")
	}
}

func TestValidateFieldsBlankAndUnknown(t *testing.T) {
	in := completeAnswers()
	in["last_name"] = "   "
	in["not_a_field"] = "ignored"
	r := registry.ValidateFields(in)
	if r.Valid {
		t.Fatal("blank last name passed")
	}
	if diff := cmp.Diff([]string{"Last Name"}, r.Missing); diff != "" {
		t.Errorf("Missing mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateFieldsAnyNonBlankText(t *testing.T) {
	in := answers.Answers{}
	for _, d := range registry.Required() {
		in[d.ID] = " no "
	}
	if r := registry.ValidateFields(in); !r.Valid {
		t.Errorf("\"no\" left fields missing: %v", r.Missing)
	}

	in[registry.Required()[0].ID] = false
	r := registry.ValidateFields(in)
	if diff := cmp.Diff([]string{registry.Required()[0].Label}, r.Missing); diff != "" {
		t.Errorf("false answer: Missing mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckFormats(t *testing.T) {
	in := completeAnswers()
	if errs := registry.CheckFormats(in); len(errs) != 0 {
		t.Fatalf("sample answers fail formats: %v", errs)
	}
	in["ssn"] = "12-345-678"
	in["addr1_zip"] = "7520"
	in["addr1_state"] = "ZZ"
	in["phone"] = ""
	errs := registry.CheckFormats(in)
	var ids []string
	for _, e := range errs {
		ids = append(ids, e.ID)
		if !strings.Contains(e.Error(), e.Label) {
			t.Errorf("error %q lacks the label", e.Error())
		}
	}
	if diff := cmp.Diff([]string{"ssn", "addr1_state", "addr1_zip"}, ids); diff != "" {
		t.Errorf("format errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		format registry.Format
		value  string
		want   bool
	}{
		{registry.FormatPhone, "214-555-0100", true},
		{registry.FormatPhone, "+1 (214) 555-0100", true},
		{registry.FormatPhone, "555-0100", false},
		{registry.FormatPhone, "214-555-01OO", false},
		{registry.FormatSSN, "123456789", true},
		{registry.FormatSSN, "123-45-678", false},
		{registry.FormatZIP, "75201-1234", true},
		{registry.FormatZIP, "7520", false},
		{registry.FormatState, "tx", true},
		{registry.FormatState, "ON", true},
		{registry.FormatState, "Texas", false},
		{registry.FormatDate, "03/02/2026", true},
		{registry.FormatDate, "3/2/2026", true},
		{registry.FormatDate, "2026-03-02", true},
		{registry.FormatDate, "March 2", false},
		{registry.FormatNone, "anything", true},
	}
	for _, tt := range tests {
		if got := registry.Valid(tt.format, tt.value); got != tt.want {
			t.Errorf("Valid(%s, %q) = %v, want %v", tt.format, tt.value, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	d := registry.FieldDefinition{X: 10, Y: 20, Width: 50, Height: 5}
	r := d.Resolve(612, 792)
	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
	if !near(r.LLX, 61.2) || !near(r.URX, 367.2) || !near(r.URY, 633.6) || !near(r.LLY, 594) {
		t.Errorf("Resolve = %+v", r)
	}

	d.Height = 0
	if h := d.Resolve(612, 792).Height(); h <= 0 {
		t.Errorf("default height resolved to %v", h)
	}
	if d.Size() != registry.DefaultFontSize {
		t.Errorf("Size = %v", d.Size())
	}
}

func TestExportPage(t *testing.T) {
	var buf bytes.Buffer
	if err := registry.ExportPage(&buf, 9); err != nil {
		t.Fatalf("ExportPage: %v", err)
	}
	var got []registry.FieldDefinition
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decoding export: %v", err)
	}
	if diff := cmp.Diff(registry.FieldsForPage(9), got); diff != "" {
		t.Errorf("export mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := registry.Export(&buf); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"id": "applicant_cert_signature"`)) {
		t.Error("full export lacks the certification signature")
	}
}

func TestTypeKind(t *testing.T) {
	for typ, want := range map[registry.Type]string{
		registry.TypeText:      "text",
		registry.TypeDate:      "text",
		registry.TypeCheckbox:  "checkbox",
		registry.TypeSignature: "signature",
	} {
		if got := typ.Kind().String(); got != want {
			t.Errorf("%s.Kind() = %s, want %s", typ, got, want)
		}
	}
}
