package reader_test

import (
	"testing"

	"github.com/lvillar/dqfile/form"
	"github.com/lvillar/dqfile/reader"
)

func generateFormPDF(t *testing.T) []byte {
	t.Helper()
	base := generateTestPDF(t, "Form test", "Second page")
	out, err := form.Inject(base, []form.Field{
		{Name: "first_name", Kind: form.KindText, Page: 1, Rect: form.Rect{LLX: 40, LLY: 700, URX: 240, URY: 716}, Value: "Dana"},
		{Name: "ssn", Kind: form.KindText, Page: 1, Rect: form.Rect{LLX: 40, LLY: 670, URX: 240, URY: 686}, Required: true},
		{Name: "acc_none", Kind: form.KindCheckbox, Page: 1, Rect: form.Rect{LLX: 40, LLY: 640, URX: 50, URY: 650}, Checked: true},
		{Name: "control", Kind: form.KindText, Page: 1, Rect: form.Rect{LLX: 300, LLY: 700, URX: 400, URY: 716}, ReadOnly: true},
		{Name: "applicant_cert_signature", Kind: form.KindSignature, Page: 2, Rect: form.Rect{LLX: 40, LLY: 100, URX: 356, URY: 120}},
	})
	if err != nil {
		t.Fatalf("injecting form: %v", err)
	}
	return out
}

func TestFormFieldsParsing(t *testing.T) {
	doc, err := reader.Parse(generateFormPDF(t))
	if err != nil {
		t.Fatalf("reading PDF: %v", err)
	}

	fields, err := doc.FormFields()
	if err != nil {
		t.Fatalf("FormFields: %v", err)
	}
	if len(fields) != 5 {
		t.Fatalf("expected 5 fields, got %d", len(fields))
	}

	pages := make(map[string]int)
	for _, f := range reader.Leaves(fields) {
		pages[f.FullName] = f.Page
	}
	want := map[string]int{"first_name": 1, "ssn": 1, "acc_none": 1, "control": 1, "applicant_cert_signature": 2}
	for name, page := range want {
		got, ok := pages[name]
		if !ok {
			t.Errorf("field %q not found", name)
			continue
		}
		if got != page {
			t.Errorf("field %q on page %d, want %d", name, got, page)
		}
	}
}

func TestFormFieldTypesAndValues(t *testing.T) {
	doc, err := reader.Parse(generateFormPDF(t))
	if err != nil {
		t.Fatalf("reading PDF: %v", err)
	}

	for _, tc := range []struct {
		name, typ, value string
	}{
		{"first_name", "Tx", "Dana"},
		{"acc_none", "Btn", "Yes"},
		{"applicant_cert_signature", "Tx", ""},
	} {
		f, err := doc.FormField(tc.name)
		if err != nil {
			t.Fatalf("FormField(%q): %v", tc.name, err)
		}
		if f == nil {
			t.Fatalf("FormField(%q) = nil", tc.name)
		}
		if f.Type != tc.typ {
			t.Errorf("%s: type = %q, want %q", tc.name, f.Type, tc.typ)
		}
		if f.Value != tc.value {
			t.Errorf("%s: value = %q, want %q", tc.name, f.Value, tc.value)
		}
	}
}

func TestFormFieldFlags(t *testing.T) {
	doc, err := reader.Parse(generateFormPDF(t))
	if err != nil {
		t.Fatalf("reading PDF: %v", err)
	}

	ro, err := doc.FormField("control")
	if err != nil || ro == nil {
		t.Fatalf("FormField(control) = %v, %v", ro, err)
	}
	if !ro.IsReadOnly() {
		t.Error("control should be read-only")
	}
	req, err := doc.FormField("ssn")
	if err != nil || req == nil {
		t.Fatalf("FormField(ssn) = %v, %v", req, err)
	}
	if !req.IsRequired() {
		t.Error("ssn should be required")
	}
	if req.IsReadOnly() {
		t.Error("ssn should not be read-only")
	}
}

func TestFormFieldsEmpty(t *testing.T) {
	doc, err := reader.Parse(generateTestPDF(t, "No form here"))
	if err != nil {
		t.Fatalf("reading PDF: %v", err)
	}

	fields, err := doc.FormFields()
	if err != nil {
		t.Fatalf("FormFields: %v", err)
	}
	if len(fields) != 0 {
		t.Errorf("expected 0 fields for non-form PDF, got %d", len(fields))
	}
}

func TestFormFieldMissing(t *testing.T) {
	doc, err := reader.Parse(generateFormPDF(t))
	if err != nil {
		t.Fatalf("reading PDF: %v", err)
	}

	missing, err := doc.FormField("nonexistent")
	if err != nil {
		t.Fatalf("FormField: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for non-existent field")
	}
}

func TestCatalog(t *testing.T) {
	doc, err := reader.Parse(generateFormPDF(t))
	if err != nil {
		t.Fatalf("reading PDF: %v", err)
	}

	catalog, err := doc.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if typ := catalog.GetName("Type"); typ != "Catalog" {
		t.Errorf("catalog type = %q, want 'Catalog'", typ)
	}
	if catalog["AcroForm"] == nil {
		t.Error("catalog has no /AcroForm after injection")
	}
}
