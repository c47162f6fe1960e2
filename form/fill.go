package form

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/lvillar/dqfile/reader"
)

// Fill sets the values of existing fields and returns pdf with an
// incremental update appended. Check boxes accept the same truthy strings
// as the answer dictionary; every other field receives the text as given.
// Naming a field the document lacks is an error.
func Fill(pdf []byte, values map[string]string) ([]byte, error) {
	if len(values) == 0 {
		return pdf, nil
	}
	doc, err := reader.Parse(pdf)
	if err != nil {
		return nil, fmt.Errorf("form: parsing PDF: %w", err)
	}
	fields, err := doc.FormFields()
	if err != nil {
		return nil, fmt.Errorf("form: reading form fields: %w", err)
	}

	byName := make(map[string]*reader.FormField)
	for _, f := range reader.Leaves(fields) {
		byName[f.FullName] = f
	}
	names := make([]string, 0, len(values))
	for name := range values {
		if _, ok := byName[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		names = append(names, name)
	}
	slices.Sort(names)

	u := newUpdate(doc)
	for _, name := range names {
		f := byName[name]
		if f.ObjNum == 0 {
			return nil, fmt.Errorf("form: field %q is a direct object and cannot be updated", name)
		}
		dict := f.Dict()
		value := values[name]
		if f.Type == "Btn" {
			state := reader.Name("Off")
			if Truthy(value) {
				state = "Yes"
			}
			dict["V"] = state
			dict["AS"] = state
		} else {
			dict["V"] = textString(value)
		}
		u.set(reader.Reference{Number: f.ObjNum}, dict)
	}

	out, err := u.bytes()
	if err != nil {
		return nil, fmt.Errorf("form: writing update: %w", err)
	}
	return out, nil
}

// FillFile fills the PDF at inputPath and writes the result to outputPath.
func FillFile(inputPath, outputPath string, values map[string]string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("form: opening %s: %w", inputPath, err)
	}
	out, err := Fill(data, values)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("form: writing %s: %w", outputPath, err)
	}
	return nil
}

// Truthy reports whether s reads as a checked box.
func Truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "on", "x", "1", "checked":
		return true
	}
	return false
}
