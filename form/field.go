// Package form collects the interactive fields of a generated application
// and writes them into the finished PDF as an AcroForm.
//
// Fields are declared while pages are drawn and injected after the page
// content has been serialized, as an incremental update that adds the
// widget annotations, their appearance streams and the catalog /AcroForm.
// The same update mechanism backs Fill and Flatten.
package form

import (
	"errors"
	"fmt"
)

// Kind is the type of an interactive field.
type Kind int

const (
	KindText      Kind = iota // single-line text input
	KindCheckbox              // on/off check box
	KindSignature             // typed-name signature line, stored as text
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindCheckbox:
		return "checkbox"
	case KindSignature:
		return "signature"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var (
	// ErrDuplicateField is returned when a name is registered twice.
	ErrDuplicateField = errors.New("form: duplicate field name")
	// ErrEmptyName is returned for a field without a name.
	ErrEmptyName = errors.New("form: field name is empty")
	// ErrPageRange is returned when a field targets a page the PDF lacks.
	ErrPageRange = errors.New("form: field page out of range")
	// ErrUnknownField is returned by Fill for names not present in the PDF.
	ErrUnknownField = errors.New("form: field not found")
)

// Rect is a widget rectangle in PDF user space (points, origin bottom-left).
type Rect struct {
	LLX, LLY, URX, URY float64
}

// Width returns the rectangle width.
func (r Rect) Width() float64 { return r.URX - r.LLX }

// Height returns the rectangle height.
func (r Rect) Height() float64 { return r.URY - r.LLY }

// Field is one widget on one page. Names are unique across the document.
type Field struct {
	Name     string
	Kind     Kind
	Page     int // 1-based
	Rect     Rect
	Value    string // prefilled text for text and signature fields
	Checked  bool   // prefilled state for check boxes
	FontSize float64
	Tooltip  string
	Required bool
	ReadOnly bool
	MaxLen   int
}

// DefaultFontSize is used for text fields declared without a size.
const DefaultFontSize = 9

// Builder accumulates fields in declaration order and rejects duplicate
// names at the point of registration.
type Builder struct {
	fields []Field
	index  map[string]int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// Add registers f. A second field with the same name is an error and
// leaves the builder unchanged.
func (b *Builder) Add(f Field) error {
	if f.Name == "" {
		return ErrEmptyName
	}
	if prev, ok := b.index[f.Name]; ok {
		return fmt.Errorf("%w: %q on page %d, first declared on page %d",
			ErrDuplicateField, f.Name, f.Page, b.fields[prev].Page)
	}
	if f.FontSize <= 0 && f.Kind != KindCheckbox {
		f.FontSize = DefaultFontSize
	}
	b.index[f.Name] = len(b.fields)
	b.fields = append(b.fields, f)
	return nil
}

// Has reports whether name has been registered.
func (b *Builder) Has(name string) bool {
	_, ok := b.index[name]
	return ok
}

// Len returns the number of registered fields.
func (b *Builder) Len() int { return len(b.fields) }

// Fields returns a copy of the registered fields in declaration order.
func (b *Builder) Fields() []Field {
	out := make([]Field, len(b.fields))
	copy(out, b.fields)
	return out
}

// Names returns the registered names in declaration order.
func (b *Builder) Names() []string {
	out := make([]string, len(b.fields))
	for i, f := range b.fields {
		out[i] = f.Name
	}
	return out
}
