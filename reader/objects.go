// Package reader parses the PDF files produced by the application engine and
// the pre-printed templates the overlay path draws onto.
//
// It covers what those two callers need: classic and stream cross-reference
// sections chained through /Prev, the page tree, AcroForm fields, basic text
// extraction, and a serializer for writing objects back out in an
// incremental update.
package reader

import (
	"fmt"
)

// Object is implemented by every PDF value type in this package.
// String returns the PDF syntax of the value.
type Object interface {
	pdfObject()
	String() string
}

// Null is the PDF null object.
type Null struct{}

func (Null) pdfObject()     {}
func (Null) String() string { return "null" }

// Boolean is a PDF boolean.
type Boolean bool

func (Boolean) pdfObject()       {}
func (b Boolean) String() string { return string(Encode(b)) }

// Integer is a PDF integer.
type Integer int64

func (Integer) pdfObject()       {}
func (i Integer) String() string { return string(Encode(i)) }

// Real is a PDF real number.
type Real float64

func (Real) pdfObject()       {}
func (r Real) String() string { return string(Encode(r)) }

// Name is a PDF name such as /Type. The leading slash is not stored.
type Name string

func (Name) pdfObject()       {}
func (n Name) String() string { return string(Encode(n)) }

// String is a PDF string. IsHex records which syntax it was read from and
// which syntax Encode writes it back in.
type String struct {
	Value []byte
	IsHex bool
}

func (String) pdfObject()       {}
func (s String) String() string { return string(Encode(s)) }

// Text builds a literal String from a Go string.
func Text(s string) String { return String{Value: []byte(s)} }

// Array is a PDF array.
type Array []Object

func (Array) pdfObject()       {}
func (a Array) String() string { return string(Encode(a)) }

// Dict is a PDF dictionary.
type Dict map[Name]Object

func (Dict) pdfObject()       {}
func (d Dict) String() string { return string(Encode(d)) }

// Clone returns a shallow copy of d that can be modified without touching
// the parsed original.
func (d Dict) Clone() Dict {
	out := make(Dict, len(d)+2)
	for k, v := range d {
		out[k] = v
	}
	return out
}

// GetName returns the name stored under key, or "".
func (d Dict) GetName(key Name) Name {
	if n, ok := d[key].(Name); ok {
		return n
	}
	return ""
}

// GetInt returns the integer stored under key. Reals are truncated.
func (d Dict) GetInt(key Name) (int64, bool) {
	switch n := d[key].(type) {
	case Integer:
		return int64(n), true
	case Real:
		return int64(n), true
	}
	return 0, false
}

// GetDict returns a direct sub-dictionary, or nil.
func (d Dict) GetDict(key Name) Dict {
	if sub, ok := d[key].(Dict); ok {
		return sub
	}
	return nil
}

// GetArray returns a direct array, or nil.
func (d Dict) GetArray(key Name) Array {
	if arr, ok := d[key].(Array); ok {
		return arr
	}
	return nil
}

// Stream is a PDF stream: its dictionary and the raw, possibly filtered, data.
type Stream struct {
	Dict Dict
	Data []byte
}

func (Stream) pdfObject()       {}
func (s Stream) String() string { return fmt.Sprintf("<<stream len=%d>>", len(s.Data)) }

// Reference is an indirect reference such as "12 0 R".
type Reference struct {
	Number     int
	Generation int
}

func (Reference) pdfObject()       {}
func (r Reference) String() string { return string(Encode(r)) }

// IndirectObject is a parsed "N G obj ... endobj" definition.
type IndirectObject struct {
	Reference
	Value Object
}

func (IndirectObject) pdfObject() {}
func (o IndirectObject) String() string {
	return fmt.Sprintf("%d %d obj %s", o.Number, o.Generation, o.Value)
}
