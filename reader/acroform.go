package reader

import (
	"fmt"
	"strconv"
	"strings"
)

// FormField is one node of the AcroForm field tree. Type, Value, Default
// and Flags are inherited from the nearest ancestor that sets them.
type FormField struct {
	Name     string // partial name (/T)
	FullName string // dotted fully qualified name
	Type     string // Tx, Btn, Ch or Sig
	Value    string
	Default  string
	Flags    int
	Rect     Rectangle
	Page     int // 0 when the widget is on no page
	Options  []string
	Kids     []*FormField
	ObjNum   int // 0 for a direct object
	dict     Dict
}

// Field flag bits shared by every field type.
const (
	flagReadOnly = 1 << 0
	flagRequired = 1 << 1
)

func (f *FormField) IsReadOnly() bool { return f.Flags&flagReadOnly != 0 }
func (f *FormField) IsRequired() bool { return f.Flags&flagRequired != 0 }

// Dict returns a copy of the field dictionary as stored in the file.
func (f *FormField) Dict() Dict { return f.dict.Clone() }

// Catalog returns the document catalog.
func (d *Document) Catalog() (Dict, error) {
	obj, err := d.resolveIfRef(d.trailer["Root"])
	if err != nil {
		return nil, fmt.Errorf("reader: resolving /Root: %w", err)
	}
	catalog, ok := obj.(Dict)
	if !ok {
		return nil, fmt.Errorf("reader: /Root is %T, not a dictionary", obj)
	}
	return catalog, nil
}

// fieldState is what a field passes down to its kids.
type fieldState struct {
	name              string
	typ, value, deflt string
	flags             int
}

func (st fieldState) child(partial string, dict Dict) fieldState {
	switch {
	case st.name != "" && partial != "":
		st.name += "." + partial
	case partial != "":
		st.name = partial
	}
	if ft := dict.GetName("FT"); ft != "" {
		st.typ = string(ft)
	}
	if v, ok := dict["V"]; ok {
		st.value = objectToString(v)
	}
	if v, ok := dict["DV"]; ok {
		st.deflt = objectToString(v)
	}
	if ff, ok := dict.GetInt("Ff"); ok {
		st.flags = int(ff)
	}
	return st
}

// FormFields returns the top-level AcroForm fields with their kids. A
// document without an AcroForm yields an empty, non-nil slice. Fields
// that do not resolve to dictionaries are skipped.
func (d *Document) FormFields() ([]*FormField, error) {
	out := []*FormField{}
	catalog, err := d.Catalog()
	if err != nil {
		return out, nil
	}
	obj, err := d.resolveIfRef(catalog["AcroForm"])
	if err != nil {
		return nil, fmt.Errorf("reader: resolving /AcroForm: %w", err)
	}
	acro, ok := obj.(Dict)
	if !ok {
		return out, nil
	}
	obj, err = d.resolveIfRef(acro["Fields"])
	if err != nil {
		return nil, fmt.Errorf("reader: resolving /AcroForm /Fields: %w", err)
	}
	roots, _ := obj.(Array)

	w := fieldWalker{doc: d, pages: d.widgetPages(), seen: make(map[int]bool)}
	for _, o := range roots {
		if f := w.field(o, fieldState{}); f != nil {
			out = append(out, f)
		}
	}
	return out, nil
}

type fieldWalker struct {
	doc   *Document
	pages map[int]int // annotation object number to page number
	seen  map[int]bool
}

func (w *fieldWalker) field(o Object, parent fieldState) *FormField {
	f := &FormField{}
	if ref, ok := o.(Reference); ok {
		if w.seen[ref.Number] {
			return nil
		}
		w.seen[ref.Number] = true
		f.ObjNum = ref.Number
	}
	obj, err := w.doc.resolveIfRef(o)
	if err != nil {
		return nil
	}
	dict, ok := obj.(Dict)
	if !ok {
		return nil
	}
	f.dict = dict

	if s, ok := dict["T"].(String); ok {
		f.Name = decodePDFString(s.Value)
	}
	st := parent.child(f.Name, dict)
	f.FullName, f.Type, f.Value, f.Default, f.Flags = st.name, st.typ, st.value, st.deflt, st.flags

	if r, err := w.doc.resolveIfRef(dict["Rect"]); err == nil && r != nil {
		f.Rect, _ = parseRectangle(r)
	}
	if p, ok := dict["P"].(Reference); ok {
		f.Page = w.doc.pageNumber(p)
	}
	if f.Page == 0 && f.ObjNum != 0 {
		f.Page = w.pages[f.ObjNum]
	}
	if opt, err := w.doc.resolveIfRef(dict["Opt"]); err == nil {
		for _, item := range asArray(opt) {
			f.Options = append(f.Options, objectToString(item))
		}
	}

	if kids, err := w.doc.resolveIfRef(dict["Kids"]); err == nil {
		for _, k := range asArray(kids) {
			if kid := w.field(k, st); kid != nil {
				f.Kids = append(f.Kids, kid)
			}
		}
	}
	return f
}

// widgetPages maps every annotation listed in a page's /Annots to that
// page, for widgets written without /P.
func (d *Document) widgetPages() map[int]int {
	m := make(map[int]int)
	for _, p := range d.pages {
		obj, err := d.resolveIfRef(p.dict["Annots"])
		if err != nil {
			continue
		}
		for _, a := range asArray(obj) {
			if ref, ok := a.(Reference); ok {
				m[ref.Number] = p.Number
			}
		}
	}
	return m
}

func (d *Document) pageNumber(ref Reference) int {
	for _, p := range d.pages {
		if p.Ref == ref {
			return p.Number
		}
	}
	return 0
}

func asArray(o Object) Array {
	a, _ := o.(Array)
	return a
}

// Leaves flattens a field tree into its terminal fields.
func Leaves(fields []*FormField) []*FormField {
	var out []*FormField
	for _, f := range fields {
		if len(f.Kids) == 0 {
			out = append(out, f)
			continue
		}
		out = append(out, Leaves(f.Kids)...)
	}
	return out
}

// FormField returns the field with the given fully qualified name, or nil.
// Parent fields are found as well as leaves.
func (d *Document) FormField(name string) (*FormField, error) {
	fields, err := d.FormFields()
	if err != nil {
		return nil, err
	}
	for stack := fields; len(stack) > 0; {
		f := stack[0]
		stack = append(stack[1:], f.Kids...)
		if f.FullName == name {
			return f, nil
		}
	}
	return nil, nil
}

func objectToString(obj Object) string {
	switch v := obj.(type) {
	case String:
		return decodePDFString(v.Value)
	case Name:
		return string(v)
	case Integer:
		return strconv.FormatInt(int64(v), 10)
	case Real:
		return formatReal(float64(v))
	case Boolean:
		return strconv.FormatBool(bool(v))
	}
	return ""
}

// GetString returns the trimmed text of a direct string entry.
func (d Dict) GetString(key Name) string {
	if s, ok := d[key].(String); ok {
		return strings.TrimSpace(decodePDFString(s.Value))
	}
	return ""
}
