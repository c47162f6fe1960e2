package form

import (
	"fmt"

	"github.com/lvillar/dqfile/reader"
)

// Field flag bits (PDF 32000-1, table 221).
const (
	flagReadOnly = 1 << 0
	flagRequired = 1 << 1
)

// Annotation flag Print.
const annotPrint = 4

// Inject appends an incremental update to pdf that adds every field as a
// widget annotation on its page and installs the catalog /AcroForm with
// /NeedAppearances set. Fields already present in an existing AcroForm are
// kept. An empty field list returns pdf unchanged.
func Inject(pdf []byte, fields []Field) ([]byte, error) {
	if len(fields) == 0 {
		return pdf, nil
	}
	doc, err := reader.Parse(pdf)
	if err != nil {
		return nil, fmt.Errorf("form: parsing output: %w", err)
	}

	u := newUpdate(doc)
	helv := u.add(reader.Dict{
		"Type":     reader.Name("Font"),
		"Subtype":  reader.Name("Type1"),
		"BaseFont": reader.Name("Helvetica"),
		"Encoding": reader.Name("WinAnsiEncoding"),
	})
	zadb := u.add(reader.Dict{
		"Type":     reader.Name("Font"),
		"Subtype":  reader.Name("Type1"),
		"BaseFont": reader.Name("ZapfDingbats"),
	})
	checks := checkAppearances{u: u, font: zadb, cache: make(map[[2]float64][2]reader.Reference)}

	annots := make(map[int][]reader.Object)
	var refs reader.Array
	for _, f := range fields {
		page, err := doc.Page(f.Page)
		if err != nil {
			return nil, fmt.Errorf("%w: %q targets page %d of %d", ErrPageRange, f.Name, f.Page, doc.NumPages())
		}
		ref := u.add(widget(f, page.Ref, checks))
		annots[f.Page] = append(annots[f.Page], ref)
		refs = append(refs, ref)
	}

	for n, list := range annots {
		page, _ := doc.Page(n)
		dict := page.Dict()
		dict["Annots"] = append(resolveArray(doc, dict["Annots"]), list...)
		u.set(page.Ref, dict)
	}

	catalog, err := doc.Catalog()
	if err != nil {
		return nil, fmt.Errorf("form: %w", err)
	}
	acro := resolveDict(doc, catalog["AcroForm"])
	acro["Fields"] = append(resolveArray(doc, acro["Fields"]), refs...)
	dr := resolveDict(doc, acro["DR"])
	fonts := resolveDict(doc, dr["Font"])
	fonts["Helv"] = helv
	fonts["ZaDb"] = zadb
	dr["Font"] = fonts
	acro["DR"] = dr
	acro["DA"] = reader.Text("/Helv 0 Tf 0 g")
	acro["NeedAppearances"] = reader.Boolean(true)

	catalog = catalog.Clone()
	catalog["AcroForm"] = u.add(acro)
	root, err := doc.RootRef()
	if err != nil {
		return nil, fmt.Errorf("form: %w", err)
	}
	u.set(root, catalog)

	out, err := u.bytes()
	if err != nil {
		return nil, fmt.Errorf("form: writing update: %w", err)
	}
	return out, nil
}

// widget builds the merged field/widget dictionary for f.
func widget(f Field, page reader.Reference, checks checkAppearances) reader.Dict {
	d := reader.Dict{
		"Type":    reader.Name("Annot"),
		"Subtype": reader.Name("Widget"),
		"T":       reader.Text(f.Name),
		"Rect":    rectArray(f.Rect),
		"F":       reader.Integer(annotPrint),
		"P":       page,
	}
	var ff int
	if f.ReadOnly {
		ff |= flagReadOnly
	}
	if f.Required {
		ff |= flagRequired
	}
	if ff != 0 {
		d["Ff"] = reader.Integer(ff)
	}
	if f.Tooltip != "" {
		d["TU"] = textString(f.Tooltip)
	}

	switch f.Kind {
	case KindCheckbox:
		state := reader.Name("Off")
		if f.Checked {
			state = "Yes"
		}
		yes, off := checks.get(f.Rect.Width(), f.Rect.Height())
		d["FT"] = reader.Name("Btn")
		d["V"] = state
		d["AS"] = state
		d["DA"] = reader.Text("/ZaDb 0 Tf 0 g")
		d["MK"] = reader.Dict{"CA": reader.Text("4"), "BC": reader.Array{reader.Integer(0)}}
		d["AP"] = reader.Dict{"N": reader.Dict{"Yes": yes, "Off": off}}
	default:
		d["FT"] = reader.Name("Tx")
		d["DA"] = reader.Text(fmt.Sprintf("/Helv %s Tf 0 g", reader.Real(f.FontSize)))
		if f.Value != "" {
			d["V"] = textString(f.Value)
		}
		if f.MaxLen > 0 {
			d["MaxLen"] = reader.Integer(f.MaxLen)
		}
		mk := reader.Dict{"BC": reader.Array{reader.Real(0.6)}}
		if f.Kind == KindSignature {
			mk["BG"] = reader.Array{reader.Real(0.95)}
		}
		d["MK"] = mk
	}
	return d
}

// checkAppearances shares the on and off appearance streams between all
// check boxes of the same size.
type checkAppearances struct {
	u     *update
	font  reader.Reference
	cache map[[2]float64][2]reader.Reference
}

func (c checkAppearances) get(w, h float64) (yes, off reader.Reference) {
	key := [2]float64{w, h}
	if refs, ok := c.cache[key]; ok {
		return refs[0], refs[1]
	}
	size := h * 0.8
	x := (w - size*0.78) / 2
	y := (h - size*0.7) / 2
	bbox := reader.Array{reader.Integer(0), reader.Integer(0), reader.Real(w), reader.Real(h)}
	on := fmt.Sprintf("q 0 g BT /ZaDb %s Tf %s %s Td (4) Tj ET Q",
		reader.Real(size), reader.Real(x), reader.Real(y))

	yes = c.u.add(reader.Stream{
		Dict: reader.Dict{
			"Type":      reader.Name("XObject"),
			"Subtype":   reader.Name("Form"),
			"BBox":      bbox,
			"Resources": reader.Dict{"Font": reader.Dict{"ZaDb": c.font}},
		},
		Data: []byte(on),
	})
	off = c.u.add(reader.Stream{
		Dict: reader.Dict{
			"Type":    reader.Name("XObject"),
			"Subtype": reader.Name("Form"),
			"BBox":    bbox,
		},
		Data: nil,
	})
	c.cache[key] = [2]reader.Reference{yes, off}
	return yes, off
}
