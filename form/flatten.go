package form

import (
	"bytes"
	"fmt"
	"os"

	"github.com/lvillar/dqfile/reader"
)

// Flatten turns every widget's current value into static page content and
// removes the interactive form, producing the archival copy kept in a
// driver's qualification file. Non-widget annotations are preserved.
func Flatten(pdf []byte) ([]byte, error) {
	doc, err := reader.Parse(pdf)
	if err != nil {
		return nil, fmt.Errorf("form: parsing PDF: %w", err)
	}
	catalog, err := doc.Catalog()
	if err != nil {
		return nil, fmt.Errorf("form: %w", err)
	}
	if _, ok := catalog["AcroForm"]; !ok {
		return pdf, nil
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

	for _, page := range doc.Pages() {
		dict := page.Dict()
		annots := resolveArray(doc, dict["Annots"])
		if len(annots) == 0 {
			continue
		}

		var kept reader.Array
		var content bytes.Buffer
		for _, a := range annots {
			ad := resolveDict(doc, a)
			if ad.GetName("Subtype") != "Widget" {
				kept = append(kept, a)
				continue
			}
			drawWidgetValue(&content, ad)
		}
		if content.Len() == 0 && len(kept) == len(annots) {
			continue
		}

		if len(kept) > 0 {
			dict["Annots"] = kept
		} else {
			delete(dict, "Annots")
		}
		contents := reader.Array{}
		switch c := dict["Contents"].(type) {
		case reader.Reference:
			contents = append(contents, c)
		case reader.Array:
			contents = append(contents, c...)
		}
		contents = append(contents, u.add(reader.Stream{Dict: reader.Dict{}, Data: content.Bytes()}))
		dict["Contents"] = contents

		res := page.Resources.Clone()
		fonts := resolveDict(doc, res["Font"])
		fonts["DqFlatH"] = helv
		fonts["DqFlatZ"] = zadb
		res["Font"] = fonts
		dict["Resources"] = res
		u.set(page.Ref, dict)
	}

	catalog = catalog.Clone()
	delete(catalog, "AcroForm")
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

// FlattenFile flattens the PDF at inputPath into outputPath.
func FlattenFile(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("form: opening %s: %w", inputPath, err)
	}
	out, err := Flatten(data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("form: writing %s: %w", outputPath, err)
	}
	return nil
}

// drawWidgetValue appends drawing operators for the widget's value.
func drawWidgetValue(w *bytes.Buffer, ad reader.Dict) {
	arr, _ := ad["Rect"].(reader.Array)
	if len(arr) != 4 {
		return
	}
	var r [4]float64
	for i, v := range arr {
		switch n := v.(type) {
		case reader.Integer:
			r[i] = float64(n)
		case reader.Real:
			r[i] = float64(n)
		}
	}
	h := r[3] - r[1]

	if ad.GetName("FT") == "Btn" {
		if ad.GetName("AS") != "Yes" && ad.GetName("V") != "Yes" {
			return
		}
		size := h * 0.8
		fmt.Fprintf(w, "q 0 g BT /DqFlatZ %s Tf %s %s Td (4) Tj ET Q\n",
			reader.Real(size), reader.Real(r[0]+(r[2]-r[0]-size*0.78)/2), reader.Real(r[1]+(h-size*0.7)/2))
		return
	}

	s, ok := ad["V"].(reader.String)
	if !ok || len(s.Value) == 0 {
		return
	}
	size := float64(DefaultFontSize)
	if h < size+2 {
		size = h - 2
	}
	text := winAnsi(s.Value)
	fmt.Fprintf(w, "q 0 g BT /DqFlatH %s Tf %s %s Td %s Tj ET Q\n",
		reader.Real(size), reader.Real(r[0]+2), reader.Real(r[1]+(h-size)/2+size*0.22),
		reader.Encode(reader.String{Value: text}))
}

// winAnsi converts a PDF text string to single-byte WinAnsi, replacing
// characters outside Latin-1 with '?'.
func winAnsi(b []byte) []byte {
	if len(b) < 2 || b[0] != 0xFE || b[1] != 0xFF {
		return b
	}
	var out []byte
	for i := 2; i+1 < len(b); i += 2 {
		r := rune(b[i])<<8 | rune(b[i+1])
		if r > 0xFF {
			r = '?'
		}
		out = append(out, byte(r))
	}
	return out
}
