package reader

import (
	"fmt"
)

// Rectangle is a PDF rectangle [llx lly urx ury] in points.
type Rectangle struct {
	LLX, LLY, URX, URY float64
}

func (r Rectangle) Width() float64  { return r.URX - r.LLX }
func (r Rectangle) Height() float64 { return r.URY - r.LLY }

// letter is the MediaBox assumed for pages that do not inherit one.
var letter = Rectangle{URX: 612, URY: 792}

// Page is one leaf of the page tree. Ref is the page object's own
// reference; an incremental update rewrites that object to add widgets.
type Page struct {
	Number    int
	Ref       Reference
	MediaBox  Rectangle
	CropBox   *Rectangle
	Resources Dict
	Contents  []Stream
	Rotate    int // 0, 90, 180 or 270
	dict      Dict
	doc       *Document
}

// Dict returns a copy of the page dictionary as stored in the file.
func (p *Page) Dict() Dict { return p.dict.Clone() }

// Annotations returns the page's resolved /Annots dictionaries.
func (p *Page) Annotations() []Dict {
	annots, err := p.doc.resolveIfRef(p.dict["Annots"])
	if err != nil {
		return nil
	}
	arr, _ := annots.(Array)
	var out []Dict
	for _, a := range arr {
		if obj, err := p.doc.resolveIfRef(a); err == nil {
			if d, ok := obj.(Dict); ok {
				out = append(out, d)
			}
		}
	}
	return out
}

// ContentStream returns the decoded content streams of the page joined by
// newlines.
func (p *Page) ContentStream() ([]byte, error) {
	var out []byte
	for _, s := range p.Contents {
		data, err := decodeStream(s)
		if err != nil {
			return nil, fmt.Errorf("reader: page %d content: %w", p.Number, err)
		}
		out = append(append(out, data...), '\n')
	}
	return out, nil
}

func parseRectangle(obj Object) (Rectangle, error) {
	arr, ok := obj.(Array)
	if !ok || len(arr) != 4 {
		return Rectangle{}, fmt.Errorf("reader: rectangle is %v", obj)
	}
	var v [4]float64
	for i, o := range arr {
		switch n := o.(type) {
		case Integer:
			v[i] = float64(n)
		case Real:
			v[i] = float64(n)
		default:
			return Rectangle{}, fmt.Errorf("reader: rectangle entry %d is %T", i, o)
		}
	}
	return Rectangle{LLX: min(v[0], v[2]), LLY: min(v[1], v[3]), URX: max(v[0], v[2]), URY: max(v[1], v[3])}, nil
}

// inheritable holds the page attributes a /Pages node passes down to its
// kids.
type inheritable struct {
	mediaBox, cropBox, resources, rotate Object
}

func (in inheritable) override(node Dict) inheritable {
	if v, ok := node["MediaBox"]; ok {
		in.mediaBox = v
	}
	if v, ok := node["CropBox"]; ok {
		in.cropBox = v
	}
	if v, ok := node["Resources"]; ok {
		in.resources = v
	}
	if v, ok := node["Rotate"]; ok {
		in.rotate = v
	}
	return in
}

// pageNode is a page tree node waiting to be visited.
type pageNode struct {
	ref  Reference
	attr inheritable
}

// buildPageList walks the page tree depth first and records its leaves in
// document order. A node reached twice ends the walk with an error.
func (d *Document) buildPageList() error {
	catalog, err := d.Catalog()
	if err != nil {
		return err
	}
	root, ok := catalog["Pages"].(Reference)
	if !ok {
		return fmt.Errorf("reader: /Pages is not a reference")
	}

	d.pages = nil
	seen := make(map[Reference]bool)
	stack := []pageNode{{ref: root}}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n.ref] {
			return fmt.Errorf("reader: page tree visits %d %d R twice", n.ref.Number, n.ref.Generation)
		}
		seen[n.ref] = true

		obj, err := d.resolve(n.ref)
		if err != nil {
			return fmt.Errorf("reader: page tree node %d: %w", n.ref.Number, err)
		}
		node, ok := obj.(Dict)
		if !ok {
			continue
		}
		attr := n.attr.override(node)

		if node.GetName("Type") == "Page" || (node.GetName("Type") == "" && node["Kids"] == nil) {
			page, err := d.newPage(n.ref, node, attr)
			if err != nil {
				return err
			}
			d.pages = append(d.pages, page)
			continue
		}

		kidsObj, err := d.resolveIfRef(node["Kids"])
		if err != nil {
			return fmt.Errorf("reader: /Kids of %d: %w", n.ref.Number, err)
		}
		kids, _ := kidsObj.(Array)
		for i := len(kids) - 1; i >= 0; i-- {
			if ref, ok := kids[i].(Reference); ok {
				stack = append(stack, pageNode{ref: ref, attr: attr})
			}
		}
	}
	return nil
}

func (d *Document) newPage(ref Reference, node Dict, attr inheritable) (*Page, error) {
	p := &Page{Number: len(d.pages) + 1, Ref: ref, MediaBox: letter, dict: node, doc: d}

	if obj, err := d.resolveIfRef(attr.mediaBox); err == nil {
		if r, err := parseRectangle(obj); err == nil {
			p.MediaBox = r
		}
	}
	if obj, err := d.resolveIfRef(attr.cropBox); err == nil {
		if r, err := parseRectangle(obj); err == nil {
			p.CropBox = &r
		}
	}
	if obj, err := d.resolveIfRef(attr.resources); err == nil {
		p.Resources, _ = obj.(Dict)
	}
	if obj, err := d.resolveIfRef(attr.rotate); err == nil {
		if n, ok := obj.(Integer); ok {
			p.Rotate = ((int(n)%360 + 360) % 360) / 90 * 90
		}
	}

	contents, err := d.resolveIfRef(node["Contents"])
	if err != nil {
		return nil, fmt.Errorf("reader: page %d contents: %w", p.Number, err)
	}
	switch c := contents.(type) {
	case Stream:
		p.Contents = []Stream{c}
	case Array:
		for _, item := range c {
			if obj, err := d.resolveIfRef(item); err == nil {
				if s, ok := obj.(Stream); ok {
					p.Contents = append(p.Contents, s)
				}
			}
		}
	}
	return p, nil
}
