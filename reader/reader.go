package reader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"
)

// ErrEncrypted is returned for documents carrying an /Encrypt dictionary.
// Generated applications and supported templates are never encrypted.
var ErrEncrypted = errors.New("reader: encrypted documents are not supported")

// Document is a parsed PDF file. The original bytes are retained so that an
// incremental update can be appended to them.
type Document struct {
	Version   string
	xref      xrefTable
	trailer   Dict
	data      []byte
	startXRef int64
	pages     []*Page
	objstms   map[int]*objectStream
}

// Open reads and parses the PDF file at path.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reader: opening %s: %w", path, err)
	}
	return Parse(data)
}

// ReadFrom reads r to the end and parses the result.
func ReadFrom(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reader: reading input: %w", err)
	}
	return Parse(data)
}

// Parse parses a complete PDF held in memory. data must not be modified
// while the Document is in use.
func Parse(data []byte) (*Document, error) {
	doc := &Document{data: data, Version: parseVersion(data)}

	startXRef, err := findStartXRef(data)
	if err != nil {
		return nil, err
	}
	xref, trailer, err := readXRef(data, startXRef)
	if err != nil {
		return nil, err
	}
	doc.startXRef = startXRef
	doc.xref = xref
	doc.trailer = trailer

	if _, ok := trailer["Encrypt"]; ok {
		return nil, ErrEncrypted
	}
	if err := doc.buildPageList(); err != nil {
		return nil, err
	}
	return doc, nil
}

// parseVersion reads the version from the "%PDF-x.y" header.
func parseVersion(data []byte) string {
	header := string(data[:min(20, len(data))])
	idx := strings.Index(header, "%PDF-")
	if idx < 0 {
		return ""
	}
	end := idx + 5
	for end < len(header) && header[end] != '\n' && header[end] != '\r' {
		end++
	}
	return header[idx+5 : end]
}

// Bytes returns the file contents the document was parsed from.
func (d *Document) Bytes() []byte { return d.data }

// StartXRef returns the byte offset of the newest cross-reference section.
func (d *Document) StartXRef() int64 { return d.startXRef }

// Trailer returns the newest trailer dictionary.
func (d *Document) Trailer() Dict { return d.trailer }

// Size returns the trailer /Size: one past the highest object number in use.
func (d *Document) Size() int {
	if n, ok := d.trailer.GetInt("Size"); ok {
		return int(n)
	}
	highest := 0
	for num := range d.xref {
		highest = max(highest, num)
	}
	return highest + 1
}

// RootRef returns the reference to the document catalog.
func (d *Document) RootRef() (Reference, error) {
	ref, ok := d.trailer["Root"].(Reference)
	if !ok {
		return Reference{}, fmt.Errorf("reader: /Root is not an indirect reference")
	}
	return ref, nil
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return len(d.pages)
}

// Page returns page n, counting from 1.
func (d *Document) Page(n int) (*Page, error) {
	if n < 1 || n > len(d.pages) {
		return nil, fmt.Errorf("reader: page %d out of range [1, %d]", n, len(d.pages))
	}
	return d.pages[n-1], nil
}

// Pages iterates over the pages in order with 1-based indexes.
func (d *Document) Pages() iter.Seq2[int, *Page] {
	return func(yield func(int, *Page) bool) {
		for i, page := range d.pages {
			if !yield(i+1, page) {
				return
			}
		}
	}
}

// Metadata returns the text entries of the /Info dictionary.
func (d *Document) Metadata() map[string]string {
	meta := make(map[string]string)
	info, err := d.resolveIfRef(d.trailer["Info"])
	if err != nil {
		return meta
	}
	infoDict, _ := info.(Dict)
	for _, key := range []Name{"Title", "Author", "Subject", "Keywords", "Creator", "Producer"} {
		if s, ok := infoDict[key].(String); ok {
			meta[string(key)] = decodePDFString(s.Value)
		}
	}
	return meta
}

// Object returns the value of indirect object num.
func (d *Document) Object(num int) (Object, error) {
	return d.resolve(Reference{Number: num})
}

// ResolveReference returns the object ref points to.
func (d *Document) ResolveReference(ref Reference) (Object, error) {
	return d.resolve(ref)
}

func (d *Document) resolve(ref Reference) (Object, error) {
	entry, ok := d.xref[ref.Number]
	if !ok || !entry.InUse {
		return Null{}, nil
	}
	if entry.Stream != 0 {
		return d.resolveCompressed(ref.Number, entry)
	}
	if entry.Offset < 0 || int(entry.Offset) >= len(d.data) {
		return nil, fmt.Errorf("reader: object %d offset %d out of bounds", ref.Number, entry.Offset)
	}

	obj, err := newScanner(d.data[entry.Offset:]).indirect()
	if err != nil {
		return nil, fmt.Errorf("reader: parsing object %d: %w", ref.Number, err)
	}
	return obj.Value, nil
}

func (d *Document) resolveIfRef(obj Object) (Object, error) {
	if ref, ok := obj.(Reference); ok {
		return d.resolve(ref)
	}
	return obj, nil
}

// objectStream is a decoded /Type /ObjStm with its offset table.
type objectStream struct {
	data    []byte
	offsets []int
}

func (d *Document) resolveCompressed(num int, entry xrefEntry) (Object, error) {
	if d.objstms == nil {
		d.objstms = make(map[int]*objectStream)
	}
	stm, ok := d.objstms[entry.Stream]
	if !ok {
		loaded, err := d.loadObjectStream(entry.Stream)
		if err != nil {
			return nil, fmt.Errorf("reader: object %d: %w", num, err)
		}
		d.objstms[entry.Stream] = loaded
		stm = loaded
	}
	if entry.Index < 0 || entry.Index >= len(stm.offsets) || stm.offsets[entry.Index] > len(stm.data) {
		return nil, fmt.Errorf("reader: object %d: index %d outside object stream %d", num, entry.Index, entry.Stream)
	}
	return newScanner(stm.data[stm.offsets[entry.Index]:]).object()
}

func (d *Document) loadObjectStream(num int) (*objectStream, error) {
	obj, err := d.resolve(Reference{Number: num})
	if err != nil {
		return nil, err
	}
	s, ok := obj.(Stream)
	if !ok {
		return nil, fmt.Errorf("object stream %d is %T", num, obj)
	}
	data, err := decodeStream(s)
	if err != nil {
		return nil, fmt.Errorf("decoding object stream %d: %w", num, err)
	}
	n, _ := s.Dict.GetInt("N")
	first, _ := s.Dict.GetInt("First")
	if int(first) > len(data) {
		return nil, fmt.Errorf("object stream %d: /First beyond data", num)
	}

	header := bytes.Fields(data[:first])
	out := &objectStream{data: data}
	for i := 0; i+1 < len(header) && len(out.offsets) < int(n); i += 2 {
		off, err := strconv.Atoi(string(header[i+1]))
		if err != nil {
			return nil, fmt.Errorf("object stream %d: bad offset %q", num, header[i+1])
		}
		out.offsets = append(out.offsets, int(first)+off)
	}
	return out, nil
}
