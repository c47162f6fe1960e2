package form

import (
	"bytes"
	"fmt"
	"slices"
	"unicode/utf16"

	"github.com/lvillar/dqfile/reader"
)

// update is an incremental update being prepared against a parsed PDF.
// New and replaced objects are appended after the original bytes, followed
// by a cross-reference section chained to the previous one with /Prev.
type update struct {
	doc  *reader.Document
	next int
	objs map[int]reader.Object
}

func newUpdate(doc *reader.Document) *update {
	return &update{doc: doc, next: doc.Size(), objs: make(map[int]reader.Object)}
}

// alloc reserves a fresh object number.
func (u *update) alloc() reader.Reference {
	ref := reader.Reference{Number: u.next}
	u.next++
	return ref
}

// add allocates a number for obj and stores it.
func (u *update) add(obj reader.Object) reader.Reference {
	ref := u.alloc()
	u.objs[ref.Number] = obj
	return ref
}

// set stores obj under an existing or reserved number.
func (u *update) set(ref reader.Reference, obj reader.Object) {
	u.objs[ref.Number] = obj
}

// bytes serializes the original file followed by the update.
func (u *update) bytes() ([]byte, error) {
	root, err := u.doc.RootRef()
	if err != nil {
		return nil, err
	}
	orig := u.doc.Bytes()

	var buf bytes.Buffer
	buf.Grow(len(orig) + 64*len(u.objs) + 4096)
	buf.Write(orig)
	if len(orig) > 0 && orig[len(orig)-1] != '\n' {
		buf.WriteByte('\n')
	}

	nums := make([]int, 0, len(u.objs))
	for n := range u.objs {
		nums = append(nums, n)
	}
	slices.Sort(nums)

	offsets := make(map[int]int, len(nums))
	for _, n := range nums {
		offsets[n] = buf.Len()
		reader.WriteIndirect(&buf, n, u.objs[n])
	}

	xrefAt := buf.Len()
	buf.WriteString("xref\n")
	for start := 0; start < len(nums); {
		end := start + 1
		for end < len(nums) && nums[end] == nums[end-1]+1 {
			end++
		}
		fmt.Fprintf(&buf, "%d %d\n", nums[start], end-start)
		for _, n := range nums[start:end] {
			fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[n])
		}
		start = end
	}

	trailer := reader.Dict{
		"Size": reader.Integer(u.next),
		"Root": root,
		"Prev": reader.Integer(u.doc.StartXRef()),
	}
	if info, ok := u.doc.Trailer()["Info"]; ok {
		trailer["Info"] = info
	}
	if id, ok := u.doc.Trailer()["ID"]; ok {
		trailer["ID"] = id
	}
	buf.WriteString("trailer\n")
	buf.Write(reader.Encode(trailer))
	fmt.Fprintf(&buf, "\nstartxref\n%d\n%%%%EOF\n", xrefAt)
	return buf.Bytes(), nil
}

// textString encodes s as a PDF text string: literal for ASCII, UTF-16BE
// with a byte order mark otherwise.
func textString(s string) reader.String {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return reader.Text(s)
	}
	units := utf16.Encode([]rune(s))
	b := make([]byte, 2, 2+2*len(units))
	b[0], b[1] = 0xFE, 0xFF
	for _, u := range units {
		b = append(b, byte(u>>8), byte(u))
	}
	return reader.String{Value: b, IsHex: true}
}

func rectArray(r Rect) reader.Array {
	return reader.Array{reader.Real(r.LLX), reader.Real(r.LLY), reader.Real(r.URX), reader.Real(r.URY)}
}

// resolveDict resolves obj to a dictionary, or returns an empty one.
func resolveDict(doc *reader.Document, obj reader.Object) reader.Dict {
	if ref, ok := obj.(reader.Reference); ok {
		resolved, err := doc.ResolveReference(ref)
		if err != nil {
			return reader.Dict{}
		}
		obj = resolved
	}
	if d, ok := obj.(reader.Dict); ok {
		return d.Clone()
	}
	return reader.Dict{}
}

// resolveArray resolves obj to an array, or returns nil.
func resolveArray(doc *reader.Document, obj reader.Object) reader.Array {
	if ref, ok := obj.(reader.Reference); ok {
		resolved, err := doc.ResolveReference(ref)
		if err != nil {
			return nil
		}
		obj = resolved
	}
	arr, _ := obj.(reader.Array)
	return slices.Clone(arr)
}
