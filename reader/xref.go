package reader

import (
	"bytes"
	"errors"
	"fmt"
)

// xrefEntry locates one object. Objects stored inside an object stream
// carry the stream's object number and their index within it.
type xrefEntry struct {
	Offset     int64
	Generation int
	InUse      bool
	Stream     int
	Index      int
}

// xrefTable maps object numbers to their entries.
type xrefTable map[int]xrefEntry

// fill copies the entries of an older section that t does not override.
func (t xrefTable) fill(older xrefTable) {
	for num, e := range older {
		if _, ok := t[num]; !ok {
			t[num] = e
		}
	}
}

// findStartXRef returns the offset recorded after the last startxref.
func findStartXRef(data []byte) (int64, error) {
	tail := data[max(0, len(data)-1024):]
	i := bytes.LastIndex(tail, []byte("startxref"))
	if i < 0 {
		return 0, errors.New("reader: startxref not found")
	}
	off, err := newScanner(tail[i+len("startxref"):]).integer()
	if err != nil {
		return 0, fmt.Errorf("reader: startxref: %w", err)
	}
	return off, nil
}

// readXRef reads the cross-reference section at offset and every older
// section reachable through /Prev, newest entries first. The trailer
// returned is the newest one.
func readXRef(data []byte, offset int64) (xrefTable, Dict, error) {
	table := xrefTable{}
	var trailer Dict
	seen := make(map[int64]bool)
	for next := offset; ; {
		if seen[next] {
			return nil, nil, fmt.Errorf("reader: /Prev chain loops at offset %d", next)
		}
		seen[next] = true
		section, tr, err := readXRefSection(data, next)
		if err != nil {
			return nil, nil, err
		}
		table.fill(section)
		if trailer == nil {
			trailer = tr
		}
		prev, ok := tr.GetInt("Prev")
		if !ok {
			return table, trailer, nil
		}
		next = prev
	}
}

// readXRefSection reads one classic table with its trailer, or one
// cross-reference stream.
func readXRefSection(data []byte, offset int64) (xrefTable, Dict, error) {
	if offset < 0 || offset >= int64(len(data)) {
		return nil, nil, fmt.Errorf("reader: xref offset %d out of bounds", offset)
	}
	s := newScanner(data[offset:])
	if !s.keyword("xref") {
		return readXRefStream(newScanner(data[offset:]))
	}

	table := xrefTable{}
	for !s.keyword("trailer") {
		first, err := s.integer()
		if err != nil {
			return nil, nil, fmt.Errorf("reader: xref subsection: %w", err)
		}
		count, err := s.integer()
		if err != nil {
			return nil, nil, fmt.Errorf("reader: xref subsection %d: %w", first, err)
		}
		for i := int64(0); i < count; i++ {
			off, err := s.integer()
			if err != nil {
				return nil, nil, fmt.Errorf("reader: xref entry %d: %w", first+i, err)
			}
			gen, err := s.integer()
			if err != nil {
				return nil, nil, fmt.Errorf("reader: xref entry %d: %w", first+i, err)
			}
			inUse := s.word() == "n"
			if _, dup := table[int(first+i)]; !dup {
				table[int(first+i)] = xrefEntry{Offset: off, Generation: int(gen), InUse: inUse}
			}
		}
	}

	obj, err := s.object()
	if err != nil {
		return nil, nil, fmt.Errorf("reader: trailer: %w", err)
	}
	trailer, ok := obj.(Dict)
	if !ok {
		return nil, nil, fmt.Errorf("reader: trailer is %T", obj)
	}
	return table, trailer, nil
}

// readXRefStream decodes a PDF 1.5 cross-reference stream. Its dictionary
// doubles as the trailer.
func readXRefStream(s *scanner) (xrefTable, Dict, error) {
	obj, err := s.indirect()
	if err != nil {
		return nil, nil, fmt.Errorf("reader: xref stream: %w", err)
	}
	stm, ok := obj.Value.(Stream)
	if !ok {
		return nil, nil, fmt.Errorf("reader: object %d is not a cross-reference stream", obj.Number)
	}
	data, err := decodeStream(stm)
	if err != nil {
		return nil, nil, fmt.Errorf("reader: xref stream: %w", err)
	}

	wa := stm.Dict.GetArray("W")
	if len(wa) != 3 {
		return nil, nil, fmt.Errorf("reader: xref stream /W has %d entries", len(wa))
	}
	var w [3]int
	for i, o := range wa {
		n, ok := o.(Integer)
		if !ok || n < 0 || n > 8 {
			return nil, nil, fmt.Errorf("reader: xref stream /W entry %v", o)
		}
		w[i] = int(n)
	}

	var index []int64
	if ia := stm.Dict.GetArray("Index"); len(ia) > 0 {
		for _, o := range ia {
			n, _ := o.(Integer)
			index = append(index, int64(n))
		}
	} else {
		size, _ := stm.Dict.GetInt("Size")
		index = []int64{0, size}
	}

	row := w[0] + w[1] + w[2]
	table := xrefTable{}
	for k := 0; k+1 < len(index); k += 2 {
		for j := int64(0); j < index[k+1] && len(data) >= row; j++ {
			f := [3]int64{1, 0, 0}
			for i := range 3 {
				if w[i] > 0 {
					f[i] = bigEndian(data[:w[i]])
					data = data[w[i]:]
				}
			}
			num := int(index[k] + j)
			switch f[0] {
			case 0:
				table[num] = xrefEntry{Generation: int(f[2])}
			case 1:
				table[num] = xrefEntry{Offset: f[1], Generation: int(f[2]), InUse: true}
			case 2:
				table[num] = xrefEntry{InUse: true, Stream: int(f[1]), Index: int(f[2])}
			}
		}
	}
	return table, stm.Dict, nil
}

func bigEndian(b []byte) int64 {
	var v int64
	for _, c := range b {
		v = v<<8 | int64(c)
	}
	return v
}
