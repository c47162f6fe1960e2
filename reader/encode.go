package reader

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Encode returns the PDF syntax for obj. Dictionary keys are written in
// sorted order so the output is deterministic.
func Encode(obj Object) []byte {
	var buf bytes.Buffer
	encodeTo(&buf, obj)
	return buf.Bytes()
}

// WriteIndirect writes obj as the body of indirect object num, including
// stream data when obj is a Stream. /Length is set from the data.
func WriteIndirect(buf *bytes.Buffer, num int, obj Object) {
	fmt.Fprintf(buf, "%d 0 obj\n", num)
	if s, ok := obj.(Stream); ok {
		d := s.Dict.Clone()
		d["Length"] = Integer(len(s.Data))
		encodeTo(buf, d)
		buf.WriteString("\nstream\n")
		buf.Write(s.Data)
		buf.WriteString("\nendstream")
	} else {
		encodeTo(buf, obj)
	}
	buf.WriteString("\nendobj\n")
}

func encodeTo(buf *bytes.Buffer, obj Object) {
	switch v := obj.(type) {
	case nil, Null:
		buf.WriteString("null")
	case Boolean:
		buf.WriteString(strconv.FormatBool(bool(v)))
	case Integer:
		buf.WriteString(strconv.FormatInt(int64(v), 10))
	case Real:
		buf.WriteString(formatReal(float64(v)))
	case Name:
		encodeName(buf, v)
	case String:
		if v.IsHex {
			fmt.Fprintf(buf, "<%X>", v.Value)
		} else {
			encodeLiteral(buf, v.Value)
		}
	case Array:
		buf.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				buf.WriteByte(' ')
			}
			encodeTo(buf, item)
		}
		buf.WriteByte(']')
	case Dict:
		keys := make([]Name, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		buf.WriteString("<<")
		for _, k := range keys {
			encodeName(buf, k)
			buf.WriteByte(' ')
			encodeTo(buf, v[k])
			buf.WriteByte(' ')
		}
		buf.WriteString(">>")
	case Reference:
		fmt.Fprintf(buf, "%d %d R", v.Number, v.Generation)
	case Stream:
		// streams are only valid as indirect objects; see WriteIndirect
		encodeTo(buf, v.Dict)
	case IndirectObject:
		fmt.Fprintf(buf, "%d %d R", v.Number, v.Generation)
	}
}

// formatReal writes a real without exponent notation, trimming trailing zeros.
func formatReal(f float64) string {
	s := strconv.FormatFloat(f, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

func encodeName(buf *bytes.Buffer, n Name) {
	buf.WriteByte('/')
	for i := 0; i < len(n); i++ {
		c := n[i]
		if c < '!' || c > '~' || c == '#' || isDelimiter(c) {
			fmt.Fprintf(buf, "#%02X", c)
			continue
		}
		buf.WriteByte(c)
	}
}

func encodeLiteral(buf *bytes.Buffer, b []byte) {
	buf.WriteByte('(')
	for _, c := range b {
		switch c {
		case '(', ')', '\\':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case '\r':
			buf.WriteString(`\r`)
		case '\n':
			buf.WriteString(`\n`)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte(')')
}
