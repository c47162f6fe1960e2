package reader

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Byte classes of the PDF lexical grammar.
const (
	regular = iota
	space
	delim
)

var class [256]uint8

func init() {
	for _, c := range []byte{0, '\t', '\n', '\f', '\r', ' '} {
		class[c] = space
	}
	for _, c := range []byte("()<>[]{}/%") {
		class[c] = delim
	}
}

func isWhitespace(c byte) bool { return class[c] == space }
func isDelimiter(c byte) bool  { return class[c] == delim }

// scanner reads tokens and objects from an in-memory PDF. The same scanner
// serves object definitions, cross-reference sections and content streams.
type scanner struct {
	buf []byte
	off int
}

func newScanner(buf []byte) *scanner { return &scanner{buf: buf} }

func (s *scanner) eof() bool { return s.off >= len(s.buf) }

// skip advances past whitespace and comments.
func (s *scanner) skip() {
	for s.off < len(s.buf) {
		c := s.buf[s.off]
		switch {
		case class[c] == space:
			s.off++
		case c == '%':
			for s.off < len(s.buf) && s.buf[s.off] != '\n' && s.buf[s.off] != '\r' {
				s.off++
			}
		default:
			return
		}
	}
}

// word returns the next run of regular bytes: a keyword, an operator or a
// number. It is empty when the next byte is a delimiter.
func (s *scanner) word() string {
	s.skip()
	start := s.off
	for s.off < len(s.buf) && class[s.buf[s.off]] == regular {
		s.off++
	}
	return string(s.buf[start:s.off])
}

// keyword consumes kw when it is the next complete word.
func (s *scanner) keyword(kw string) bool {
	s.skip()
	end := s.off + len(kw)
	if end > len(s.buf) || string(s.buf[s.off:end]) != kw {
		return false
	}
	if end < len(s.buf) && class[s.buf[end]] == regular {
		return false
	}
	s.off = end
	return true
}

// integer reads the next word as a decimal integer.
func (s *scanner) integer() (int64, error) {
	w := s.word()
	n, err := strconv.ParseInt(w, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("reader: expected integer at %d, got %q", s.off-len(w), w)
	}
	return n, nil
}

// object parses the next direct object. "N G R" yields a Reference.
func (s *scanner) object() (Object, error) {
	s.skip()
	if s.eof() {
		return nil, io.ErrUnexpectedEOF
	}
	switch s.buf[s.off] {
	case '/':
		return s.name()
	case '[':
		return s.array()
	case '(':
		v, end, err := literal(s.buf, s.off)
		if err != nil {
			return nil, err
		}
		s.off = end
		return String{Value: v}, nil
	case '<':
		if bytes.HasPrefix(s.buf[s.off:], []byte("<<")) {
			return s.dict()
		}
		v, end, err := hexString(s.buf, s.off, true)
		if err != nil {
			return nil, err
		}
		s.off = end
		return String{Value: v, IsHex: true}, nil
	}

	start := s.off
	w := s.word()
	switch w {
	case "":
		return nil, fmt.Errorf("reader: unexpected %q at %d", s.buf[start], start)
	case "true":
		return Boolean(true), nil
	case "false":
		return Boolean(false), nil
	case "null":
		return Null{}, nil
	}
	if c := w[0]; c != '+' && c != '-' && c != '.' && (c < '0' || c > '9') {
		return nil, fmt.Errorf("reader: unexpected keyword %q at %d", w, start)
	}
	if n, err := strconv.ParseInt(w, 10, 64); err == nil {
		return s.maybeRef(n), nil
	}
	f, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return nil, fmt.Errorf("reader: invalid number %q at %d", w, start)
	}
	return Real(f), nil
}

// maybeRef returns a Reference when "G R" follows the integer n, and
// Integer(n) otherwise with the scanner left right after n.
func (s *scanner) maybeRef(n int64) Object {
	save := s.off
	if gen, err := strconv.ParseUint(s.word(), 10, 16); err == nil && n >= 0 && s.keyword("R") {
		return Reference{Number: int(n), Generation: int(gen)}
	}
	s.off = save
	return Integer(n)
}

// name parses /Name, decoding #xx escapes.
func (s *scanner) name() (Name, error) {
	s.skip()
	if s.eof() || s.buf[s.off] != '/' {
		return "", fmt.Errorf("reader: expected name at %d", s.off)
	}
	s.off++
	var b []byte
	for s.off < len(s.buf) && class[s.buf[s.off]] == regular {
		c := s.buf[s.off]
		if c == '#' && s.off+2 < len(s.buf) {
			if hi, lo := unhex(s.buf[s.off+1]), unhex(s.buf[s.off+2]); hi >= 0 && lo >= 0 {
				b = append(b, byte(hi<<4|lo))
				s.off += 3
				continue
			}
		}
		b = append(b, c)
		s.off++
	}
	return Name(b), nil
}

func (s *scanner) array() (Array, error) {
	start := s.off
	s.off++
	arr := Array{}
	for {
		s.skip()
		if s.eof() {
			return nil, fmt.Errorf("reader: unterminated array at %d", start)
		}
		if s.buf[s.off] == ']' {
			s.off++
			return arr, nil
		}
		obj, err := s.object()
		if err != nil {
			return nil, err
		}
		arr = append(arr, obj)
	}
}

func (s *scanner) dict() (Dict, error) {
	start := s.off
	s.off += 2
	d := Dict{}
	for {
		s.skip()
		if s.eof() {
			return nil, fmt.Errorf("reader: unterminated dictionary at %d", start)
		}
		if bytes.HasPrefix(s.buf[s.off:], []byte(">>")) {
			s.off += 2
			return d, nil
		}
		key, err := s.name()
		if err != nil {
			return nil, err
		}
		val, err := s.object()
		if err != nil {
			return nil, fmt.Errorf("reader: value of /%s: %w", key, err)
		}
		d[key] = val
	}
}

// indirect parses "N G obj <object> [stream ... endstream] endobj".
func (s *scanner) indirect() (*IndirectObject, error) {
	num, err := s.integer()
	if err != nil {
		return nil, err
	}
	gen, err := s.integer()
	if err != nil {
		return nil, err
	}
	if !s.keyword("obj") {
		return nil, fmt.Errorf("reader: object %d %d: missing obj keyword", num, gen)
	}
	val, err := s.object()
	if err != nil {
		return nil, fmt.Errorf("reader: object %d %d: %w", num, gen, err)
	}
	if s.keyword("stream") {
		d, ok := val.(Dict)
		if !ok {
			return nil, fmt.Errorf("reader: object %d %d: stream without a dictionary", num, gen)
		}
		data, err := s.streamData(d)
		if err != nil {
			return nil, fmt.Errorf("reader: object %d %d: %w", num, gen, err)
		}
		val = Stream{Dict: d, Data: data}
	}
	s.keyword("endobj")
	return &IndirectObject{Reference: Reference{Number: int(num), Generation: int(gen)}, Value: val}, nil
}

// streamData returns a copy of the bytes following the stream keyword. A
// /Length that is indirect, missing or not followed by endstream is
// replaced by a search for endstream.
func (s *scanner) streamData(d Dict) ([]byte, error) {
	if s.off < len(s.buf) && s.buf[s.off] == '\r' {
		s.off++
	}
	if s.off < len(s.buf) && s.buf[s.off] == '\n' {
		s.off++
	}
	rest := s.buf[s.off:]
	if n, ok := d.GetInt("Length"); ok && n >= 0 && int(n) <= len(rest) {
		save := s.off
		s.off += int(n)
		if s.keyword("endstream") {
			return bytes.Clone(rest[:n]), nil
		}
		s.off = save
	}
	end := bytes.Index(rest, []byte("endstream"))
	if end < 0 {
		return nil, fmt.Errorf("stream has no endstream")
	}
	s.off += end
	s.keyword("endstream")
	return bytes.Clone(bytes.TrimRight(rest[:end], "\r\n")), nil
}

// literal decodes the literal string opening at buf[pos] and returns its
// bytes and the offset after the closing parenthesis.
func literal(buf []byte, pos int) ([]byte, int, error) {
	var out []byte
	depth := 0
	for i := pos; i < len(buf); i++ {
		c := buf[i]
		switch c {
		case '(':
			depth++
			if depth == 1 {
				continue
			}
		case ')':
			depth--
			if depth == 0 {
				return out, i + 1, nil
			}
		case '\\':
			i++
			if i == len(buf) {
				return nil, i, fmt.Errorf("reader: unterminated string at %d", pos)
			}
			switch c = buf[i]; c {
			case 'n':
				c = '\n'
			case 'r':
				c = '\r'
			case 't':
				c = '\t'
			case 'b':
				c = '\b'
			case 'f':
				c = '\f'
			case '\r':
				if i+1 < len(buf) && buf[i+1] == '\n' {
					i++
				}
				continue
			case '\n':
				continue
			default:
				if c >= '0' && c <= '7' {
					v := int(c - '0')
					for k := 0; k < 2 && i+1 < len(buf) && buf[i+1] >= '0' && buf[i+1] <= '7'; k++ {
						i++
						v = v*8 + int(buf[i]-'0')
					}
					c = byte(v)
				}
			}
		}
		out = append(out, c)
	}
	return nil, len(buf), fmt.Errorf("reader: unterminated string at %d", pos)
}

// hexString decodes the <...> string opening at buf[pos]. An odd final
// digit is padded with zero. Bytes that are not hex digits are an error
// when strict is set and ignored otherwise.
func hexString(buf []byte, pos int, strict bool) ([]byte, int, error) {
	var out []byte
	hi := -1
	for i := pos + 1; i < len(buf); i++ {
		c := buf[i]
		if c == '>' {
			if hi >= 0 {
				out = append(out, byte(hi<<4))
			}
			return out, i + 1, nil
		}
		v := unhex(c)
		switch {
		case v < 0 && strict && class[c] != space:
			return nil, i, fmt.Errorf("reader: invalid hex digit %q at %d", c, i)
		case v < 0:
		case hi < 0:
			hi = v
		default:
			out = append(out, byte(hi<<4|v))
			hi = -1
		}
	}
	return nil, len(buf), fmt.Errorf("reader: unterminated hex string at %d", pos)
}

// unhex returns the value of a hex digit, or -1.
func unhex(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
