package reader

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf16"
)

// ExtractText returns the text shown on the page in content-stream order.
// Font encodings and ToUnicode maps are not consulted: strings are read as
// UTF-16BE when they carry a byte order mark or look like two-byte codes,
// and as PDFDocEncoding otherwise.
func (p *Page) ExtractText() (string, error) {
	data, err := p.ContentStream()
	if err != nil {
		return "", err
	}
	return extractText(data), nil
}

// extractText runs the text operators of a content stream. Strings shown
// by Tj, TJ, ' and " inside BT/ET are collected; line moves and the end of
// a text object become a space.
func extractText(content []byte) string {
	var b strings.Builder
	var operands [][]byte
	inText := false
	s := newScanner(content)

scan:
	for s.skip(); !s.eof(); s.skip() {
		c := s.buf[s.off]
		switch {
		case c == '(':
			v, end, err := literal(s.buf, s.off)
			if err != nil {
				break scan
			}
			operands = append(operands, v)
			s.off = end
		case c == '<' && bytes.HasPrefix(s.buf[s.off:], []byte("<<")):
			if _, err := s.object(); err != nil {
				s.off += 2
			}
		case c == '<':
			v, end, err := hexString(s.buf, s.off, false)
			if err != nil {
				break scan
			}
			operands = append(operands, v)
			s.off = end
		case c == '/':
			s.name()
		case class[c] == delim:
			s.off++
		default:
			op := s.word()
			if isNumber(op) {
				continue
			}
			switch op {
			case "BT":
				inText = true
			case "ET":
				inText = false
				b.WriteByte(' ')
			case "Td", "TD", "T*", "Tm":
				if inText {
					b.WriteByte(' ')
				}
			case "Tj", "TJ", "'", `"`:
				if !inText {
					break
				}
				if op == "'" || op == `"` {
					b.WriteByte(' ')
				}
				for _, v := range operands {
					b.WriteString(decodePDFString(v))
				}
			case "ID":
				s.skipInlineImage()
			}
			operands = operands[:0]
		}
	}
	return strings.TrimSpace(b.String())
}

func isNumber(w string) bool {
	_, err := strconv.ParseFloat(w, 64)
	return err == nil
}

// skipInlineImage moves past the binary data of an inline image to the
// EI operator that closes it.
func (s *scanner) skipInlineImage() {
	for i := s.off + 1; i+2 <= len(s.buf); i++ {
		if s.buf[i] == 'E' && s.buf[i+1] == 'I' && isWhitespace(s.buf[i-1]) &&
			(i+2 == len(s.buf) || class[s.buf[i+2]] != regular) {
			s.off = i + 2
			return
		}
	}
	s.off = len(s.buf)
}

// decodePDFString decodes UTF-16BE text, with or without a byte order
// mark, and treats anything else as PDFDocEncoding. Embedded Unicode fonts
// write their show strings as BOM-less UTF-16BE, recognised by the NUL high
// bytes of the code units.
func decodePDFString(data []byte) string {
	if len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF {
		return decodeUTF16BE(data[2:])
	}
	if looksUTF16BE(data) {
		return decodeUTF16BE(data)
	}
	var buf strings.Builder
	for _, c := range data {
		buf.WriteRune(rune(c))
	}
	return buf.String()
}

func looksUTF16BE(data []byte) bool {
	if len(data) < 2 || len(data)%2 != 0 || data[0] != 0 {
		return false
	}
	zeros := 0
	for i := 0; i < len(data); i += 2 {
		if data[i] == 0 {
			zeros++
		}
	}
	return zeros*2 > len(data)/2
}

func decodeUTF16BE(data []byte) string {
	if len(data)%2 != 0 {
		data = append(data, 0)
	}
	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return string(utf16.Decode(units))
}
