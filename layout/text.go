package layout

import (
	"strings"

	"github.com/lvillar/dqfile/canvas"
)

// LineHeight returns the baseline-to-baseline distance for a font size.
func LineHeight(size float64) float64 { return size * 1.3 }

// Wrap breaks text into lines no wider than width using greedy word fill.
// Words are never split, so a single word wider than width occupies a line
// of its own. Newlines in text force a break; blank lines are kept.
func Wrap(measure func(string) float64, text string, width float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, w := range words {
			candidate := w
			if line != "" {
				candidate = line + " " + w
			}
			if line != "" && measure(candidate) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	// drop trailing blank lines produced by a final newline
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Instructions draws wrapped body text starting at x and returns a Cursor
// lowered by one line height per drawn line.
func Instructions(p *canvas.Page, text string, x float64, cur Cursor, width, size float64) Cursor {
	doc := p.Document()
	st := canvas.TextStyle{Size: size, Color: canvas.Black}
	lines := Wrap(func(s string) float64 { return doc.Measure(s, false, size) }, text, width)
	lh := LineHeight(size)
	for i, line := range lines {
		p.Text(x, cur.Y()-size-float64(i)*lh, line, st)
	}
	next := cur.Down(float64(len(lines)) * lh)
	reached(p, next.Y())
	return next
}

// Paragraph draws full-width body text followed by a small gap.
func Paragraph(p *canvas.Page, text string, cur Cursor) Cursor {
	return Instructions(p, text, Left, cur, ContentWidth, BodySize).Down(4)
}

// Fine draws full-width small print followed by a small gap.
func Fine(p *canvas.Page, text string, cur Cursor) Cursor {
	return Instructions(p, text, Left, cur, ContentWidth, SmallSize).Down(3)
}

// Label draws one line of text at x and returns the cursor one line lower.
func Label(p *canvas.Page, text string, x float64, cur Cursor, st canvas.TextStyle) Cursor {
	if st.Size <= 0 {
		st.Size = BodySize
	}
	p.Text(x, cur.Y()-st.Size, text, st)
	next := cur.Down(LineHeight(st.Size))
	reached(p, next.Y())
	return next
}

// Bold draws one line of bold body text at the left margin.
func Bold(p *canvas.Page, text string, cur Cursor) Cursor {
	return Label(p, text, Left, cur, boldStyle)
}
