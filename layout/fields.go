package layout

import (
	"fmt"

	"github.com/lvillar/dqfile/canvas"
)

// Field geometry.
const (
	FieldHeight = 14.0
	BoxSize     = 9.0
	fieldGap    = 6.0
	labelGap    = 2.0
)

// FieldRowHeight is the vertical space one labeled field row occupies.
const FieldRowHeight = LabelSize + labelGap + FieldHeight + 6

// Field draws a caption above a fillable text field of width w at x.
func Field(p *canvas.Page, label, name, value string, x, w float64, cur Cursor) Cursor {
	y := cur.Y()
	p.Text(x, y-LabelSize, label, labelStyle)
	p.TextField(name, x, y-LabelSize-labelGap-FieldHeight, w, FieldHeight, value)
	next := cur.Down(FieldRowHeight)
	reached(p, next.Y())
	return next
}

// FieldSpec describes one field of a FieldRow. A zero Width shares the
// space left over by the fixed-width fields equally.
type FieldSpec struct {
	Label string
	Name  string
	Value string
	Width float64
}

// FieldRow lays labeled fields side by side across the content width.
func FieldRow(p *canvas.Page, cur Cursor, specs ...FieldSpec) Cursor {
	if len(specs) == 0 {
		return cur.Down(minStep)
	}
	fixed, flexible := 0.0, 0
	for _, s := range specs {
		if s.Width > 0 {
			fixed += s.Width
		} else {
			flexible++
		}
	}
	free := ContentWidth - fixed - fieldGap*float64(len(specs)-1)
	if free < 0 || (flexible > 0 && free <= 0) {
		p.Document().SetError(fmt.Errorf("%w: %.1fpt of fixed fields", ErrRowTooWide, fixed))
		return cur.Down(FieldRowHeight)
	}

	x := Left
	for _, s := range specs {
		w := s.Width
		if w <= 0 {
			w = free / float64(flexible)
		}
		Field(p, s.Label, s.Name, s.Value, x, w, cur)
		x += w + fieldGap
	}
	next := cur.Down(FieldRowHeight)
	reached(p, next.Y())
	return next
}

// Checkbox draws a check box with its label beside it, label first when
// labelLeft is set. It returns the cursor below the row.
func Checkbox(p *canvas.Page, name string, checked bool, label string, x float64, cur Cursor, labelLeft bool) Cursor {
	drawCheckbox(p, name, checked, label, x, cur, labelLeft)
	next := cur.Down(BoxSize + 5)
	reached(p, next.Y())
	return next
}

// CheckboxWidth returns the horizontal extent of a check box and its label.
func CheckboxWidth(p *canvas.Page, label string) float64 {
	if label == "" {
		return BoxSize
	}
	return BoxSize + 4 + p.Document().Measure(label, false, SmallSize)
}

func drawCheckbox(p *canvas.Page, name string, checked bool, label string, x float64, cur Cursor, labelLeft bool) {
	st := canvas.TextStyle{Size: SmallSize}
	top := cur.Y()
	boxX := x
	if labelLeft && label != "" {
		p.Text(x, top-8, label, st)
		boxX = x + p.Document().Measure(label, false, SmallSize) + 4
	} else if label != "" {
		p.Text(x+BoxSize+4, top-8, label, st)
	}
	p.Checkbox(name, boxX, top-BoxSize-1, BoxSize, checked)
}

// CheckItem is one box of a CheckboxRow.
type CheckItem struct {
	Name    string
	Label   string
	Checked bool
}

// CheckboxRow draws boxes left to right starting at x, wrapping onto a new
// line when the content width is exhausted.
func CheckboxRow(p *canvas.Page, x float64, cur Cursor, items ...CheckItem) Cursor {
	line := cur
	cx := x
	for _, it := range items {
		w := CheckboxWidth(p, it.Label)
		if cx > x && cx+w > Right {
			line = line.Down(BoxSize + 5)
			cx = x
		}
		drawCheckbox(p, it.Name, it.Checked, it.Label, cx, line, false)
		cx += w + 14
	}
	next := line.Down(BoxSize + 5)
	reached(p, next.Y())
	return next
}

// YesNo draws a question with a Yes box named prefix_yes and a No box named
// prefix_no at the right margin. Making the pair exclusive is up to the
// person filling the form.
func YesNo(p *canvas.Page, prefix, question string, yes, no bool, cur Cursor) Cursor {
	boxesX := Right - 70
	after := Instructions(p, question, Left, cur, boxesX-Left-10, BodySize)
	drawCheckbox(p, prefix+"_yes", yes, "Yes", boxesX, cur, false)
	drawCheckbox(p, prefix+"_no", no, "No", boxesX+38, cur, false)
	next := after
	if floor := cur.Down(BoxSize + 5); floor.Below(next) {
		next = floor
	}
	next = next.Down(3)
	reached(p, next.Y())
	return next
}

// SignatureLine draws a signing rule with a caption beneath it and places a
// typed-name signature field on the rule.
func SignatureLine(p *canvas.Page, name, label, value string, x, w float64, cur Cursor) Cursor {
	rule := cur.Y() - 22
	p.SignatureField(name, x, rule, w, 18, value)
	p.Text(x, rule-9, label, labelStyle)
	next := cur.Down(34)
	reached(p, next.Y())
	return next
}

// SignatureDate draws a signature line and a date field side by side.
// Fields are named prefix_signature and prefix_date.
func SignatureDate(p *canvas.Page, prefix, label, signature, date string, cur Cursor) Cursor {
	sigW := ContentWidth * 0.64
	SignatureLine(p, prefix+"_signature", label, signature, Left, sigW, cur)

	dateX := Left + sigW + 18
	dateW := Right - dateX
	rule := cur.Y() - 22
	p.TextField(prefix+"_date", dateX, rule, dateW, 16, date)
	p.Text(dateX, rule-9, "Date", labelStyle)
	next := cur.Down(34)
	reached(p, next.Y())
	return next
}
