package layout

import (
	"fmt"
	"math"

	"github.com/lvillar/dqfile/canvas"
)

// Table geometry.
const (
	HeaderHeight = 14.0
	RowHeight    = 16.0
)

// widthTolerance absorbs float rounding in column arithmetic.
const widthTolerance = 0.01

// Column is one table column: its header caption and width in points.
type Column struct {
	Header string
	Width  float64
}

// Columns is an ordered column set. The header and every row of a table
// are drawn from the same Columns value so their offsets agree.
type Columns []Column

// Total returns the sum of the column widths.
func (cs Columns) Total() float64 {
	var t float64
	for _, c := range cs {
		t += c.Width
	}
	return t
}

// Check reports ErrWidthMismatch unless the widths span the content width.
func (cs Columns) Check() error {
	if math.Abs(cs.Total()-ContentWidth) > widthTolerance {
		return fmt.Errorf("%w: columns total %.2fpt, content width is %.2fpt", ErrWidthMismatch, cs.Total(), ContentWidth)
	}
	return nil
}

// Offsets returns the x position of each column.
func (cs Columns) Offsets() []float64 {
	out := make([]float64, len(cs))
	x := Left
	for i, c := range cs {
		out[i] = x
		x += c.Width
	}
	return out
}

// Proportional builds columns from relative weights, scaled to the content
// width. The last column absorbs the rounding remainder.
func Proportional(headers []string, weights []float64) Columns {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	cols := make(Columns, len(headers))
	used := 0.0
	for i, h := range headers {
		w := 0.0
		if i < len(weights) && sum > 0 {
			w = math.Round(ContentWidth*weights[i]/sum*100) / 100
		}
		if i == len(headers)-1 {
			w = ContentWidth - used
		}
		cols[i] = Column{Header: h, Width: w}
		used += w
	}
	return cols
}

// TableHeader draws the shaded header band with the column captions.
func TableHeader(p *canvas.Page, cols Columns, cur Cursor) Cursor {
	if err := cols.Check(); err != nil {
		p.Document().SetError(err)
		return cur.Down(HeaderHeight)
	}
	y := cur.Y() - HeaderHeight
	p.FillRect(Left, y, cols.Total(), HeaderHeight, canvas.LightGray)
	st := canvas.TextStyle{Size: LabelSize, Bold: true, Color: canvas.Navy}
	for i, x := range cols.Offsets() {
		p.Text(x+3, y+4.5, cols[i].Header, st)
	}
	next := cur.Down(HeaderHeight)
	reached(p, next.Y())
	return next
}

// TableRow draws one row of fillable fields at the header's offsets.
// values may be shorter than names; missing values are left blank.
func TableRow(p *canvas.Page, cols Columns, names, values []string, cur Cursor) Cursor {
	if err := cols.Check(); err != nil {
		p.Document().SetError(err)
		return cur.Down(RowHeight)
	}
	if len(names) != len(cols) {
		p.Document().SetError(fmt.Errorf("%w: %d fields for %d columns", ErrColumnCount, len(names), len(cols)))
		return cur.Down(RowHeight)
	}
	y := cur.Y() - RowHeight
	for i, x := range cols.Offsets() {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		p.TextField(names[i], x, y, cols[i].Width, RowHeight, v)
	}
	next := cur.Down(RowHeight)
	reached(p, next.Y())
	return next
}

// LabeledRow draws a table row whose first column holds a check box and a
// printed caption instead of a text field. names and values cover the
// remaining columns.
func LabeledRow(p *canvas.Page, cols Columns, check CheckItem, names, values []string, cur Cursor) Cursor {
	if err := cols.Check(); err != nil {
		p.Document().SetError(err)
		return cur.Down(RowHeight)
	}
	if len(names) != len(cols)-1 {
		p.Document().SetError(fmt.Errorf("%w: %d fields for %d columns after the caption", ErrColumnCount, len(names), len(cols)-1))
		return cur.Down(RowHeight)
	}
	y := cur.Y() - RowHeight
	offsets := cols.Offsets()
	p.StrokeRect(offsets[0], y, cols[0].Width, RowHeight, 0.5, canvas.FieldLine)
	drawCheckbox(p, check.Name, check.Checked, check.Label, offsets[0]+3, cur.Down(3), false)
	for i, name := range names {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		p.TextField(name, offsets[i+1], y, cols[i+1].Width, RowHeight, v)
	}
	next := cur.Down(RowHeight)
	reached(p, next.Y())
	return next
}
