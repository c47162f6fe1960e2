// Package layout holds the drawing primitives every application page is
// built from. Primitives are stateless: each takes a page and a Cursor and
// returns a new Cursor strictly below the one it was given.
//
// Construction problems (a table whose widths do not add up, a duplicate
// field name) are recorded on the page's document and surface from
// canvas.Document.Err.
package layout

import (
	"errors"

	"github.com/lvillar/dqfile/canvas"
)

// Page geometry in points.
const (
	Margin       = 58.5
	ContentWidth = canvas.PageWidth - 2*Margin
	Left         = Margin
	Right        = Margin + ContentWidth
	Top          = canvas.PageHeight - 50
	Bottom       = 50.0
	FooterY      = 28.0
)

// Text sizes.
const (
	BodySize  = 9.0
	LabelSize = 7.0
	SmallSize = 8.0
)

var (
	// ErrWidthMismatch is recorded when table columns do not span the
	// content width.
	ErrWidthMismatch = errors.New("layout: column widths do not match content width")
	// ErrColumnCount is recorded when a table row has a different number of
	// fields than its header has columns.
	ErrColumnCount = errors.New("layout: row field count does not match column count")
	// ErrRowTooWide is recorded when fixed field widths exceed the content width.
	ErrRowTooWide = errors.New("layout: field row wider than content width")
)

// minStep is the smallest distance a Cursor moves.
const minStep = 0.5

// Cursor is the vertical drawing position on a page, in PDF user space.
// It is a value: moving it returns a new Cursor.
type Cursor struct {
	y float64
}

// Start returns a Cursor at the top of the content area.
func Start() Cursor { return Cursor{y: Top} }

// At returns a Cursor at y.
func At(y float64) Cursor { return Cursor{y: y} }

// Y returns the position.
func (c Cursor) Y() float64 { return c.y }

// Down returns a Cursor dy points lower. Moves shorter than minStep,
// including zero and negative ones, advance by minStep.
func (c Cursor) Down(dy float64) Cursor {
	if dy < minStep {
		dy = minStep
	}
	return Cursor{y: c.y - dy}
}

// Below reports whether c is strictly lower on the page than o.
func (c Cursor) Below(o Cursor) bool { return c.y < o.y }

// Company carries the carrier branding drawn at the top of every page.
type Company struct {
	Name      string
	Address   string
	Phone     string
	DOTNumber string
	MCNumber  string
	Logo      []byte // PNG or JPEG, optional
}

var (
	labelStyle = canvas.TextStyle{Size: LabelSize, Color: canvas.Slate}
	bodyStyle  = canvas.TextStyle{Size: BodySize, Color: canvas.Black}
	boldStyle  = canvas.TextStyle{Size: BodySize, Bold: true, Color: canvas.Black}
)

// reached records the lowest point a primitive drew at.
func reached(p *canvas.Page, y float64) {
	p.NoteBottom(y, Bottom)
}
