package layout

import (
	"fmt"
	"strings"

	"github.com/lvillar/dqfile/canvas"
)

const (
	bannerHeight  = 30.0
	sectionHeight = 18.0
)

// CompanyHeader draws the carrier banner: a filled band with the logo and
// company name, and the address and authority numbers underneath.
func CompanyHeader(p *canvas.Page, c Company, cur Cursor) Cursor {
	y := cur.Y() - bannerHeight
	p.FillRect(Left, y, ContentWidth, bannerHeight, canvas.Navy)

	nameX := Left + 10
	if len(c.Logo) > 0 {
		p.Image("company-logo", c.Logo, Left+4, y+3, bannerHeight-6, bannerHeight-6)
		nameX = Left + bannerHeight + 4
	}
	p.Text(nameX, y+10, c.Name, canvas.TextStyle{Size: 14, Bold: true, Color: canvas.White})

	var ids []string
	if c.DOTNumber != "" {
		ids = append(ids, "USDOT "+c.DOTNumber)
	}
	if c.MCNumber != "" {
		ids = append(ids, "MC "+c.MCNumber)
	}
	if len(ids) > 0 {
		s := strings.Join(ids, "   ")
		st := canvas.TextStyle{Size: SmallSize, Color: canvas.White}
		p.Text(Right-10-p.Document().Measure(s, false, SmallSize), y+11, s, st)
	}

	var contact []string
	for _, s := range []string{c.Address, c.Phone} {
		if s != "" {
			contact = append(contact, s)
		}
	}
	p.Text(Left, y-10, strings.Join(contact, "  |  "), canvas.TextStyle{Size: SmallSize, Color: canvas.Slate})

	next := cur.Down(bannerHeight + 20)
	reached(p, next.Y())
	return next
}

// SectionHeader draws a filled title band across the content width.
func SectionHeader(p *canvas.Page, title string, cur Cursor) Cursor {
	y := cur.Y() - sectionHeight
	p.FillRect(Left, y, ContentWidth, sectionHeight, canvas.Navy)
	p.Text(Left+6, y+5.5, title, canvas.TextStyle{Size: 10, Bold: true, Color: canvas.White})
	next := cur.Down(sectionHeight + 8)
	reached(p, next.Y())
	return next
}

// Subheading draws a bold caption with a thin rule under it.
func Subheading(p *canvas.Page, title string, cur Cursor) Cursor {
	y := cur.Y()
	p.Text(Left, y-BodySize, title, canvas.TextStyle{Size: BodySize, Bold: true, Color: canvas.Navy})
	p.Line(Left, y-BodySize-3, Right, y-BodySize-3, 0.5, canvas.Navy)
	next := cur.Down(BodySize + 9)
	reached(p, next.Y())
	return next
}

// Rule draws a hairline across the content width.
func Rule(p *canvas.Page, cur Cursor) Cursor {
	y := cur.Y() - 4
	p.Line(Left, y, Right, y, 0.5, canvas.FieldLine)
	next := cur.Down(8)
	reached(p, next.Y())
	return next
}

// PageLabel returns the footer text for page i of n.
func PageLabel(i, n int) string {
	return fmt.Sprintf("Page %d of %d", i, n)
}

// PageNumber stamps "Page i of N" at the right of the footer.
func PageNumber(p *canvas.Page, i, n int) {
	s := PageLabel(i, n)
	st := canvas.TextStyle{Size: SmallSize, Color: canvas.Slate}
	p.Text(Right-p.Document().Measure(s, false, SmallSize), FooterY, s, st)
}

// FooterNote draws text at the left of the footer.
func FooterNote(p *canvas.Page, text string) {
	p.Text(Left, FooterY, text, canvas.TextStyle{Size: SmallSize, Color: canvas.Slate})
}

// ControlCode prints the document control number with a Code128 symbol
// and a PDF417 symbol that carries the number and its issue details.
func ControlCode(p *canvas.Page, code, details string, cur Cursor) Cursor {
	y := cur.Y()
	p.Text(Left, y-BodySize, "Document control number", labelStyle)
	p.Text(Left, y-BodySize-12, code, boldStyle)
	p.Barcode(canvas.Code128, code, Left+190, y-30, 150, 28)
	payload := code
	if details != "" {
		payload += "|" + details
	}
	p.Barcode(canvas.PDF417, payload, Right-130, y-36, 130, 34)
	next := cur.Down(44)
	reached(p, next.Y())
	return next
}
