package section

import (
	"fmt"

	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/canvas"
	"github.com/lvillar/dqfile/layout"
)

// Employment draws the employment history across two pages of four
// employers each, most recent first.
func Employment(doc *canvas.Document, in answers.Answers, env Env) ([]*canvas.Page, error) {
	f := filler{in}
	pages := make([]*canvas.Page, 0, answers.Employers/answers.EmployersPerPage)
	for first := 1; first <= answers.Employers; first += answers.EmployersPerPage {
		title := "Employment History"
		if first > 1 {
			title += " (continued)"
		}
		p, cur := start(doc, env, title)
		if first == 1 {
			cur = layout.Paragraph(p, "List every employer for the past three years, and every employer you drove a commercial motor vehicle for in the seven years before that (49 CFR 391.21(b)(10) and (11)). Begin with the most recent. Account for any gaps in employment.", cur)
		}
		for i := first; i < first+answers.EmployersPerPage; i++ {
			cur = employer(p, f, i, cur)
		}
		if first+answers.EmployersPerPage > answers.Employers {
			cur = layout.Subheading(p, "Gaps in employment", cur)
			layout.FieldRow(p, cur, f.spec("Explain any period of unemployment longer than 30 days", "employment_gaps", 0))
		}
		pages = append(pages, p)
	}
	return done(doc, pages...)
}

func employer(p *canvas.Page, f filler, i int, cur layout.Cursor) layout.Cursor {
	k := func(field string) string { return answers.Slot("emp", i, field) }
	cur = layout.Bold(p, fmt.Sprintf("Employer %d", i), cur)
	cur = layout.FieldRow(p, cur,
		f.spec("Employer Name", k("name"), 0),
		f.spec("Phone", k("phone"), 95),
		f.spec("From (MM/YY)", k("from"), 60),
		f.spec("To (MM/YY)", k("to"), 60),
	)
	cur = layout.FieldRow(p, cur,
		f.spec("Address", k("address"), 0),
		f.spec("City", k("city"), 100),
		f.spec("State", k("state"), 35),
		f.spec("ZIP", k("zip"), 55),
	)
	cur = layout.FieldRow(p, cur,
		f.spec("Position Held", k("position"), 150),
		f.spec("Reason for Leaving", k("reason"), 0),
	)
	cur = layout.CheckboxRow(p, layout.Left, cur,
		f.check(k("fmcsr"), "Subject to the FMCSRs while employed"),
		f.check(k("dot_testing"), "Safety-sensitive job subject to DOT drug and alcohol testing"),
	)
	return cur.Down(4)
}
