package section

import (
	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/canvas"
	"github.com/lvillar/dqfile/layout"
)

var schoolColumns = layout.Columns{
	{Header: "School Name", Width: 170},
	{Header: "City / State", Width: 110},
	{Header: "From", Width: 60},
	{Header: "To", Width: 60},
	{Header: "Graduated", Width: 50},
	{Header: "Hours", Width: 45},
}

// Training draws education, driver training schools, entry-level driver
// training and other qualifications.
func Training(doc *canvas.Document, in answers.Answers, env Env) ([]*canvas.Page, error) {
	f := filler{in}
	p, cur := start(doc, env, "Education and Training")

	cur = layout.Subheading(p, "Education", cur)
	cur = layout.FieldRow(p, cur,
		f.spec("Highest Grade Completed", "education_highest", 150),
		f.spec("Last School Attended", "education_school", 0),
	)

	cur = layout.Subheading(p, "Truck driver training schools", cur)
	cur = layout.TableHeader(p, schoolColumns, cur)
	for i := 1; i <= answers.Schools; i++ {
		names, values := f.slots("school", i, "name", "location", "from", "to", "graduated", "hours")
		cur = layout.TableRow(p, schoolColumns, names, values, cur)
	}
	cur = cur.Down(10)

	cur = layout.Subheading(p, "Entry-level driver training", cur)
	cur = f.yesNo(p, "eldt_completed", "Have you completed entry-level driver training with a provider listed on the Training Provider Registry (49 CFR Part 380, Subpart F)?", cur)
	cur = layout.FieldRow(p, cur,
		f.spec("Training Provider", "eldt_provider", 0),
		f.spec("TPR Provider ID", "eldt_tpr_id", 110),
		f.spec("Completion Date", "eldt_date", 90),
	)

	cur = layout.Subheading(p, "Other qualifications", cur)
	cur = layout.CheckboxRow(p, layout.Left, cur,
		f.check("train_hazmat", "Hazardous materials training"),
		f.check("train_defensive", "Defensive driving"),
		f.check("train_first_aid", "First aid / CPR"),
		f.check("train_forklift", "Forklift"),
	)
	cur = layout.FieldRow(p, cur, f.spec("Other courses or certificates", "train_other", 0))
	layout.FieldRow(p, cur, f.spec("Military driving experience", "military_experience", 0))
	return done(doc, p)
}
