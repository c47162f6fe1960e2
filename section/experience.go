package section

import (
	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/canvas"
	"github.com/lvillar/dqfile/layout"
)

var experienceColumns = layout.Columns{
	{Header: "Class of Equipment", Width: 165},
	{Header: "Type of Equipment", Width: 110},
	{Header: "Date From", Width: 70},
	{Header: "Date To", Width: 70},
	{Header: "Approx. No. of Miles", Width: 80},
}

// Experience draws the driving experience table, one row per equipment
// class, and the operating area questions.
func Experience(doc *canvas.Document, in answers.Answers, env Env) ([]*canvas.Page, error) {
	f := filler{in}
	p, cur := start(doc, env, "Driving Experience")

	cur = layout.Paragraph(p, "Check each class of equipment you have operated and give the period and approximate total miles (49 CFR 391.21(b)(6)).", cur)
	cur = layout.TableHeader(p, experienceColumns, cur)
	for _, e := range answers.AllEquipment() {
		names := []string{e.Key("type"), e.Key("from"), e.Key("to"), e.Key("miles")}
		values := make([]string, len(names))
		for i, n := range names {
			values[i] = f.text(n)
		}
		cur = layout.LabeledRow(p, experienceColumns, f.check(e.Key("driven"), e.Label()), names, values, cur)
	}
	cur = cur.Down(10)

	cur = layout.Subheading(p, "Operating area", cur)
	cur = layout.FieldRow(p, cur, f.spec("States operated in during the last five years", "states_operated", 0))
	cur = layout.CheckboxRow(p, layout.Left, cur,
		f.check("area_local", "Local"),
		f.check("area_regional", "Regional"),
		f.check("area_otr", "Over the road"),
		f.check("area_cross_border", "Canada / Mexico"),
	)
	cur = layout.FieldRow(p, cur,
		f.spec("Safe driving awards held", "safe_driving_awards", 0),
		f.spec("Years of CMV experience", "cmv_years", 110),
	)
	layout.FieldRow(p, cur, f.spec("Other experience", "other_experience", 0))
	return done(doc, p)
}
