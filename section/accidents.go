package section

import (
	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/canvas"
	"github.com/lvillar/dqfile/layout"
)

var (
	accidentColumns = layout.Columns{
		{Header: "Date", Width: 65},
		{Header: "Nature of Accident", Width: 170},
		{Header: "Location", Width: 110},
		{Header: "Fatalities", Width: 50},
		{Header: "Injuries", Width: 50},
		{Header: "Hazmat Spill", Width: 50},
	}
	violationColumns = layout.Columns{
		{Header: "Date", Width: 65},
		{Header: "Location", Width: 120},
		{Header: "Charge", Width: 180},
		{Header: "Penalty", Width: 130},
	}
)

// Accidents draws the three-year accident record and the traffic
// conviction record.
func Accidents(doc *canvas.Document, in answers.Answers, env Env) ([]*canvas.Page, error) {
	f := filler{in}
	p, cur := start(doc, env, "Accident Record and Traffic Convictions")

	cur = layout.Subheading(p, "Accident record for the past three years", cur)
	cur = layout.CheckboxRow(p, layout.Left, cur, f.check("acc_none", "None"))
	cur = layout.TableHeader(p, accidentColumns, cur)
	for i := 1; i <= answers.Accidents; i++ {
		names, values := f.slots("acc", i, "date", "nature", "location", "fatalities", "injuries", "hazmat")
		cur = layout.TableRow(p, accidentColumns, names, values, cur)
	}
	cur = cur.Down(12)

	cur = layout.Subheading(p, "Traffic convictions and forfeitures for the past three years, other than parking", cur)
	cur = layout.CheckboxRow(p, layout.Left, cur, f.check("viol_none", "None"))
	cur = layout.TableHeader(p, violationColumns, cur)
	for i := 1; i <= answers.Violations; i++ {
		names, values := f.slots("viol", i, "date", "location", "charge", "penalty")
		cur = layout.TableRow(p, violationColumns, names, values, cur)
	}
	cur = cur.Down(12)

	cur = f.yesNo(p, "out_of_service", "Have you been placed out of service or had a driving privilege disqualified in the past three years?", cur)
	cur = layout.FieldRow(p, cur, f.spec("If yes, explain", "out_of_service_explain", 0))
	layout.Fine(p, "Attach a separate sheet if more space is needed. Convictions include forfeiture of bond or collateral.", cur)
	return done(doc, p)
}
