package section

import (
	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/canvas"
	"github.com/lvillar/dqfile/layout"
)

// reviewRows is the number of annual reviews recorded on the review page.
const reviewRows = 3

var (
	reviewColumns = layout.Columns{
		{Header: "Review Date", Width: 80},
		{Header: "MVR Date", Width: 80},
		{Header: "Reviewed By", Width: 150},
		{Header: "Meets Minimum Requirements", Width: 110},
		{Header: "Action Taken", Width: 75},
	}
	certViolationColumns = layout.Columns{
		{Header: "Date of Conviction", Width: 80},
		{Header: "Offense", Width: 165},
		{Header: "Location", Width: 125},
		{Header: "Type of Motor Vehicle Operated", Width: 125},
	}
)

// Review draws the annual driving record review and the driver's annual
// certification of violations.
func Review(doc *canvas.Document, in answers.Answers, env Env) ([]*canvas.Page, error) {
	f := filler{in}
	name := f.applicantName()

	p, cur := start(doc, env, "Annual Review of Driving Record")
	cur = layout.Paragraph(p, "At least once every twelve months the motor carrier reviews the driver's motor vehicle record to determine whether the driver meets the minimum requirements for safe driving or is disqualified (49 CFR 391.25). The review considers any evidence that the driver has violated laws governing the operation of motor vehicles, with attention to accidents, speeding, reckless driving and operating under the influence.", cur)
	cur = layout.FieldRow(p, cur,
		layout.FieldSpec{Label: "Driver Name", Name: "review_driver_name", Value: f.or("review_driver_name", name)},
		layout.FieldSpec{Label: "License Number", Name: "review_license_number", Value: f.or("review_license_number", f.text("lic1_number")), Width: 130},
		layout.FieldSpec{Label: "State", Name: "review_license_state", Value: f.or("review_license_state", f.text("lic1_state")), Width: 45},
	)
	cur = layout.TableHeader(p, reviewColumns, cur)
	for i := 1; i <= reviewRows; i++ {
		names, values := f.slots("review", i, "date", "mvr_date", "reviewer", "meets", "action")
		cur = layout.TableRow(p, reviewColumns, names, values, cur)
	}
	cur = cur.Down(10)
	cur = layout.Subheading(p, "Determination", cur)
	cur = layout.CheckboxRow(p, layout.Left, cur,
		f.check("review_meets_minimum", "Driver meets the minimum requirements for safe driving"),
	)
	cur = layout.CheckboxRow(p, layout.Left, cur,
		f.check("review_disqualified", "Driver is disqualified to drive a commercial motor vehicle under 49 CFR 391.15"),
	)
	cur = layout.FieldRow(p, cur, f.spec("Notes", "review_notes", 0))
	cur = layout.FieldRow(p, cur,
		f.spec("Reviewer Name", "review_reviewer_name", 0),
		f.spec("Title", "review_reviewer_title", 160),
	)
	f.signature(p, "review_reviewer", "Reviewer's Signature", cur)

	cert, cur := start(doc, env, "Driver's Certification of Violations")
	cur = layout.Paragraph(cert, "Each driver furnishes the motor carrier, at least once every twelve months, a list of all convictions for violations of motor vehicle laws or ordinances, other than parking violations, during the preceding twelve months (49 CFR 391.27).", cur)
	cur = layout.FieldRow(cert, cur,
		layout.FieldSpec{Label: "Driver Name", Name: "p11_driver_name", Value: f.or("p11_driver_name", name)},
		layout.FieldSpec{Label: "License Number", Name: "p11_license_number", Value: f.or("p11_license_number", f.text("lic1_number")), Width: 120},
		layout.FieldSpec{Label: "State", Name: "p11_license_state", Value: f.or("p11_license_state", f.text("lic1_state")), Width: 45},
		layout.FieldSpec{Label: "Expiration", Name: "p11_license_expiration", Value: f.or("p11_license_expiration", f.text("lic1_expiration")), Width: 75},
	)
	cur = layout.TableHeader(cert, certViolationColumns, cur)
	for i := 1; i <= answers.ReviewViolations; i++ {
		names, values := f.slots("p11_viol", i, "date", "offense", "location", "vehicle")
		cur = layout.TableRow(cert, certViolationColumns, names, values, cur)
	}
	cur = cur.Down(8)
	cur = layout.CheckboxRow(cert, layout.Left, cur,
		f.check("p11_no_violations", "I have not been convicted of, or forfeited bond for, any violation in the past twelve months"),
	)
	cur = layout.Paragraph(cert, "I certify that the foregoing is a true and complete list of traffic violations, other than parking violations, for which I have been convicted or forfeited bond or collateral during the past twelve months.", cur.Down(6))
	cur = f.signature(cert, "p11_driver", "Driver's Signature", cur.Down(6))
	cur = cur.Down(8)
	cur = layout.FieldRow(cert, cur,
		f.spec("Terminal", "p11_terminal", 0),
		f.spec("Reviewed By", "p11_reviewed_by", 0),
	)
	f.signature(cert, "p11_reviewer", "Reviewer's Signature", cur)
	return done(doc, p, cert)
}
