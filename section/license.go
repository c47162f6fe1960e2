package section

import (
	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/canvas"
	"github.com/lvillar/dqfile/layout"
)

var licenseColumns = layout.Columns{
	{Header: "State", Width: 50},
	{Header: "License Number", Width: 130},
	{Header: "Class", Width: 50},
	{Header: "Endorsements", Width: 110},
	{Header: "Expiration", Width: 75},
	{Header: "Restrictions", Width: 80},
}

// License draws every operator license held in the past three years and
// the license history questions.
func License(doc *canvas.Document, in answers.Answers, env Env) ([]*canvas.Page, error) {
	f := filler{in}
	p, cur := start(doc, env, "License Information")

	cur = layout.Paragraph(p, "List each driver's license or permit held in the past three years (49 CFR 391.21(b)(7)). Only one commercial driver's license may be held at a time.", cur)
	cur = layout.TableHeader(p, licenseColumns, cur)
	for i := 1; i <= answers.Licenses; i++ {
		names, values := f.slots("lic", i, "state", "number", "class", "endorsements", "expiration", "restrictions")
		cur = layout.TableRow(p, licenseColumns, names, values, cur)
	}
	cur = layout.Fine(p, "Endorsements: H hazardous materials, N tank vehicle, P passenger, S school bus, T double/triple trailers, X tank and hazardous materials.", cur.Down(4))
	cur = cur.Down(6)

	cur = layout.Subheading(p, "License history", cur)
	cur = f.yesNo(p, "license_denied", "Have you ever been denied a license, permit or privilege to operate a motor vehicle?", cur)
	cur = layout.FieldRow(p, cur, f.spec("If yes, explain", "license_denied_explain", 0))
	cur = f.yesNo(p, "license_suspended", "Has any license, permit or privilege ever been suspended or revoked?", cur)
	cur = layout.FieldRow(p, cur, f.spec("If yes, explain", "license_suspended_explain", 0))

	cur = layout.Subheading(p, "Drug and alcohol testing", cur)
	cur = f.yesNo(p, "dot_test_positive", "In the past three years, have you tested positive for, or refused to take, a pre-employment drug or alcohol test required by DOT?", cur)
	cur = f.yesNo(p, "return_to_duty", "If yes, can you provide documentation that you completed the return-to-duty process?", cur)
	layout.Fine(p, "A positive test or refusal does not automatically disqualify an applicant who has completed the return-to-duty process under 49 CFR Part 40, Subpart O.", cur)
	return done(doc, p)
}
