package section

import (
	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/canvas"
	"github.com/lvillar/dqfile/layout"
)

var addressColumns = layout.Columns{
	{Header: "Street", Width: 175},
	{Header: "City", Width: 110},
	{Header: "State", Width: 40},
	{Header: "ZIP", Width: 60},
	{Header: "From", Width: 55},
	{Header: "To", Width: 55},
}

// Applicant draws the applicant's identity, address history and
// eligibility questions.
func Applicant(doc *canvas.Document, in answers.Answers, env Env) ([]*canvas.Page, error) {
	f := filler{in}
	p, cur := start(doc, env, "Applicant Information")

	cur = layout.Paragraph(p, "In compliance with Federal and State equal employment opportunity laws, qualified applicants are considered for all positions without regard to race, color, religion, sex, national origin, age, marital status, or disability.", cur)

	cur = layout.FieldRow(p, cur,
		f.spec("First Name", "first_name", 0),
		f.spec("Middle", "middle_name", 70),
		f.spec("Last Name", "last_name", 0),
	)
	cur = layout.FieldRow(p, cur,
		f.spec("Date of Birth", "date_of_birth", 85),
		f.spec("Social Security No.", "ssn", 105),
		f.spec("Phone", "phone", 105),
		f.spec("Email", "email", 0),
	)
	cur = layout.FieldRow(p, cur,
		f.spec("Position Applied For", "position", 0),
		f.spec("Date of Application", "application_date", 100),
		f.spec("Date Available", "available_date", 100),
	)

	cur = layout.Subheading(p, "Addresses for the past three years, current first", cur)
	cur = layout.TableHeader(p, addressColumns, cur)
	for i := 1; i <= answers.Addresses; i++ {
		names, values := f.slots("addr", i, "street", "city", "state", "zip", "from", "to")
		cur = layout.TableRow(p, addressColumns, names, values, cur)
	}
	cur = cur.Down(8)

	cur = layout.Subheading(p, "Eligibility", cur)
	cur = f.yesNo(p, "work_authorized", "Are you legally authorized to work in the United States?", cur)
	cur = f.yesNo(p, "age_21", "Are you at least 21 years of age?", cur)
	cur = f.yesNo(p, "english_proficient", "Can you read and speak English well enough to converse with the public, understand traffic signs and respond to official inquiries?", cur)
	cur = f.yesNo(p, "worked_here_before", "Have you worked for this company before?", cur)
	cur = layout.FieldRow(p, cur,
		f.spec("If yes, dates and position", "worked_here_dates", 0),
		f.spec("Referred By", "referred_by", 160),
	)

	cur = layout.Subheading(p, "Emergency contact", cur)
	layout.FieldRow(p, cur,
		f.spec("Name", "emergency_name", 0),
		f.spec("Relationship", "emergency_relationship", 110),
		f.spec("Phone", "emergency_phone", 110),
	)
	return done(doc, p)
}
