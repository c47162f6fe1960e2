package section

import (
	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/canvas"
	"github.com/lvillar/dqfile/layout"
)

// CertificationStatement is the applicant's signed statement required by
// 49 CFR 391.21(b)(12).
const CertificationStatement = "This certifies that this application was completed by me, and that all entries on it and information in it are true and complete to the best of my knowledge."

var certificationTerms = []string{
	"I authorize you to make such investigations and inquiries of my personal, employment, financial or medical history and other related matters as may be necessary in arriving at an employment decision. I release employers, schools and persons from all liability in responding to inquiries in connection with this application.",
	"I understand that false or misleading information given in this application or during interviews may result in discharge. I understand that I am required to abide by all rules and regulations of the company and of the Federal Motor Carrier Safety Regulations.",
	"I understand that this application does not create a contract of employment, and that any employment offered is subject to a satisfactory pre-employment drug test, motor vehicle record review, road test and medical examination.",
}

// Certification draws the applicant's certification and signature.
func Certification(doc *canvas.Document, in answers.Answers, env Env) ([]*canvas.Page, error) {
	f := filler{in}
	p, cur := start(doc, env, "Applicant Certification")

	cur = layout.Subheading(p, "To be read and signed by the applicant", cur)
	cur = layout.Paragraph(p, CertificationStatement, cur)
	for _, t := range certificationTerms {
		cur = layout.Paragraph(p, t, cur.Down(4))
	}
	cur = cur.Down(14)

	cur = layout.FieldRow(p, cur,
		layout.FieldSpec{Label: "Applicant's Printed Name", Name: "applicant_cert_printed_name", Value: f.or("applicant_cert_printed_name", f.applicantName())},
		f.spec("Social Security No.", "applicant_cert_ssn", 120),
	)
	cur = f.signature(p, "applicant_cert", "Applicant's Signature", cur.Down(6))
	cur = cur.Down(18)

	cur = layout.Subheading(p, "Received by the motor carrier", cur)
	cur = layout.FieldRow(p, cur,
		f.spec("Received By", "applicant_cert_received_by", 0),
		f.spec("Title", "applicant_cert_received_title", 140),
		f.spec("Date Received", "applicant_cert_received_date", 100),
	)
	layout.Fine(p, "The motor carrier retains this application in the driver qualification file (49 CFR 391.51(b)(1)).", cur)
	return done(doc, p)
}
