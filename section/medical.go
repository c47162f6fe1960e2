package section

import (
	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/canvas"
	"github.com/lvillar/dqfile/layout"
)

// variances is the number of variance or exemption rows.
const variances = 3

var varianceColumns = layout.Columns{
	{Header: "Variance or Exemption", Width: 140},
	{Header: "Issued By", Width: 120},
	{Header: "Number", Width: 85},
	{Header: "Issued", Width: 75},
	{Header: "Expires", Width: 75},
}

// Medical draws the medical examiner's certificate record and the
// variance and exemption record.
func Medical(doc *canvas.Document, in answers.Answers, env Env) ([]*canvas.Page, error) {
	f := filler{in}

	p, cur := start(doc, env, "Medical Examiner's Certificate Record")
	cur = layout.Paragraph(p, "A driver may not operate a commercial motor vehicle unless medically certified as physically qualified (49 CFR 391.41). The motor carrier keeps the current medical examiner's certificate, or the CDL driver's medical certification status from the state record, and verifies that the examiner is listed on the National Registry.", cur)
	cur = layout.FieldRow(p, cur,
		layout.FieldSpec{Label: "Driver Name", Name: "med_driver_name", Value: f.or("med_driver_name", f.applicantName())},
		layout.FieldSpec{Label: "License Number", Name: "med_license_number", Value: f.or("med_license_number", f.text("lic1_number")), Width: 130},
	)
	cur = layout.FieldRow(p, cur,
		f.spec("Medical Examiner", "med_examiner_name", 0),
		f.spec("National Registry No.", "med_registry_number", 120),
		f.spec("Examiner Phone", "med_examiner_phone", 100),
	)
	cur = layout.FieldRow(p, cur,
		f.spec("Examination Date", "med_exam_date", 100),
		f.spec("Certificate Expires", "med_expiration", 100),
		f.spec("Certificate Type", "med_certificate_type", 0),
	)

	cur = layout.Subheading(p, "Determination", cur)
	for _, it := range []layout.CheckItem{
		f.check("med_meets_standards", "Meets the standards in 49 CFR 391.41"),
		f.check("med_corrective_lenses", "Qualified only when wearing corrective lenses"),
		f.check("med_hearing_aid", "Qualified only when wearing a hearing aid"),
		f.check("med_waiver", "Accompanied by a waiver or exemption"),
		f.check("med_spe", "Accompanied by a Skill Performance Evaluation certificate"),
		f.check("med_intrastate_only", "Qualified by operation of 49 CFR 391.64, intrastate only"),
	} {
		cur = layout.CheckboxRow(p, layout.Left, cur, it)
	}
	cur = cur.Down(6)

	cur = layout.Subheading(p, "National Registry verification", cur)
	cur = layout.CheckboxRow(p, layout.Left, cur,
		f.check("med_registry_verified", "Examiner verified on the National Registry of Certified Medical Examiners"),
	)
	cur = layout.FieldRow(p, cur,
		f.spec("Verified By", "med_verified_by", 0),
		f.spec("Verification Date", "med_verified_date", 100),
	)
	f.signature(p, "med_driver", "Driver's Signature", cur.Down(6))

	vp, cur := start(doc, env, "Medical Variances and Exemptions")
	cur = layout.Paragraph(vp, "Record every medical variance, exemption or certificate that the driver's medical qualification depends on. Copies of each document are kept with the medical examiner's certificate.", cur)
	cur = layout.TableHeader(vp, varianceColumns, cur)
	for i := 1; i <= variances; i++ {
		names, values := f.slots("var", i, "type", "issuer", "number", "issued", "expires")
		cur = layout.TableRow(vp, varianceColumns, names, values, cur)
	}
	cur = cur.Down(10)
	cur = f.yesNo(vp, "med_insulin", "Does the driver use insulin, with an Insulin-Treated Diabetes Mellitus Assessment Form (MCSA-5870) on file?", cur)
	cur = f.yesNo(vp, "med_vision", "Does the driver hold a vision evaluation report (MCSA-5871) for the alternative vision standard?", cur)
	cur = layout.FieldRow(vp, cur, f.spec("Notes", "med_notes", 0))
	f.signature(vp, "med_reviewer", "Reviewer's Signature", cur.Down(6))
	return done(doc, p, vp)
}
