package section

import (
	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/canvas"
	"github.com/lvillar/dqfile/layout"
)

// Hiring draws the carrier's internal hiring record. It is filled in by
// the carrier and never by the applicant.
func Hiring(doc *canvas.Document, in answers.Answers, env Env) ([]*canvas.Page, error) {
	f := filler{in}
	p, cur := start(doc, env, "Internal Hiring Record")
	cur = layout.Fine(p, "For company use only. Do not complete if you are the applicant.", cur)

	cur = layout.FieldRow(p, cur,
		layout.FieldSpec{Label: "Applicant Name", Name: "hire_applicant_name", Value: f.or("hire_applicant_name", f.applicantName())},
		layout.FieldSpec{Label: "Position", Name: "hire_position", Value: f.or("hire_position", f.text("position")), Width: 140},
		f.spec("Terminal", "hire_terminal", 110),
	)

	cur = layout.Subheading(p, "Pre-hire checks completed", cur)
	cur = layout.CheckboxRow(p, layout.Left, cur,
		f.check("hire_mvr_ok", "MVR"),
		f.check("hire_psp_ok", "PSP report"),
		f.check("hire_clearinghouse_ok", "Clearinghouse query"),
		f.check("hire_drug_test_ok", "Drug test"),
		f.check("hire_road_test_ok", "Road test"),
		f.check("hire_medical_ok", "Medical certificate"),
		f.check("hire_references_ok", "Employer inquiries"),
	)
	cur = layout.FieldRow(p, cur,
		f.spec("Drug Test Date", "hire_drug_test_date", 90),
		f.spec("Result", "hire_drug_test_result", 90),
		f.spec("Collection Site", "hire_collection_site", 0),
	)

	cur = layout.Subheading(p, "Decision", cur)
	cur = layout.CheckboxRow(p, layout.Left, cur,
		f.check("hire_decision_hired", "Hired"),
		f.check("hire_decision_rejected", "Not hired"),
		f.check("hire_decision_pending", "Pending"),
	)
	cur = layout.FieldRow(p, cur,
		f.spec("Start Date", "hire_start_date", 90),
		f.spec("Employee ID", "hire_employee_id", 110),
		f.spec("Pay Rate", "hire_pay_rate", 0),
	)
	cur = layout.FieldRow(p, cur, f.spec("Reason if not hired", "hire_rejection_reason", 0))
	cur = layout.FieldRow(p, cur,
		f.spec("Hiring Manager", "hire_manager_name", 0),
		f.spec("Title", "hire_manager_title", 140),
	)
	cur = f.signature(p, "hire_manager", "Hiring Manager's Signature", cur.Down(4))
	if env.ControlNumber != "" {
		layout.Fine(p, "Document control number "+env.ControlNumber, cur.Down(6))
	}
	return done(doc, p)
}
