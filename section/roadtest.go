package section

import (
	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/canvas"
	"github.com/lvillar/dqfile/layout"
)

// roadTestSkills are the skills 49 CFR 391.31(c) requires the examiner
// to evaluate, keyed by field id.
var roadTestSkills = []layout.CheckItem{
	{Name: "road_pretrip", Label: "Pre-trip inspection"},
	{Name: "road_coupling", Label: "Coupling and uncoupling"},
	{Name: "road_placing", Label: "Placing the vehicle in operation"},
	{Name: "road_controls", Label: "Use of controls and emergency equipment"},
	{Name: "road_traffic", Label: "Operating in traffic and passing"},
	{Name: "road_turning", Label: "Turning"},
	{Name: "road_braking", Label: "Braking and slowing other than by braking"},
	{Name: "road_backing", Label: "Backing and parking"},
}

// RoadTest draws the road test record and certificate.
func RoadTest(doc *canvas.Document, in answers.Answers, env Env) ([]*canvas.Page, error) {
	f := filler{in}
	p, cur := start(doc, env, "Record of Road Test")

	cur = layout.FieldRow(p, cur,
		layout.FieldSpec{Label: "Driver Name", Name: "road_driver_name", Value: f.or("road_driver_name", f.applicantName())},
		layout.FieldSpec{Label: "License Number", Name: "road_license_number", Value: f.or("road_license_number", f.text("lic1_number")), Width: 120},
		layout.FieldSpec{Label: "State", Name: "road_license_state", Value: f.or("road_license_state", f.text("lic1_state")), Width: 45},
		layout.FieldSpec{Label: "Class", Name: "road_license_class", Value: f.or("road_license_class", f.text("lic1_class")), Width: 45},
	)
	cur = layout.FieldRow(p, cur,
		f.spec("Power Unit Type", "road_power_unit", 0),
		f.spec("Trailer Type", "road_trailer", 0),
		f.spec("Bus Type", "road_bus", 0),
	)

	cur = layout.Subheading(p, "Skills evaluated", cur)
	skills := make([]layout.CheckItem, len(roadTestSkills))
	for i, s := range roadTestSkills {
		skills[i] = f.check(s.Name, s.Label)
	}
	for i := 0; i < len(skills); i += 2 {
		cur = layout.CheckboxRow(p, layout.Left, cur, skills[i:min(i+2, len(skills))]...)
	}
	cur = cur.Down(6)

	cur = layout.FieldRow(p, cur,
		f.spec("Miles Driven", "road_miles", 90),
		f.spec("Date of Test", "road_test_date", 90),
		f.spec("Examiner Remarks", "road_remarks", 0),
	)
	cur = layout.CheckboxRow(p, layout.Left, cur,
		f.check("road_pass", "Satisfactory"),
		f.check("road_fail", "Unsatisfactory"),
	)
	cur = cur.Down(6)

	cur = layout.Subheading(p, "Certification of road test", cur)
	cur = layout.Paragraph(p, "This is to certify that the above-named driver was given a road test under my supervision. It is my considered opinion that this driver possesses sufficient driving skill to operate safely the type of commercial motor vehicle listed above (49 CFR 391.31(e)).", cur)
	cur = f.signature(p, "road_examiner", "Examiner's Signature", cur.Down(4))
	cur = layout.FieldRow(p, cur,
		f.spec("Examiner's Printed Name", "road_examiner_name", 0),
		f.spec("Title", "road_examiner_title", 120),
		f.spec("Organization", "road_examiner_org", 150),
	)
	cur = f.signature(p, "road_driver", "Driver's Signature", cur.Down(4))
	layout.Fine(p, "The original certificate is kept in the driver qualification file and a copy is given to the driver.", cur)
	return done(doc, p)
}
