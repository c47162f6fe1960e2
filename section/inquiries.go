package section

import (
	"fmt"
	"strings"

	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/canvas"
	"github.com/lvillar/dqfile/layout"
)

// inquiryAccidents is the number of accident rows a previous employer can
// report on one inquiry.
const inquiryAccidents = 2

var inquiryAccidentColumns = layout.Columns{
	{Header: "Date", Width: 80},
	{Header: "Location", Width: 165},
	{Header: "No. Injuries", Width: 60},
	{Header: "No. Fatalities", Width: 60},
	{Header: "Hazmat Spill", Width: 130},
}

// Inquiries draws one safety performance history request per previous
// employer. The applicant part is prefilled from the employment history.
func Inquiries(doc *canvas.Document, in answers.Answers, env Env) ([]*canvas.Page, error) {
	f := filler{in}
	pages := make([]*canvas.Page, 0, answers.InquiryLetters)
	for i := 1; i <= answers.InquiryLetters; i++ {
		pages = append(pages, inquiry(doc, f, env, i))
	}
	return done(doc, pages...)
}

func inquiry(doc *canvas.Document, f filler, env Env, i int) *canvas.Page {
	p, cur := start(doc, env, fmt.Sprintf("Safety Performance History Request %d of %d", i, answers.InquiryLetters))
	k := func(field string) string { return answers.Slot("inq", i, field) }
	emp := func(field string) string { return f.text(answers.Slot("emp", i, field)) }
	prefill := func(label, field, fallback string, w float64) layout.FieldSpec {
		return layout.FieldSpec{Label: label, Name: k(field), Value: f.or(k(field), fallback), Width: w}
	}

	cur = layout.Subheading(p, "Part 1. To be completed by the applicant", cur)
	cur = layout.FieldRow(p, cur,
		prefill("Previous Employer", "employer", emp("name"), 0),
		prefill("Phone", "phone", emp("phone"), 100),
		f.spec("Fax / Email", k("contact"), 130),
	)
	cur = layout.FieldRow(p, cur,
		prefill("Address", "address", joinAddress(emp("address"), emp("city"), emp("state"), emp("zip")), 0),
		prefill("Employed From", "from", emp("from"), 70),
		prefill("To", "to", emp("to"), 70),
	)
	cur = layout.Fine(p, "I authorize the employer named above to release the safety performance, accident and drug and alcohol testing information required by 49 CFR 391.23 and 40.25 to the company requesting it below. The applicant may review and rebut this information (49 CFR 391.23(i)).", cur)
	cur = f.signature(p, k("applicant"), "Applicant's Signature", cur.Down(2))

	cur = layout.Subheading(p, "Part 2. To be completed by the previous employer", cur)
	cur = f.yesNo(p, k("employed"), "The applicant named above was employed by us.", cur)
	cur = f.yesNo(p, k("drove_cmv"), "The applicant drove a commercial motor vehicle for us.", cur)
	cur = layout.FieldRow(p, cur, f.spec("Type of vehicle operated", k("vehicle_type"), 0))
	cur = layout.Label(p, "Accidents in the three years before this request (49 CFR 390.5)", layout.Left, cur, canvas.TextStyle{Size: layout.LabelSize, Bold: true})
	cur = layout.TableHeader(p, inquiryAccidentColumns, cur)
	for j := 1; j <= inquiryAccidents; j++ {
		prefix := fmt.Sprintf("inq%d_acc", i)
		names, values := f.slots(prefix, j, "date", "location", "injuries", "fatalities", "hazmat")
		cur = layout.TableRow(p, inquiryAccidentColumns, names, values, cur)
	}
	cur = cur.Down(6)

	cur = layout.Subheading(p, "Part 3. Drug and alcohol history (49 CFR 40.25)", cur)
	cur = f.yesNo(p, k("alcohol_04"), "Did the employee have an alcohol test with a concentration of 0.04 or greater?", cur)
	cur = f.yesNo(p, k("positive_drug"), "Did the employee have a verified positive drug test?", cur)
	cur = f.yesNo(p, k("refused"), "Did the employee refuse to be tested?", cur)
	cur = f.yesNo(p, k("other_violation"), "Did the employee have other violations of DOT drug and alcohol regulations?", cur)
	cur = f.yesNo(p, k("rtd"), "If any of the above, did the employee complete the return-to-duty process?", cur)

	layout.FieldRow(p, cur.Down(2),
		f.spec("Completed By", k("respondent_name"), 0),
		f.spec("Title", k("respondent_title"), 130),
		f.spec("Date", k("respondent_date"), 80),
	)
	return p
}

// joinAddress formats an address line from its parts, skipping blanks.
func joinAddress(street, city, state, zip string) string {
	var parts []string
	for _, s := range []string{street, city, strings.TrimSpace(state + " " + zip)} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
