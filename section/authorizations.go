package section

import (
	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/canvas"
	"github.com/lvillar/dqfile/layout"
)

// disclosure is one stand-alone disclosure page. Field ids on the page
// start with auth_<key>_.
type disclosure struct {
	key   string
	title string
	body  []string
	ack   string
}

var disclosures = []disclosure{
	{
		key:   "fcra",
		title: "Disclosure Regarding Background Investigation",
		body: []string{
			"The company may obtain information about you from a third party consumer reporting agency for employment purposes. You may be the subject of a consumer report which may include information about your character, general reputation, personal characteristics, and mode of living. These reports may contain information regarding your criminal history, motor vehicle records, verification of your education or employment history, or other background checks.",
			"You have the right, upon written request made within a reasonable time, to request whether a consumer report has been run about you and to request a copy of your report. These searches will be conducted by a consumer reporting agency.",
			"A summary of your rights under the Fair Credit Reporting Act is provided with this disclosure.",
		},
		ack: "I acknowledge receipt of this disclosure and of the summary of my FCRA rights",
	},
	{
		key:   "background",
		title: "Authorization of Background Investigation",
		body: []string{
			"I authorize the company and its designated agents to obtain consumer reports and investigative consumer reports about me, including my motor vehicle records, criminal records, employment and education history, for employment purposes now and, if I am hired, throughout my employment.",
			"I authorize all federal, state and local agencies, former employers, schools and other persons to release information about me to the consumer reporting agency. A photocopy or facsimile of this authorization is as valid as the original.",
		},
		ack: "I authorize the background investigation described above",
	},
	{
		key:   "psp",
		title: "Pre-Employment Screening Program Disclosure and Authorization",
		body: []string{
			"In connection with your application for employment with the company, the company may obtain one or more reports regarding your driving and safety inspection history from the Federal Motor Carrier Safety Administration (FMCSA).",
			"When the application for employment is submitted in person, if the prospective employer uses any information it obtains from FMCSA in a decision to not hire you or to make any other adverse employment decision regarding you, the prospective employer will provide you with a copy of the report upon which its decision was based and a written summary of your rights under the Fair Credit Reporting Act before taking any final adverse action.",
			"Neither the prospective employer nor the FMCSA contractor supplying the crash and safety information has the capability to correct any safety data that appears to be incorrect. You may challenge the accuracy of the data by submitting a request to https://dataqs.fmcsa.dot.gov.",
			"I authorize the company to access the FMCSA Pre-Employment Screening Program (PSP) system to seek information regarding my commercial driving safety record and information regarding my safety inspection history.",
		},
		ack: "I have read the disclosure above and authorize the PSP inquiry",
	},
	{
		key:   "clearinghouse",
		title: "Drug and Alcohol Clearinghouse Limited Query Consent",
		body: []string{
			"I hereby provide consent to the company to conduct a limited query of the FMCSA Commercial Driver's License Drug and Alcohol Clearinghouse to determine whether drug or alcohol violation information about me exists in the Clearinghouse.",
			"I am consenting to multiple unlimited queries and for the duration of employment with the company.",
			"I understand that if the limited query conducted by the company indicates that drug or alcohol violation information about me exists in the Clearinghouse, FMCSA will not disclose that information to the company without first obtaining additional specific consent from me.",
			"I further understand that if I refuse to provide consent for the company to conduct a limited query of the Clearinghouse, the company must prohibit me from performing safety-sensitive functions, including driving a commercial motor vehicle, as required by 49 CFR 382.701.",
		},
		ack: "I consent to limited queries of the Clearinghouse as described above",
	},
}

// Authorizations draws the four disclosure and consent pages. Each stands
// alone so it can be signed and retained separately.
func Authorizations(doc *canvas.Document, in answers.Answers, env Env) ([]*canvas.Page, error) {
	f := filler{in}
	pages := make([]*canvas.Page, 0, len(disclosures))
	for _, d := range disclosures {
		pages = append(pages, authorization(doc, f, env, d))
	}
	return done(doc, pages...)
}

func authorization(doc *canvas.Document, f filler, env Env, d disclosure) *canvas.Page {
	p, cur := start(doc, env, d.title)
	k := func(field string) string { return "auth_" + d.key + "_" + field }

	for _, t := range d.body {
		cur = layout.Paragraph(p, t, cur.Down(2))
	}
	cur = cur.Down(10)
	if d.key == "background" {
		cur = layout.FieldRow(p, cur,
			f.spec("Other Names Used", k("other_names"), 0),
			layout.FieldSpec{Label: "Driver's License No.", Name: k("license"), Value: f.or(k("license"), f.text("lic1_number")), Width: 120},
			layout.FieldSpec{Label: "State", Name: k("license_state"), Value: f.or(k("license_state"), f.text("lic1_state")), Width: 45},
		)
	}
	cur = layout.CheckboxRow(p, layout.Left, cur, f.check(k("ack"), d.ack))
	cur = cur.Down(8)
	cur = layout.FieldRow(p, cur,
		layout.FieldSpec{Label: "Printed Name", Name: k("printed_name"), Value: f.or(k("printed_name"), f.applicantName())},
		layout.FieldSpec{Label: "Date of Birth", Name: k("dob"), Value: f.or(k("dob"), f.text("date_of_birth")), Width: 100},
	)
	f.signature(p, "auth_"+d.key, "Applicant's Signature", cur.Down(4))
	return p
}
