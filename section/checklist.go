package section

import (
	"fmt"

	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/canvas"
	"github.com/lvillar/dqfile/layout"
)

// ChecklistItem is one document a driver qualification file must hold.
type ChecklistItem struct {
	Document   string
	Regulation string
}

// ChecklistItems lists the qualification file documents in page order.
var ChecklistItems = [answers.ChecklistItems]ChecklistItem{
	{"Employment application", "391.21"},
	{"Motor vehicle record inquiry, pre-hire", "391.23(a)(1)"},
	{"Previous employer safety performance history", "391.23(a)(2)"},
	{"Road test certificate or equivalent", "391.31 / 391.33"},
	{"Medical examiner's certificate", "391.43"},
	{"National Registry verification of medical examiner", "391.51(b)(9)"},
	{"Pre-employment drug test result", "382.301"},
	{"Clearinghouse pre-employment full query", "382.701"},
	{"Previous employer drug and alcohol history", "40.25"},
	{"Annual motor vehicle record review", "391.25"},
	{"Annual certification of violations", "391.27"},
	{"Entry-level driver training certificate", "380.509"},
	{"Skill performance evaluation certificate, if any", "391.49"},
	{"Copy of commercial driver's license", "383.23"},
}

var checklistColumns = layout.Columns{
	{Header: "Qualification file document", Width: 300},
	{Header: "49 CFR", Width: 85},
	{Header: "Date completed", Width: 110},
}

// Checklist draws the qualification file checklist with the document
// control number.
func Checklist(doc *canvas.Document, in answers.Answers, env Env) ([]*canvas.Page, error) {
	f := filler{in}
	p, cur := start(doc, env, "Driver Qualification File Checklist")

	cur = layout.FieldRow(p, cur,
		layout.FieldSpec{Label: "Driver Name", Name: "dq_driver_name", Value: f.or("dq_driver_name", f.applicantName())},
		f.spec("Date of Hire", "dq_hire_date", 100),
		f.spec("Employee ID", "dq_employee_id", 100),
	)
	details := ""
	if !env.Issued.IsZero() {
		details = env.Issued.UTC().Format("2006-01-02T15:04Z")
	}
	cur = layout.ControlCode(p, env.ControlNumber, details, cur)
	cur = layout.Fine(p, "Check each document as it is placed in the file and record the date. The file is retained for the duration of employment and three years after.", cur)

	cur = layout.TableHeader(p, checklistColumns, cur)
	offsets := checklistColumns.Offsets()
	for i, item := range ChecklistItems {
		n := i + 1
		y := cur.Y()
		p.StrokeRect(offsets[0], y-layout.RowHeight, checklistColumns[0].Width+checklistColumns[1].Width, layout.RowHeight, 0.5, canvas.FieldLine)
		box := fmt.Sprintf("dq_item%d_done", n)
		layout.Checkbox(p, box, f.on(box), fmt.Sprintf("%d. %s", n, item.Document), offsets[0]+3, cur.Down(3), false)
		p.Text(offsets[1]+3, y-11, item.Regulation, canvas.TextStyle{Size: layout.SmallSize, Color: canvas.Slate})
		date := fmt.Sprintf("dq_item%d_date", n)
		p.TextField(date, offsets[2], y-layout.RowHeight, checklistColumns[2].Width, layout.RowHeight, f.text(date))
		cur = cur.Down(layout.RowHeight)
	}

	cur = cur.Down(10)
	cur = layout.FieldRow(p, cur,
		f.spec("File Reviewed By", "dq_reviewed_by", 0),
		f.spec("Title", "dq_reviewer_title", 140),
		f.spec("Review Date", "dq_review_date", 100),
	)
	layout.Fine(p, "Records under 49 CFR Part 40 and Part 382 are kept in a separate confidential file and are listed here only by date.", cur)
	return done(doc, p)
}
