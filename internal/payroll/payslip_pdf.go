package payroll

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/code-hero23/peopledesk-sub002/internal/user"
)

// slipLines menyusun isi slip gaji dari ringkasan.
func slipLines(u user.User, sum Summary) []string {
	lines := []string{
		"PeopleDesk Salary Slip",
		fmt.Sprintf("Cycle: %s to %s (%02d/%d)", sum.Cycle.Start, sum.Cycle.End, sum.Cycle.Month, sum.Cycle.Year),
		fmt.Sprintf("Employee: %s <%s>", u.Name, u.Email),
	}
	if u.Designation != "" {
		lines = append(lines, "Designation: "+u.Designation)
	}
	if sum.IsManual {
		lines = append(lines, "Mode: MANUAL")
	}

	if st := sum.Stats; st != nil {
		lines = append(lines,
			"",
			fmt.Sprintf("Present days: %d", st.PresentDays),
			fmt.Sprintf("Absent days: %d", st.AbsentDays),
			fmt.Sprintf("Approved leaves: %d", st.ApprovedLeaves),
			fmt.Sprintf("Approved permissions: %d", st.ApprovedPermissions),
			fmt.Sprintf("Working hours: %s / expected %s", st.ActualWorkingHours.StringFixed(2), st.ExpectedHours.StringFixed(2)),
		)
	}

	if f := sum.Financials; f != nil {
		lines = append(lines,
			"",
			"Allocated salary: "+f.AllocatedSalary.StringFixed(2),
			"Absenteeism deduction: "+f.AbsenteeismDeduction.StringFixed(2),
			"Time shortage deduction: "+f.ShortageDeduction.StringFixed(2),
			"Other deductions: "+f.ManualDeductions.StringFixed(2),
		)
		for _, d := range f.DeductionBreakdown {
			lines = append(lines, fmt.Sprintf("  - %s: %s", d.Label, d.Amount.StringFixed(2)))
		}
		lines = append(lines, "Net payout: "+f.NetPayout.StringFixed(2))
	}
	return lines
}

func buildSalarySlipPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Salary Slip"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n16 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
