package payroll

import (
	"strings"

	"github.com/code-hero23/peopledesk-sub002/internal/shared/spreadsheet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ImportResult struct {
	Month    int          `json:"month"`
	Year     int          `json:"year"`
	Imported int          `json:"imported"`
	Skipped  []SkippedRow `json:"skipped"`
}

type SkippedRow struct {
	Row    int    `json:"row"`
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// importColumns: urutan kolom default jika header tidak dikenali.
var importColumns = []string{
	"email",
	"allocatedsalary",
	"absenteeismdeduction",
	"shortagededuction",
	"manualdeductions",
	"netpayout",
}

// parseManualRows membaca baris data (baris pertama header). Baris tanpa "@" di email dilewati.
func parseManualRows(rows [][]string, month, year int) ([]ManualPayroll, []SkippedRow) {
	if len(rows) == 0 {
		return nil, []SkippedRow{}
	}

	cols := make(map[string]int, len(importColumns))
	header := spreadsheet.HeaderIndex(rows[0])
	_, named := header["email"]
	for i, name := range importColumns {
		if named {
			idx, ok := header[name]
			if !ok {
				idx = -1
			}
			cols[name] = idx
			continue
		}
		cols[name] = i
	}

	var out []ManualPayroll
	skipped := []SkippedRow{}
	seen := make(map[string]int)

	for i, row := range rows[1:] {
		rowNum := i + 2
		if blankRow(row) {
			continue
		}

		email := strings.ToLower(spreadsheet.Cell(row, cols["email"]))
		if !strings.Contains(email, "@") {
			skipped = append(skipped, SkippedRow{Row: rowNum, Email: email, Reason: "invalid email"})
			continue
		}

		p := ManualPayroll{
			ID:                   uuid.New(),
			Email:                email,
			Month:                month,
			Year:                 year,
			AllocatedSalary:      amount(row, cols["allocatedsalary"]),
			AbsenteeismDeduction: amount(row, cols["absenteeismdeduction"]),
			ShortageDeduction:    amount(row, cols["shortagededuction"]),
			ManualDeductions:     amount(row, cols["manualdeductions"]),
			NetPayout:            amount(row, cols["netpayout"]),
		}

		// baris terakhir untuk email yang sama menang
		if prev, ok := seen[email]; ok {
			out[prev] = p
			continue
		}
		seen[email] = len(out)
		out = append(out, p)
	}
	return out, skipped
}

// amount mengikuti spreadsheet lama: nilai kosong atau bukan angka dianggap 0.
func amount(row []string, idx int) decimal.Decimal {
	v := strings.ReplaceAll(spreadsheet.Cell(row, idx), ",", "")
	if v == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d.Round(2)
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
