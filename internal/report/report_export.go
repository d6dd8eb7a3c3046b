package report

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/attendance"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/spreadsheet"
	"github.com/code-hero23/peopledesk-sub002/internal/user"
	"github.com/code-hero23/peopledesk-sub002/internal/worklog"
)

const (
	StatusPresent      = "PRESENT"
	StatusActive       = "ACTIVE"
	StatusAbsent       = "ABSENT"
	StatusNotSubmitted = "NOT SUBMITTED"

	clockLayout   = "03:04 PM"
	summarySheet  = "All_Logs_Summary"
	absentMarker  = "-"
	sheetPostfix  = "_Logs"
	summaryHeader = "Designation"
)

var (
	performanceHeaders = []string{
		"Employee", "Email", "Designation", "Days Present", "Days with Logs",
		"Consistency %", "Efficiency %", "Avg Punctuality (min)", "Limit Exceeded Alerts",
	}
	attendanceHeaders = []string{
		"Employee", "Email", "Designation", "Date", "Log In", "Log Out",
		"Net Working Hours", "Total Breaks", "Total Meetings", "Photo Evidence", "Status",
	}
	summaryHeaders = []string{"Employee", "Email", summaryHeader, "Date", "Status", "Entries"}

	// designation dengan sheet sendiri, urut tampil.
	logDesignations = []string{
		worklog.DesignationCRE, worklog.DesignationFA, worklog.DesignationLA, worklog.DesignationAE,
	}
)

func performanceSheet(users []user.User, acts map[string]Activity, target int, loc *time.Location) ([]byte, error) {
	rows := make([][]any, 0, len(users))
	for _, u := range users {
		st := Compute(acts[u.ID.String()], target, loc)
		rows = append(rows, []any{
			u.Name, u.Email, u.Designation, st.DaysPresent, st.DaysWithLogs,
			st.Consistency, st.Efficiency, st.AvgLateness, st.LimitExceededFlags,
		})
	}
	return spreadsheet.Write("Performance", performanceHeaders, rows)
}

// attendanceSheet menulis satu baris per absensi. Jika dates diisi, user tanpa
// absensi di tanggal tersebut ikut ditulis sebagai ABSENT.
func attendanceSheet(
	users []user.User,
	records []attendance.Record,
	dates []time.Time,
	loc *time.Location,
	photoURL func(string) string,
) ([]byte, error) {
	type key struct {
		user string
		date string
	}
	byKey := make(map[key]attendance.Record, len(records))
	for _, r := range records {
		byKey[key{r.UserID.String(), r.AttendanceDate.Format(dateLayout)}] = r
	}

	var rows [][]any
	if len(dates) > 0 {
		for _, d := range dates {
			for _, u := range users {
				r, ok := byKey[key{u.ID.String(), d.Format(dateLayout)}]
				if !ok {
					rows = append(rows, absentRow(u, d))
					continue
				}
				rows = append(rows, attendanceRow(u, r, loc, photoURL))
			}
		}
		return spreadsheet.Write("Attendance", attendanceHeaders, rows)
	}

	known := make(map[string]user.User, len(users))
	for _, u := range users {
		known[u.ID.String()] = u
	}
	sorted := append([]attendance.Record(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].AttendanceDate.Equal(sorted[j].AttendanceDate) {
			return sorted[i].AttendanceDate.After(sorted[j].AttendanceDate)
		}
		return known[sorted[i].UserID.String()].Name < known[sorted[j].UserID.String()].Name
	})
	for _, r := range sorted {
		u, ok := known[r.UserID.String()]
		if !ok {
			continue
		}
		rows = append(rows, attendanceRow(u, r, loc, photoURL))
	}
	return spreadsheet.Write("Attendance", attendanceHeaders, rows)
}

func attendanceRow(u user.User, r attendance.Record, loc *time.Location, photoURL func(string) string) []any {
	personal, official := r.BreakMinutes()
	status := StatusPresent
	logOut := absentMarker
	if r.CheckOut == nil {
		status = StatusActive
	} else {
		logOut = r.CheckOut.In(loc).Format(clockLayout)
	}
	return []any{
		u.Name, u.Email, u.Designation,
		r.AttendanceDate.Format(dateLayout),
		r.CheckIn.In(loc).Format(clockLayout),
		logOut,
		FormatMinutes(r.WorkedMinutes()),
		FormatMinutes(personal),
		FormatMinutes(official),
		photoURL(r.CheckInPhoto),
		status,
	}
}

func absentRow(u user.User, d time.Time) []any {
	return []any{
		u.Name, u.Email, u.Designation, d.Format(dateLayout),
		absentMarker, absentMarker, FormatMinutes(0), FormatMinutes(0), FormatMinutes(0),
		"", StatusAbsent,
	}
}

// workLogSheets menulis sheet ringkasan dan satu sheet per designation. Jika
// dates diisi, user tanpa log di tanggal tersebut ditandai NOT SUBMITTED.
func workLogSheets(users []user.User, logs []worklog.WorkLog, dates []time.Time) ([]byte, error) {
	known := make(map[string]user.User, len(users))
	for _, u := range users {
		known[u.ID.String()] = u
	}

	summary := spreadsheet.Sheet{Name: summarySheet, Headers: summaryHeaders}
	perDesignation := make(map[string]*spreadsheet.Sheet, len(logDesignations))
	for _, d := range logDesignations {
		headers := append([]string{"Employee", "Date"}, worklog.FormFields(d)...)
		perDesignation[d] = &spreadsheet.Sheet{Name: d + sheetPostfix, Headers: headers}
	}

	submitted := make(map[string]struct{}, len(logs))
	for _, w := range logs {
		u, ok := known[w.UserID.String()]
		if !ok {
			continue
		}
		date := w.LogDate.Format(dateLayout)
		submitted[w.UserID.String()+"|"+date] = struct{}{}

		rows, err := worklog.PayloadRows(w.Payload)
		if err != nil {
			rows = nil
		}
		summary.Rows = append(summary.Rows, []any{u.Name, u.Email, w.Designation, date, w.LogStatus, len(rows)})

		sheet, ok := perDesignation[w.Designation]
		if !ok {
			continue
		}
		fields := sheet.Headers[2:]
		for _, row := range rows {
			line := make([]any, 0, len(sheet.Headers))
			line = append(line, u.Name, date)
			for _, f := range fields {
				line = append(line, cellValue(row[f]))
			}
			sheet.Rows = append(sheet.Rows, line)
		}
	}

	for _, d := range dates {
		date := d.Format(dateLayout)
		for _, u := range users {
			if _, ok := submitted[u.ID.String()+"|"+date]; ok {
				continue
			}
			summary.Rows = append(summary.Rows, []any{u.Name, u.Email, u.Designation, date, StatusNotSubmitted, 0})
		}
	}

	sheets := []spreadsheet.Sheet{summary}
	for _, d := range logDesignations {
		sheets = append(sheets, *perDesignation[d])
	}
	return spreadsheet.WriteSheets(sheets...)
}

// cellValue: string JSON ditulis tanpa tanda kutip, selain itu teks mentahnya.
func cellValue(raw json.RawMessage) any {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
