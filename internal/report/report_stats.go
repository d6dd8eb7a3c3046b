package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/attendance"
	"github.com/code-hero23/peopledesk-sub002/internal/request"
	"github.com/code-hero23/peopledesk-sub002/internal/timewindow"
	"github.com/code-hero23/peopledesk-sub002/internal/worklog"
)

const (
	// ExpectedDailyMinutes: 8 jam 40 menit kerja bersih per hari hadir.
	ExpectedDailyMinutes = 520
	// PunctualityTarget adalah jam acuan keterlambatan.
	PunctualityTarget = "10:20 AM"

	trendLayout = "02 Jan"
)

// Activity adalah data mentah satu karyawan dalam satu rentang.
type Activity struct {
	Attendance []attendance.Record
	WorkLogs   []worklog.WorkLog
	Requests   []request.Request
}

type DailyTrend struct {
	Date       string `json:"date"`
	Efficiency int    `json:"efficiency"`
}

// Stats adalah ringkasan kinerja; persentase dibulatkan ke integer terdekat.
type Stats struct {
	DaysPresent        int
	DaysWithLogs       int
	LogsSubmitted      int
	NetMinutes         int
	Consistency        int
	Efficiency         int
	AvgLateness        int
	LimitExceededFlags int
	DailyTrends        []DailyTrend
}

// Compute menghitung statistik dari Activity. targetMinutes adalah jam acuan
// dalam menit sejak tengah malam (zona waktu loc).
func Compute(a Activity, targetMinutes int, loc *time.Location) Stats {
	if loc == nil {
		loc = time.UTC
	}

	st := Stats{
		DaysPresent:   len(a.Attendance),
		LogsSubmitted: len(a.WorkLogs),
		DailyTrends:   make([]DailyTrend, 0, len(a.Attendance)),
	}

	logDays := make(map[string]struct{}, len(a.WorkLogs))
	for _, w := range a.WorkLogs {
		logDays[w.LogDate.Format(dateLayout)] = struct{}{}
	}
	st.DaysWithLogs = len(logDays)

	records := append([]attendance.Record(nil), a.Attendance...)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].AttendanceDate.Before(records[j].AttendanceDate)
	})

	lateness := 0
	for _, r := range records {
		lateness += timewindow.MinutesOfDay(r.CheckIn, loc) - targetMinutes
		net := r.WorkedMinutes()
		st.NetMinutes += net
		st.DailyTrends = append(st.DailyTrends, DailyTrend{
			Date:       r.AttendanceDate.Format(trendLayout),
			Efficiency: percent(net, ExpectedDailyMinutes),
		})
	}
	if st.DaysPresent > 0 {
		st.AvgLateness = int(math.Round(float64(lateness) / float64(st.DaysPresent)))
	}

	st.Consistency = percent(st.DaysWithLogs, st.DaysPresent)
	st.Efficiency = percent(st.NetMinutes, st.DaysPresent*ExpectedDailyMinutes)

	for _, r := range a.Requests {
		if r.IsExceededLimit && (r.Kind == request.KindLeave || r.Kind == request.KindPermission) {
			st.LimitExceededFlags++
		}
	}
	return st
}

// Capped dipakai tampilan tim: persentase maksimal 100 dan datang lebih awal
// tidak dihitung sebagai nilai negatif.
func (s Stats) Capped() Stats {
	s.Consistency = min(s.Consistency, 100)
	s.Efficiency = min(s.Efficiency, 100)
	s.AvgLateness = max(s.AvgLateness, 0)
	return s
}

// TotalHours dibulatkan satu desimal.
func (s Stats) TotalHours() float64 {
	return math.Round(float64(s.NetMinutes)/6) / 10
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// FormatMinutes menulis durasi sebagai "Xh Ym"; nol atau negatif menjadi "0m".
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h, m := minutes/60, minutes%60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
