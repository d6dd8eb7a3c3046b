package report

import "time"

type EmployeeStatsResponse struct {
	UserID             string       `json:"user_id"`
	Name               string       `json:"name"`
	Designation        string       `json:"designation"`
	From               string       `json:"from"`
	To                 string       `json:"to"`
	ConsistencyScore   int          `json:"consistency_score"`
	EfficiencyScore    int          `json:"efficiency_score"`
	AvgLateness        int          `json:"avg_lateness"`
	LimitExceededFlags int          `json:"limit_exceeded_flags"`
	TotalNetTime       string       `json:"total_net_time"`
	TotalDaysPresent   int          `json:"total_days_present"`
	DaysWithLogs       int          `json:"days_with_logs"`
	DailyTrends        []DailyTrend `json:"daily_trends"`
}

type TeamMemberResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Designation   string  `json:"designation"`
	Efficiency    int     `json:"efficiency"`
	Consistency   int     `json:"consistency"`
	DaysPresent   int     `json:"days_present"`
	TotalHours    float64 `json:"total_hours"`
	LogsSubmitted int     `json:"logs_submitted"`
	AvgLateness   int     `json:"avg_lateness"`
}

// Range adalah rentang tanggal inklusif. Zero value berarti cycle gaji berjalan.
type Range struct {
	From time.Time
	To   time.Time
}

// ExportFilter: Date menang atas Month/Year; keduanya kosong berarti cycle berjalan.
type ExportFilter struct {
	Date        *time.Time
	Month       int
	Year        int
	UserID      string
	Designation string
	Search      string
}
