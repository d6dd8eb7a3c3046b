package attendance_test

import (
	"testing"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/attendance"

	"github.com/stretchr/testify/assert"
)

func TestRecord_WorkedMinutes(t *testing.T) {
	in := time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC)
	out := in.Add(9 * time.Hour)

	rec := attendance.Record{
		CheckIn:  in,
		CheckOut: &out,
		Breaks: []attendance.BreakLog{
			{BreakType: attendance.BreakTea, DurationMinutes: 15},
			{BreakType: attendance.BreakLunch, DurationMinutes: 45},
			{BreakType: attendance.BreakClientMeeting, DurationMinutes: 60},
			{BreakType: attendance.BreakOther, DurationMinutes: 5},
		},
	}

	assert.Equal(t, 540-60, rec.WorkedMinutes())
	personal, official := rec.BreakMinutes()
	assert.Equal(t, 60, personal)
	assert.Equal(t, 60, official)

	rec.CheckOut = nil
	assert.Zero(t, rec.WorkedMinutes())
}

func TestIsValidBreakType(t *testing.T) {
	assert.True(t, attendance.IsValidBreakType("BH_MEETING"))
	assert.False(t, attendance.IsValidBreakType("tea"))
}
