package timewindow_test

import (
	"testing"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/timewindow"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeToMinutes(t *testing.T) {
	tests := map[string]int{
		"12:00 AM": 0,
		"12:30 AM": 30,
		"12:00 PM": 720,
		"12:30 PM": 750,
		"09:30 AM": 570,
		"09:30 PM": 1290,
		"11:59 PM": 1439,
		"1:05 pm":  785,
	}
	for in, want := range tests {
		got, err := timewindow.ParseTimeToMinutes(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "09:30", "13:00 PM", "00:10 AM", "09:60 AM", "9:5 AM", "09:30 XM", "nine AM"} {
		_, err := timewindow.ParseTimeToMinutes(bad)
		assert.ErrorIs(t, err, timewindow.ErrInvalidClock, bad)
	}
}

func TestWindow_Covers(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	at := func(h, m int) time.Time { return time.Date(2026, time.February, 10, h, m, 0, 0, loc) }
	w := timewindow.Window{Start: "09:30 AM", End: "11:30 AM"}

	assert.True(t, w.Covers(at(9, 30), loc), "start boundary")
	assert.True(t, w.Covers(at(11, 30), loc), "end boundary")
	assert.True(t, w.Covers(at(10, 15), loc))
	assert.False(t, w.Covers(at(9, 29), loc), "one minute before")
	assert.False(t, w.Covers(at(11, 31), loc), "one minute after")

	// 04:15 UTC is 09:45 IST.
	assert.True(t, w.Covers(time.Date(2026, time.February, 10, 4, 15, 0, 0, time.UTC), loc))
}

func TestWindow_NeverCovers(t *testing.T) {
	loc := time.UTC
	checkIn := time.Date(2026, time.February, 10, 23, 30, 0, 0, loc)

	crossing := timewindow.Window{Start: "11:00 PM", End: "01:00 AM"}
	assert.False(t, crossing.Covers(checkIn, loc))
	assert.Zero(t, crossing.Duration())

	broken := timewindow.Window{Start: "late", End: "11:59 PM"}
	assert.False(t, broken.Covers(checkIn, loc))
}

func TestWindow_Duration(t *testing.T) {
	w := timewindow.Window{Start: "12:30 PM", End: "02:00 PM"}
	assert.Equal(t, 90*time.Minute, w.Duration())
}
