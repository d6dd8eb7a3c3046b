// Package timewindow evaluates whether a check-in falls inside a permission
// window written as 12-hour clock strings.
package timewindow

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidClock = errors.New(`time must look like "HH:MM AM" or "HH:MM PM"`)

// ParseTimeToMinutes converts "HH:MM AM|PM" to minutes since midnight.
// Hour 12 maps to 0 before the PM offset, so 12:30 AM is 30 and 12:30 PM is 750.
func ParseTimeToMinutes(v string) (int, error) {
	fields := strings.Fields(strings.TrimSpace(v))
	if len(fields) != 2 {
		return 0, ErrInvalidClock
	}
	hh, mm, ok := strings.Cut(fields[0], ":")
	if !ok {
		return 0, ErrInvalidClock
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 1 || hour > 12 {
		return 0, ErrInvalidClock
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || len(mm) != 2 || minute < 0 || minute > 59 {
		return 0, ErrInvalidClock
	}

	if hour == 12 {
		hour = 0
	}
	total := hour*60 + minute
	switch strings.ToUpper(fields[1]) {
	case "AM":
	case "PM":
		total += 720
	default:
		return 0, ErrInvalidClock
	}
	return total, nil
}

// MinutesOfDay is t's local wall clock in minutes since midnight.
func MinutesOfDay(t time.Time, loc *time.Location) int {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Hour()*60 + t.Minute()
}

type Window struct {
	Start string
	End   string
}

// Bounds parses both ends of the window.
func (w Window) Bounds() (int, int, error) {
	start, err := ParseTimeToMinutes(w.Start)
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseTimeToMinutes(w.End)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// Duration is end-start, or zero for windows that never cover anything.
func (w Window) Duration() time.Duration {
	start, end, err := w.Bounds()
	if err != nil || end < start {
		return 0
	}
	return time.Duration(end-start) * time.Minute
}

// Covers reports start <= checkIn <= end, inclusive at both ends. Windows
// crossing midnight (end < start) and unparsable windows never cover.
func (w Window) Covers(checkIn time.Time, loc *time.Location) bool {
	start, end, err := w.Bounds()
	if err != nil || end < start {
		return false
	}
	m := MinutesOfDay(checkIn, loc)
	return start <= m && m <= end
}
