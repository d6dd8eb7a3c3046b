// Package cycle implements the 26th-to-25th pay cycle.
package cycle

import (
	"fmt"
	"math"
	"time"
)

const (
	StartDay = 26
	EndDay   = 25
)

// Cycle (month, year) runs from the 26th of the previous month to the 25th
// of month, both inclusive, in the business time zone.
type Cycle struct {
	Month int
	Year  int
	Start time.Time
	End   time.Time
}

func For(month, year int, loc *time.Location) (Cycle, error) {
	if month < 1 || month > 12 {
		return Cycle{}, fmt.Errorf("cycle: month %d out of range", month)
	}
	if year < 1970 {
		return Cycle{}, fmt.Errorf("cycle: year %d out of range", year)
	}
	if loc == nil {
		loc = time.UTC
	}
	return Cycle{
		Month: month,
		Year:  year,
		Start: time.Date(year, time.Month(month-1), StartDay, 0, 0, 0, 0, loc),
		End:   time.Date(year, time.Month(month), EndDay, 23, 59, 59, int(999*time.Millisecond), loc),
	}, nil
}

// Containing returns the cycle that t falls into.
func Containing(t time.Time, loc *time.Location) Cycle {
	if loc == nil {
		loc = time.UTC
	}
	lt := t.In(loc)
	month, year := int(lt.Month()), lt.Year()
	if lt.Day() >= StartDay {
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	c, _ := For(month, year, loc)
	return c
}

func (c Cycle) Contains(t time.Time) bool {
	return !t.Before(c.Start) && !t.After(c.End)
}

// Days is ceil((end-start)/day).
func (c Cycle) Days() int {
	return int(math.Ceil(c.End.Sub(c.Start).Hours() / 24))
}

// Dates lists every calendar day of the cycle at local midnight.
func (c Cycle) Dates() []time.Time {
	dates := make([]time.Time, 0, 31)
	for d := c.Start; !d.After(c.End); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func (c Cycle) String() string {
	return fmt.Sprintf("%04d-%02d", c.Year, c.Month)
}

// DayBounds returns local midnight and the last millisecond of t's day.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	lt := t.In(loc)
	start := time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
	end := time.Date(lt.Year(), lt.Month(), lt.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
	return start, end
}

// DateOnly keeps t's calendar date (in t's own location) as UTC midnight.
// DATE columns are written and compared in this form.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateRange returns the first and last calendar day of the cycle as DateOnly values.
func (c Cycle) DateRange() (time.Time, time.Time) {
	return DateOnly(c.Start), DateOnly(c.End)
}
