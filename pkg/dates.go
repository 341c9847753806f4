package pkg

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of every day-precision date.
const DateLayout = "2006-01-02"

// Day returns the UTC midnight of the calendar day t falls on (in t's location).
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKey formats the day of t as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return Day(t).Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date [%s] (expected YYYY-MM-DD): %w", s, err)
	}
	return d, nil
}

// ParseDateRange parses optional from/to query values. Empty values give nil.
func ParseDateRange(fromStr, toStr string) (from, to *time.Time, err error) {
	if fromStr != "" {
		f, err := ParseDate(fromStr)
		if err != nil {
			return nil, nil, err
		}
		from = &f
	}
	if toStr != "" {
		t, err := ParseDate(toStr)
		if err != nil {
			return nil, nil, err
		}
		to = &t
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, fmt.Errorf("date range end %s before start %s", toStr, fromStr)
	}
	return from, to, nil
}

// DaysInRange counts the calendar days in [from, to], both ends included.
func DaysInRange(from, to time.Time) int {
	days := int(Day(to).Sub(Day(from)).Hours()/24) + 1
	if days < 0 {
		return 0
	}
	return days
}

// UniqueDays dedupes the days of the given times, keeping first-seen order.
func UniqueDays(times ...time.Time) []time.Time {
	seen := make(map[time.Time]bool, len(times))
	days := make([]time.Time, 0, len(times))
	for _, t := range times {
		if t.IsZero() {
			continue
		}
		d := Day(t)
		if seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	return days
}
