package kernel

import (
	"fmt"
	"math"
	"strings"
	"time"

	"bakery/internal/pkg/errs"
)

// DefaultBusinessTimeZone is the zone the shop operates in.
const DefaultBusinessTimeZone = "Canada/Eastern"

const (
	calendarDateLayout = "2006-01-02"
	calendarDateHour   = 12
	day                = 24 * time.Hour
)

// IsBeforeIgnoringTime reports whether a falls on an earlier calendar day than b.
//
// b's time of day is replaced with a's before the instants are compared, so only the
// calendar days matter. Each value keeps its own location: a date anchored at noon UTC
// compared with "now" in the business zone compares the UTC calendar day of the former
// with the business-zone calendar day of the latter.
func IsBeforeIgnoringTime(a, b time.Time) bool {
	bAtTimeOfA := time.Date(
		b.Year(), b.Month(), b.Day(),
		a.Hour(), a.Minute(), a.Second(), a.Nanosecond(),
		a.Location(),
	)
	return a.Before(bAtTimeOfA)
}

// IsWithinDaysIgnoringTime reports whether d's calendar day lies in [start, end], both inclusive.
func IsWithinDaysIgnoringTime(d, start, end time.Time) bool {
	return !IsBeforeIgnoringTime(d, start) && !IsBeforeIgnoringTime(end, d)
}

// DaysBetween returns the absolute number of days between a and b, rounded up.
func DaysBetween(a, b time.Time) int {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(float64(diff) / float64(day)))
}

// AtNoonUTC anchors the calendar day of t at 12:00 UTC.
// Dates cross the API and database boundaries this way so that no zone shift moves them to another day.
func AtNoonUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), calendarDateHour, 0, 0, 0, time.UTC)
}

// ParseCalendarDate parses "2006-01-02" or an RFC 3339 timestamp and keeps only its calendar day,
// anchored at noon UTC. A timestamp keeps the day written in its own offset, so
// "2099-01-10T20:00:00-05:00" is January 10. An empty string yields the zero time.
func ParseCalendarDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(calendarDateLayout, value); err == nil {
		return AtNoonUTC(t), nil
	}

	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(
			"date",
			fmt.Errorf("%q is neither YYYY-MM-DD nor RFC 3339", value),
		)
	}
	return AtNoonUTC(t), nil
}

// FormatCalendarDate renders the calendar day of t as "2006-01-02". The zero time renders as "".
func FormatCalendarDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(calendarDateLayout)
}
