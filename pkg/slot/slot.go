// Package slot projects a doctor's recurring weekly availability onto
// concrete calendar dates and validates slot time-range strings. It is the
// single projection implementation used by both doctor listing and booking.
package slot

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used everywhere a slot date is
// persisted or exchanged (ISO date, no time-of-day component).
const DateLayout = "2006-01-02"

// TimeLayout is the clock format of a single edge of a time range.
const TimeLayout = "15:04"

var (
	ErrUnknownWeekday   = errors.New("unknown weekday name")
	ErrInvalidTimeRange = errors.New("invalid time range, use HH:MM-HH:MM")
)

// weekdayIndex maps the seven canonical English weekday names (case
// sensitive) to their time.Weekday ordinal, Sunday = 0.
var weekdayIndex = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// IsWeekday reports whether s is one of the seven canonical weekday names.
func IsWeekday(s string) bool {
	_, ok := weekdayIndex[s]
	return ok
}

// NextDate returns the next concrete calendar occurrence of the given
// weekday strictly after ref. When ref itself falls on the target weekday
// the result is exactly seven days out, never ref: same-day slots are
// deliberately not offered.
func NextDate(weekday string, ref time.Time) (time.Time, error) {
	target, ok := weekdayIndex[weekday]
	if !ok {
		return time.Time{}, ErrUnknownWeekday
	}

	delta := int(target) - int(ref.Weekday())
	if delta <= 0 {
		delta += 7
	}

	year, month, day := ref.Date()
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return date.AddDate(0, 0, delta), nil
}

// FormatDate renders a projected date as an ISO calendar date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses an ISO calendar date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseRange validates and splits a slot time-range string of the form
// "HH:MM-HH:MM". The end must be after the start.
func ParseRange(s string) (start, end string, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return "", "", ErrInvalidTimeRange
	}

	startAt, err := time.Parse(TimeLayout, parts[0])
	if err != nil {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidTimeRange, s)
	}
	endAt, err := time.Parse(TimeLayout, parts[1])
	if err != nil {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidTimeRange, s)
	}
	if !endAt.After(startAt) {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidTimeRange, s)
	}

	return parts[0], parts[1], nil
}
