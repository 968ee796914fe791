package services

import (
	"math"
	"time"
)

const isoDateLayout = "2006-01-02"

// DateAtLocation truncates a timestamp to midnight in the given location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	return time.Date(localized.Year(), localized.Month(), localized.Day(), 0, 0, 0, 0, location)
}

// DayRange returns the half-open [start, end) interval covering the calendar
// day that contains value.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// ParseISODate parses a yyyy-MM-dd wire date in the given location.
func ParseISODate(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	return time.ParseInLocation(isoDateLayout, raw, location)
}

func FormatISODate(value time.Time) string {
	return value.Format(isoDateLayout)
}

// DaysBetween counts calendar days from earlier to later midnights. The hour
// quotient is rounded, not truncated: a DST transition makes one day 23 or 25
// hours long, and it still counts as exactly one day.
func DaysBetween(earlier time.Time, later time.Time, location *time.Location) int {
	from := DateAtLocation(earlier, location)
	to := DateAtLocation(later, location)
	return int(math.Round(to.Sub(from).Hours() / 24))
}
