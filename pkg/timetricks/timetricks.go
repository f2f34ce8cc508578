package timetricks

import (
	"time"
)

const (
	dayFormat   = "20060102"
	clockFormat = "3:04 PM"
	dateFormat  = "Jan 2, 2006"
)

// SameDay reports whether both times fall on the same calendar date, each read
// in its own location.
func SameDay(t time.Time, t2 time.Time) bool {
	return t.Format(dayFormat) == t2.Format(dayFormat)
}

// Clock formats the wall clock of t without a leading zero, e.g. "4:07 PM".
func Clock(t time.Time) string {
	return t.Format(clockFormat)
}

// Date formats the calendar date of t, e.g. "Mar 9, 2024".
func Date(t time.Time) string {
	return t.Format(dateFormat)
}

// Unix truncates a unix timestamp in seconds to a time in UTC. Tide sources
// report seconds, and sub-second precision is never meaningful for them.
func Unix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
