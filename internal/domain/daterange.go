package domain

import "time"

// TruncateToDay drops the time-of-day component, keeping the location.
// All booking date comparisons happen at day granularity.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Nights returns the number of nights between check-in and check-out,
// both truncated to midnight first.
func Nights(checkIn, checkOut time.Time) int {
	diff := TruncateToDay(checkOut).Sub(TruncateToDay(checkIn))
	return int(diff / (24 * time.Hour))
}

// RangesOverlap reports whether the half-open ranges [s1, e1) and
// [s2, e2) intersect. Strict inequalities: ranges that merely touch
// (e1 == s2) do not overlap.
func RangesOverlap(s1, e1, s2, e2 time.Time) bool {
	s1, e1 = TruncateToDay(s1), TruncateToDay(e1)
	s2, e2 = TruncateToDay(s2), TruncateToDay(e2)
	return s1.Before(e2) && s2.Before(e1)
}
