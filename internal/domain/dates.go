package domain

import "time"

// ─── Calendar Helpers ───────────────────────────────────────────────────────
// Streak and day-boundary logic compares calendar dates, never raw
// timestamps: 23:59 followed by 00:01 is a consecutive day, not a gap.

// StartOfDay truncates a time to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the whole calendar days from "from" to "to".
// Positive when "to" is later, negative when earlier. Dates are compared
// in UTC-normalized form so DST transitions never produce off-by-one gaps.
func DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// DateKey formats a date as YYYY-MM-DD for storage keys.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
