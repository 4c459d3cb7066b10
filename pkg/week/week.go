package week

import "time"

// EAT is the fixed civil timezone all farms operate in (UTC+2, no DST).
// "Today" for status purposes is always the EAT calendar date.
var EAT = time.FixedZone("EAT", 2*60*60)

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Date strips t to a date-only value (midnight UTC) using t's own calendar
// date, so values from different zones compare by civil day.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Dow returns t's day of week with Monday=0 .. Sunday=6.
func Dow(t time.Time) int { return (int(t.Weekday()) + 6) % 7 }

// DayName returns the English name for a Monday-based day index.
func DayName(dow int) string {
	if dow < 0 || dow > 6 {
		return ""
	}
	return dayNames[dow]
}

// MondayOf returns the Monday of t's week, date-only.
func MondayOf(t time.Time) time.Time {
	d := Date(t)
	return d.AddDate(0, 0, -Dow(d))
}

// RecoverMonday normalizes a caller-supplied week date to its intended
// Monday. Clients serialize local midnight through UTC, which can pull the
// calendar date back to the preceding Sunday. A UTC Sunday therefore means
// the Monday after it, a UTC Monday stands, and any other weekday walks
// back to the Monday of its week. Keep these exact branches: historical
// snapshots are keyed by the Mondays this produced.
func RecoverMonday(t time.Time) time.Time {
	d := Date(t.UTC())
	switch d.Weekday() {
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	case time.Monday:
		return d
	default:
		return MondayOf(d)
	}
}

// WeeksSince returns floor((weekStart - sowing) / 7 days). Negative when
// weekStart precedes the sowing week.
func WeeksSince(sowing, weekStart time.Time) int {
	days := int(Date(weekStart).Sub(Date(sowing)).Hours() / 24)
	w := days / 7
	if days < 0 && days%7 != 0 {
		w--
	}
	return w
}

// ISOWeek returns the ISO 8601 week number of t, for report labels.
func ISOWeek(t time.Time) int {
	_, w := t.ISOWeek()
	return w
}
