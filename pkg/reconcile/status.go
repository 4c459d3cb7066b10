package reconcile

import (
	"time"

	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/week"
)

// StatusFor assigns one of the four completion statuses to a due task.
// A matching log always wins regardless of timing. Otherwise the task's
// week and day are compared against "now" on the EAT calendar.
func StatusFor(dayOfWeek int, hasMatchingLog bool, weekMonday, now time.Time) string {
	if hasMatchingLog {
		return StatusDone
	}
	local := now.In(week.EAT)
	todayDow := week.Dow(local)
	currentMonday := week.MondayOf(local)
	wm := week.Date(weekMonday)
	switch {
	case wm.Before(currentMonday):
		return StatusMissed
	case wm.After(currentMonday):
		return StatusUpcoming
	}
	switch {
	case dayOfWeek < todayDow:
		return StatusMissed
	case dayOfWeek == todayDow:
		return StatusPending
	default:
		return StatusUpcoming
	}
}
