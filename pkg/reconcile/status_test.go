package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/week"
)

// now is Wednesday 2026-01-28 10:00 EAT; current Monday is 2026-01-26.
var wednesdayNow = time.Date(2026, 1, 28, 10, 0, 0, 0, week.EAT)

func TestStatusFor_LogAlwaysWins(t *testing.T) {
	pastWeek := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	futureWeek := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, StatusDone, StatusFor(0, true, pastWeek, wednesdayNow))
	assert.Equal(t, StatusDone, StatusFor(6, true, futureWeek, wednesdayNow))
}

func TestStatusFor_PastAndFutureWeeks(t *testing.T) {
	pastWeek := time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC)
	futureWeek := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	for dow := 0; dow <= 6; dow++ {
		assert.Equal(t, StatusMissed, StatusFor(dow, false, pastWeek, wednesdayNow), "past week dow %d", dow)
		assert.Equal(t, StatusUpcoming, StatusFor(dow, false, futureWeek, wednesdayNow), "future week dow %d", dow)
	}
}

func TestStatusFor_CurrentWeek(t *testing.T) {
	curWeek := time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		dow  int
		want string
	}{
		{0, StatusMissed},  // Monday, already gone
		{1, StatusMissed},  // Tuesday
		{2, StatusPending}, // today
		{3, StatusUpcoming},
		{6, StatusUpcoming},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, StatusFor(tc.dow, false, curWeek, wednesdayNow), "dow %d", tc.dow)
	}
}

// The EAT calendar decides "today": shortly after midnight EAT it is
// already Thursday even though UTC is still on Wednesday.
func TestStatusFor_EATBoundary(t *testing.T) {
	curWeek := time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 1, 28, 23, 30, 0, 0, time.UTC) // Thu 01:30 EAT
	assert.Equal(t, StatusMissed, StatusFor(2, false, curWeek, now))
	assert.Equal(t, StatusPending, StatusFor(3, false, curWeek, now))
}
