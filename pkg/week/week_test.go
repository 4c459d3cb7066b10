package week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestDow(t *testing.T) {
	assert.Equal(t, 0, Dow(d(2026, 1, 26))) // Monday
	assert.Equal(t, 2, Dow(d(2026, 1, 28))) // Wednesday
	assert.Equal(t, 6, Dow(d(2026, 2, 1)))  // Sunday
}

func TestMondayOf(t *testing.T) {
	mon := d(2026, 1, 26)
	for i := 0; i < 7; i++ {
		assert.Equal(t, mon, MondayOf(mon.AddDate(0, 0, i)), "day offset %d", i)
	}
}

func TestRecoverMonday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"utc monday stands", d(2026, 1, 26), d(2026, 1, 26)},
		// EAT midnight Monday serialized through UTC lands on Sunday 22:00.
		{"sunday advances one day", time.Date(2026, 1, 25, 22, 0, 0, 0, time.UTC), d(2026, 1, 26)},
		{"plain sunday advances", d(2026, 1, 25), d(2026, 1, 26)},
		{"wednesday walks back", d(2026, 1, 28), d(2026, 1, 26)},
		{"saturday walks back", d(2026, 1, 31), d(2026, 1, 26)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RecoverMonday(tc.in))
		})
	}
}

func TestWeeksSince(t *testing.T) {
	sowing := d(2026, 1, 5)
	assert.Equal(t, 0, WeeksSince(sowing, d(2026, 1, 5)))
	assert.Equal(t, 0, WeeksSince(sowing, d(2026, 1, 11)))
	assert.Equal(t, 3, WeeksSince(sowing, d(2026, 1, 26)))
	// floor, not truncation, for pre-sowing weeks
	assert.Equal(t, -1, WeeksSince(sowing, d(2026, 1, 4)))
	assert.Equal(t, -1, WeeksSince(sowing, d(2025, 12, 29)))
	assert.Equal(t, -2, WeeksSince(sowing, d(2025, 12, 28)))
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Monday", DayName(0))
	assert.Equal(t, "Sunday", DayName(6))
	assert.Equal(t, "", DayName(7))
}
