package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilterAvailable(t *testing.T) {
	loc := time.UTC
	slots := slotsOf("08:00", "08:30", "09:00", "09:30", "10:00", "10:30")
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)
	tomorrow := today.AddDate(0, 0, 1)

	tests := []struct {
		name     string
		occupied []TimeSlot
		date     time.Time
		now      time.Time
		want     []TimeSlot
	}{
		{
			name:     "occupied slots are removed",
			occupied: slotsOf("08:30", "10:00"),
			date:     tomorrow,
			now:      time.Date(2026, 3, 10, 9, 0, 0, 0, loc),
			want:     slotsOf("08:00", "09:00", "09:30", "10:30"),
		},
		{
			name: "future date is never elapsed filtered",
			date: tomorrow,
			now:  time.Date(2026, 3, 10, 23, 59, 0, 0, loc),
			want: slots,
		},
		{
			name: "today drops slots at or before now plus lead",
			date: today,
			now:  time.Date(2026, 3, 10, 8, 0, 0, 0, loc),
			want: slotsOf("09:30", "10:00", "10:30"),
		},
		{
			name: "seconds past the cutoff minute still drop that slot",
			date: today,
			now:  time.Date(2026, 3, 10, 8, 30, 30, 0, loc),
			want: slotsOf("10:00", "10:30"),
		},
		{
			name:     "both rules combine",
			occupied: slotsOf("10:00"),
			date:     today,
			now:      time.Date(2026, 3, 10, 7, 45, 0, 0, loc),
			want:     slotsOf("09:00", "09:30", "10:30"),
		},
		{
			name: "lead crossing midnight empties today",
			date: today,
			now:  time.Date(2026, 3, 10, 23, 30, 0, 0, loc),
			want: []TimeSlot{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAvailable(slots, tt.occupied, tt.date, tt.now, time.Hour)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterAvailable_NeverReturnsOccupied(t *testing.T) {
	day := Day{Open: "06:00", Close: "22:00"}
	slots := GenerateSlots(day, DefaultSlotStep)
	date := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < len(slots); i += 3 {
		occupied := slots[:i]
		got := FilterAvailable(slots, occupied, date, now, time.Hour)
		for _, o := range occupied {
			assert.NotContains(t, got, o)
		}
		assert.Len(t, got, len(slots)-len(occupied))
	}
}

func TestFilterAvailable_UsesNowLocation(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, saoPaulo)
	// 01:00 UTC on the 11th is still the 10th in BRT.
	now := time.Date(2026, 3, 11, 1, 0, 0, 0, time.UTC).In(saoPaulo)

	got := FilterAvailable(slotsOf("21:30", "22:00", "23:30"), nil, date, now, time.Hour)
	assert.Equal(t, slotsOf("23:30"), got)
}
