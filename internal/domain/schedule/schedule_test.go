package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Normalizes(t *testing.T) {
	in := Schedule{
		Weekly: Weekly{
			"Monday": {
				Open:       "8:00",
				Close:      "18:00",
				LunchBreak: &LunchBreak{Enabled: true, Start: "12:00", End: "13:00"},
			},
			"sunday": {Closed: true, Open: "garbage"},
		},
		SpecialDates: []SpecialDate{
			{Date: "2026-12-25", Reason: " Natal ", Closed: true},
			{Date: "2026-12-24", CustomHours: &Hours{Open: "9:00", Close: "13:00"}},
		},
	}

	out, err := in.Validate()
	require.NoError(t, err)

	assert.Equal(t, Day{
		Open:       "08:00",
		Close:      "18:00",
		LunchBreak: &LunchBreak{Enabled: true, Start: "12:00", End: "13:00"},
	}, out.Weekly["monday"])
	assert.Equal(t, Day{Closed: true}, out.Weekly["sunday"])

	require.Len(t, out.SpecialDates, 2)
	assert.Equal(t, "2026-12-24", out.SpecialDates[0].Date)
	assert.Equal(t, &Hours{Open: "09:00", Close: "13:00"}, out.SpecialDates[0].CustomHours)
	assert.Equal(t, "Natal", out.SpecialDates[1].Reason)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   Schedule
		day  string
	}{
		{
			name: "open equal close",
			in:   Schedule{Weekly: Weekly{"monday": {Open: "10:00", Close: "10:00"}}},
			day:  "monday",
		},
		{
			name: "open after close",
			in:   Schedule{Weekly: Weekly{"tuesday": {Open: "18:00", Close: "08:00"}}},
			day:  "tuesday",
		},
		{
			name: "lunch starts before open",
			in: Schedule{Weekly: Weekly{"friday": {
				Open: "09:00", Close: "18:00",
				LunchBreak: &LunchBreak{Enabled: true, Start: "08:30", End: "10:00"},
			}}},
			day: "friday",
		},
		{
			name: "lunch ends after close",
			in: Schedule{Weekly: Weekly{"friday": {
				Open: "09:00", Close: "12:00",
				LunchBreak: &LunchBreak{Enabled: true, Start: "11:30", End: "12:30"},
			}}},
			day: "friday",
		},
		{
			name: "lunch inverted",
			in: Schedule{Weekly: Weekly{"friday": {
				Open: "09:00", Close: "18:00",
				LunchBreak: &LunchBreak{Enabled: true, Start: "13:00", End: "12:00"},
			}}},
			day: "friday",
		},
		{
			name: "unknown weekday",
			in:   Schedule{Weekly: Weekly{"funday": {Open: "09:00", Close: "10:00"}}},
			day:  "funday",
		},
		{
			name: "bad clock",
			in:   Schedule{Weekly: Weekly{"monday": {Open: "9h", Close: "10:00"}}},
			day:  "monday",
		},
		{
			name: "special date without hours",
			in:   Schedule{SpecialDates: []SpecialDate{{Date: "2026-01-01"}}},
			day:  "2026-01-01",
		},
		{
			name: "special date inverted hours",
			in: Schedule{SpecialDates: []SpecialDate{{
				Date: "2026-01-02", CustomHours: &Hours{Open: "12:00", Close: "09:00"},
			}}},
			day: "2026-01-02",
		},
		{
			name: "duplicated special date",
			in: Schedule{SpecialDates: []SpecialDate{
				{Date: "2026-01-03", Closed: true},
				{Date: "2026-01-03", Closed: true},
			}},
			day: "2026-01-03",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.in.Validate()
			require.Error(t, err)

			var se *InvalidScheduleError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.day, se.Day)
		})
	}
}

func TestResolveDayFor(t *testing.T) {
	s := Schedule{
		Weekly: Weekly{
			"monday": {
				Open:       "08:00",
				Close:      "18:00",
				LunchBreak: &LunchBreak{Enabled: true, Start: "12:00", End: "13:00"},
			},
		},
		SpecialDates: []SpecialDate{
			{Date: "2026-03-16", Reason: "Feriado", Closed: true},
			{Date: "2026-03-23", CustomHours: &Hours{Open: "10:00", Close: "14:00"}},
		},
	}

	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, monday.Weekday())

	assert.Equal(t, s.Weekly["monday"], s.ResolveDayFor(monday))
	assert.Equal(t, Day{Closed: true}, s.ResolveDayFor(monday.AddDate(0, 0, 7)))

	custom := s.ResolveDayFor(monday.AddDate(0, 0, 14))
	assert.Equal(t, Day{Open: "10:00", Close: "14:00"}, custom)
	assert.Nil(t, custom.LunchBreak)

	assert.True(t, s.ResolveDayFor(monday.AddDate(0, 0, 1)).Closed, "tuesday has no entry")
}

func TestClockHelpers(t *testing.T) {
	m, err := ParseClock("9:05")
	require.NoError(t, err)
	assert.Equal(t, 9*60+5, m)
	assert.Equal(t, "09:05", FormatClock(m))

	_, err = ParseClock("25:00")
	assert.ErrorIs(t, err, ErrInvalidClock)

	loc := time.FixedZone("X", 3600)
	a := time.Date(2026, 1, 1, 23, 30, 0, 0, loc)
	b := time.Date(2026, 1, 2, 0, 10, 0, 0, loc)
	assert.False(t, SameDay(a, b))
	assert.True(t, BeforeDay(a, b))
	assert.False(t, BeforeDay(b, b))
}
