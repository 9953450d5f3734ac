package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ===============================
// Model
// ===============================

type LunchBreak struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// Day is the working configuration of a single calendar day.
type Day struct {
	Open       string      `json:"open"`
	Close      string      `json:"close"`
	Closed     bool        `json:"closed"`
	LunchBreak *LunchBreak `json:"lunch_break,omitempty"`
}

type Hours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// SpecialDate overrides the weekly entry for one date.
type SpecialDate struct {
	Date        string `json:"date"`
	Reason      string `json:"reason"`
	Closed      bool   `json:"closed"`
	CustomHours *Hours `json:"custom_hours,omitempty"`
}

// Weekly maps lowercase weekday names to their configuration.
type Weekly map[string]Day

type Schedule struct {
	Weekly       Weekly        `json:"weekly"`
	SpecialDates []SpecialDate `json:"special_dates"`
}

// indexed by time.Weekday
var weekdayNames = [7]string{
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
}

func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

func ParseWeekday(name string) (time.Weekday, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range weekdayNames {
		if n == name {
			return time.Weekday(i), true
		}
	}
	return 0, false
}

// ===============================
// Errors
// ===============================

type InvalidScheduleError struct {
	Day    string
	Reason string
}

func (e *InvalidScheduleError) Error() string {
	return fmt.Sprintf("invalid schedule for %s: %s", e.Day, e.Reason)
}

func invalid(day, format string, args ...any) error {
	return &InvalidScheduleError{Day: day, Reason: fmt.Sprintf(format, args...)}
}

// ===============================
// Validation
// ===============================

// Validate returns a normalized copy of s: clocks as HH:MM, weekday keys
// lowercased, special dates sorted by date.
func (s Schedule) Validate() (Schedule, error) {
	out := Schedule{
		Weekly:       make(Weekly, len(s.Weekly)),
		SpecialDates: make([]SpecialDate, 0, len(s.SpecialDates)),
	}

	for name, day := range s.Weekly {
		wd, ok := ParseWeekday(name)
		if !ok {
			return Schedule{}, invalid(name, "unknown weekday")
		}
		key := WeekdayName(wd)
		if _, dup := out.Weekly[key]; dup {
			return Schedule{}, invalid(key, "duplicated weekday")
		}

		norm, err := validateDay(key, day)
		if err != nil {
			return Schedule{}, err
		}
		out.Weekly[key] = norm
	}

	seen := make(map[string]struct{}, len(s.SpecialDates))
	for _, sd := range s.SpecialDates {
		norm, err := validateSpecialDate(sd)
		if err != nil {
			return Schedule{}, err
		}
		if _, dup := seen[norm.Date]; dup {
			return Schedule{}, invalid(norm.Date, "duplicated special date")
		}
		seen[norm.Date] = struct{}{}
		out.SpecialDates = append(out.SpecialDates, norm)
	}

	sort.Slice(out.SpecialDates, func(i, j int) bool {
		return out.SpecialDates[i].Date < out.SpecialDates[j].Date
	})

	return out, nil
}

func validateDay(label string, d Day) (Day, error) {
	if d.Closed {
		return Day{Closed: true}, nil
	}

	open, err := ParseClock(d.Open)
	if err != nil {
		return Day{}, invalid(label, "invalid open time %q", d.Open)
	}
	closeAt, err := ParseClock(d.Close)
	if err != nil {
		return Day{}, invalid(label, "invalid close time %q", d.Close)
	}
	if open >= closeAt {
		return Day{}, invalid(label, "open must be before close")
	}

	out := Day{Open: FormatClock(open), Close: FormatClock(closeAt)}

	if d.LunchBreak == nil || !d.LunchBreak.Enabled {
		return out, nil
	}

	start, err := ParseClock(d.LunchBreak.Start)
	if err != nil {
		return Day{}, invalid(label, "invalid lunch start %q", d.LunchBreak.Start)
	}
	end, err := ParseClock(d.LunchBreak.End)
	if err != nil {
		return Day{}, invalid(label, "invalid lunch end %q", d.LunchBreak.End)
	}
	if start >= end {
		return Day{}, invalid(label, "lunch start must be before lunch end")
	}
	if start < open || end > closeAt {
		return Day{}, invalid(label, "lunch break outside working hours")
	}

	out.LunchBreak = &LunchBreak{
		Enabled: true,
		Start:   FormatClock(start),
		End:     FormatClock(end),
	}
	return out, nil
}

func validateSpecialDate(sd SpecialDate) (SpecialDate, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(sd.Date))
	if err != nil {
		return SpecialDate{}, invalid(sd.Date, "invalid date")
	}
	out := SpecialDate{
		Date:   d.Format(DateLayout),
		Reason: strings.TrimSpace(sd.Reason),
		Closed: sd.Closed,
	}
	if sd.Closed {
		return out, nil
	}
	if sd.CustomHours == nil {
		return SpecialDate{}, invalid(out.Date, "custom hours required when not closed")
	}

	day, err := validateDay(out.Date, Day{Open: sd.CustomHours.Open, Close: sd.CustomHours.Close})
	if err != nil {
		return SpecialDate{}, err
	}
	out.CustomHours = &Hours{Open: day.Open, Close: day.Close}
	return out, nil
}

// ===============================
// Resolution
// ===============================

// ResolveDayFor returns the configuration in effect on date. A special date
// replaces the weekly entry entirely; a weekday without an entry is closed.
func (s Schedule) ResolveDayFor(date time.Time) Day {
	key := date.Format(DateLayout)
	for _, sd := range s.SpecialDates {
		if sd.Date != key {
			continue
		}
		if sd.Closed || sd.CustomHours == nil {
			return Day{Closed: true}
		}
		return Day{Open: sd.CustomHours.Open, Close: sd.CustomHours.Close}
	}

	day, ok := s.Weekly[WeekdayName(date.Weekday())]
	if !ok {
		return Day{Closed: true}
	}
	return day
}
