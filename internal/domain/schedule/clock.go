package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	// DefaultSlotStep is the slot granularity in minutes.
	DefaultSlotStep = 30

	// DefaultLeadTime is the minimum notice, in minutes, for a same-day booking.
	DefaultLeadTime = 60
)

var (
	ErrInvalidDate  = errors.New("invalid date format")
	ErrInvalidClock = errors.New("invalid time format")
)

// TimeSlot is a bookable time of day, always formatted as HH:MM.
type TimeSlot string

func (t TimeSlot) String() string {
	return string(t)
}

// Minutes returns the slot as minutes since midnight.
func (t TimeSlot) Minutes() (int, error) {
	return ParseClock(string(t))
}

func ParseClock(s string) (int, error) {
	tm, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return tm.Hour()*60 + tm.Minute(), nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeClock turns inputs like "9:00" into "09:00".
func NormalizeClock(s string) (string, error) {
	m, err := ParseClock(s)
	if err != nil {
		return "", err
	}
	return FormatClock(m), nil
}

func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// SameDay compares calendar days as seen in b's location.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BeforeDay reports whether a falls on a calendar day strictly before b.
func BeforeDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	dayA := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	dayB := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return dayA.Before(dayB)
}
