package timezone

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultTimezone applies to salons created without an explicit zone.
const DefaultTimezone = "America/Sao_Paulo"

var locations sync.Map // name -> *time.Location

// Location resolves a salon's IANA zone. Unknown or empty names fall back to
// DefaultTimezone, and to UTC when the zone database is unavailable.
func Location(name string) *time.Location {
	if name == "" {
		name = DefaultTimezone
	}
	if loc, ok := locations.Load(name); ok {
		return loc.(*time.Location)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Err(err).Str("timezone", name).Msg("unknown timezone, using default")
		if name == DefaultTimezone {
			loc = time.UTC
		} else {
			loc = Location(DefaultTimezone)
		}
	}

	locations.Store(name, loc)
	return loc
}

// DayBounds is [local midnight of t, next local midnight).
func DayBounds(t time.Time) (start, end time.Time) {
	y, m, d := t.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// MonthBounds is [first local midnight of t's month, first of the next).
func MonthBounds(t time.Time) (start, end time.Time) {
	y, m, _ := t.Date()
	start = time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}
