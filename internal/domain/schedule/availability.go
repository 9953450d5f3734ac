package schedule

import "time"

// FilterAvailable removes occupied slots and, when date is the same day as
// now, every slot at or before now+lead. Input order is preserved.
func FilterAvailable(
	slots []TimeSlot,
	occupied []TimeSlot,
	date time.Time,
	now time.Time,
	lead time.Duration,
) []TimeSlot {

	taken := make(map[TimeSlot]struct{}, len(occupied))
	for _, o := range occupied {
		taken[o] = struct{}{}
	}

	cutoff := -1
	if SameDay(date, now) {
		limit := now.Add(lead)
		if SameDay(limit, now) {
			cutoff = limit.Hour()*60 + limit.Minute()
		} else {
			cutoff = 24 * 60
		}
	}

	out := make([]TimeSlot, 0, len(slots))
	for _, s := range slots {
		if _, busy := taken[s]; busy {
			continue
		}
		if cutoff >= 0 {
			m, err := s.Minutes()
			if err != nil || m <= cutoff {
				continue
			}
		}
		out = append(out, s)
	}

	return out
}
