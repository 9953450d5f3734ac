package schedule

// GenerateSlots lists the candidate slots of a day, stepping from open while
// the slot starts before close. Slots starting inside an enabled lunch break
// are left out. Closed or malformed days yield an empty list.
func GenerateSlots(day Day, step int) []TimeSlot {
	if step <= 0 {
		step = DefaultSlotStep
	}

	if day.Closed || day.Open == "" || day.Close == "" {
		return []TimeSlot{}
	}

	open, err := ParseClock(day.Open)
	if err != nil {
		return []TimeSlot{}
	}
	closeAt, err := ParseClock(day.Close)
	if err != nil || open >= closeAt {
		return []TimeSlot{}
	}

	lunchStart, lunchEnd := -1, -1
	if lb := day.LunchBreak; lb != nil && lb.Enabled {
		s, errS := ParseClock(lb.Start)
		e, errE := ParseClock(lb.End)
		if errS == nil && errE == nil && s < e {
			lunchStart, lunchEnd = s, e
		}
	}

	slots := make([]TimeSlot, 0, (closeAt-open)/step+1)
	for cur := open; cur < closeAt; cur += step {
		if lunchStart >= 0 && cur >= lunchStart && cur < lunchEnd {
			continue
		}
		slots = append(slots, TimeSlot(FormatClock(cur)))
	}

	return slots
}

func Contains(slots []TimeSlot, t TimeSlot) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}
