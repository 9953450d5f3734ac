package salon

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ScheduleOf builds the schedule from the salon's stored rows. The salon must
// be loaded with WorkingHours and SpecialDates.
func ScheduleOf(s *models.Salon) schedule.Schedule {
	out := schedule.Schedule{
		Weekly:       make(schedule.Weekly, len(s.WorkingHours)),
		SpecialDates: make([]schedule.SpecialDate, 0, len(s.SpecialDates)),
	}

	for _, wh := range s.WorkingHours {
		if wh.Weekday < 0 || wh.Weekday > 6 {
			continue
		}
		day := schedule.Day{
			Open:   wh.OpenTime,
			Close:  wh.CloseTime,
			Closed: wh.Closed,
		}
		if wh.LunchEnabled {
			day.LunchBreak = &schedule.LunchBreak{
				Enabled: true,
				Start:   wh.LunchStart,
				End:     wh.LunchEnd,
			}
		}
		out.Weekly[schedule.WeekdayName(time.Weekday(wh.Weekday))] = day
	}

	for _, sd := range s.SpecialDates {
		item := schedule.SpecialDate{
			Date:   sd.Date,
			Reason: sd.Reason,
			Closed: sd.Closed,
		}
		if !sd.Closed && sd.CustomOpen != "" && sd.CustomClose != "" {
			item.CustomHours = &schedule.Hours{Open: sd.CustomOpen, Close: sd.CustomClose}
		}
		out.SpecialDates = append(out.SpecialDates, item)
	}

	sort.Slice(out.SpecialDates, func(i, j int) bool {
		return out.SpecialDates[i].Date < out.SpecialDates[j].Date
	})

	return out
}

// RowsFor is the inverse of ScheduleOf. The schedule is expected to be
// validated already.
func RowsFor(
	salonID uint,
	sched schedule.Schedule,
) ([]models.SalonWorkingHours, []models.SalonSpecialDate) {

	hours := make([]models.SalonWorkingHours, 0, len(sched.Weekly))
	for name, day := range sched.Weekly {
		wd, ok := schedule.ParseWeekday(name)
		if !ok {
			continue
		}
		row := models.SalonWorkingHours{
			SalonID:   salonID,
			Weekday:   int(wd),
			OpenTime:  day.Open,
			CloseTime: day.Close,
			Closed:    day.Closed,
		}
		if lb := day.LunchBreak; lb != nil && lb.Enabled {
			row.LunchEnabled = true
			row.LunchStart = lb.Start
			row.LunchEnd = lb.End
		}
		hours = append(hours, row)
	}
	sort.Slice(hours, func(i, j int) bool { return hours[i].Weekday < hours[j].Weekday })

	specials := make([]models.SalonSpecialDate, 0, len(sched.SpecialDates))
	for _, sd := range sched.SpecialDates {
		row := models.SalonSpecialDate{
			SalonID: salonID,
			Date:    sd.Date,
			Reason:  sd.Reason,
			Closed:  sd.Closed,
		}
		if sd.CustomHours != nil {
			row.CustomOpen = sd.CustomHours.Open
			row.CustomClose = sd.CustomHours.Close
		}
		specials = append(specials, row)
	}

	return hours, specials
}

// SlotStep returns the salon override or def.
func SlotStep(s *models.Salon, def int) int {
	if s != nil && s.SlotStepMinutes != nil && *s.SlotStepMinutes > 0 {
		return *s.SlotStepMinutes
	}
	return def
}

// LeadTime returns the salon override or def.
func LeadTime(s *models.Salon, def time.Duration) time.Duration {
	if s != nil && s.LeadTimeMinutes != nil && *s.LeadTimeMinutes >= 0 {
		return time.Duration(*s.LeadTimeMinutes) * time.Minute
	}
	return def
}
