package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo     domain.Repository
	settings domain.Settings
	now      func() time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	settings domain.Settings,
) *GetAvailability {
	return &GetAvailability{
		repo:     repo,
		settings: settings,
		now:      time.Now,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.Availability, error) {

	s, err := uc.repo.GetSalon(ctx, in.SalonID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeSalonNotFound)
		}
		return nil, err
	}

	loc := timezone.Location(s.Timezone)

	date, err := schedule.ParseDate(in.Date, loc)
	if err != nil {
		return nil, &domain.ValidationError{
			Reason: domain.ReasonSlotUnavailable,
			Field:  "date",
			Err:    err,
		}
	}

	out := &domain.Availability{
		Date:   date.Format(schedule.DateLayout),
		IsOpen: s.IsOpen,
		Slots:  []schedule.TimeSlot{},
	}
	if !s.IsOpen {
		return out, nil
	}

	view, err := loadDay(ctx, uc.repo, s, date, uc.now().In(loc), uc.settings)
	if err != nil {
		return nil, err
	}
	out.Slots = view.available()

	return out, nil
}

// dayView is one salon day as seen at now: the schedule's slots and the
// times already held by occupying appointments.
type dayView struct {
	slots    []schedule.TimeSlot
	occupied []schedule.TimeSlot
	date     time.Time
	now      time.Time
	lead     time.Duration
}

func loadDay(
	ctx context.Context,
	repo domain.Repository,
	s *models.Salon,
	date time.Time,
	now time.Time,
	settings domain.Settings,
) (dayView, error) {

	v := dayView{
		slots: []schedule.TimeSlot{},
		date:  date,
		now:   now,
		lead:  salon.LeadTime(s, settings.LeadTime),
	}

	if schedule.BeforeDay(date, now) {
		return v, nil
	}

	day := salon.ScheduleOf(s).ResolveDayFor(date)
	v.slots = schedule.GenerateSlots(day, salon.SlotStep(s, settings.SlotStep))
	if len(v.slots) == 0 {
		return v, nil
	}

	occupied, err := repo.FindOccupied(ctx, s.ID, date.Format(schedule.DateLayout))
	if err != nil {
		return dayView{}, err
	}
	v.occupied = occupied

	return v, nil
}

func (v dayView) available() []schedule.TimeSlot {
	return schedule.FilterAvailable(v.slots, v.occupied, v.date, v.now, v.lead)
}

// offers ignores occupation: t is on the schedule and not elapsed.
func (v dayView) offers(t schedule.TimeSlot) bool {
	return schedule.Contains(schedule.FilterAvailable(v.slots, nil, v.date, v.now, v.lead), t)
}

func (v dayView) occupies(t schedule.TimeSlot) bool {
	return schedule.Contains(v.occupied, t)
}
