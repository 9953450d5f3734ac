package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// periodLister lists a salon's appointments for a period expressed in the
// salon's own timezone.
type periodLister struct {
	repo domain.Repository
}

func (l periodLister) list(
	ctx context.Context,
	salonID uint,
	period func(loc *time.Location) (start, end time.Time, err error),
) ([]dto.AppointmentListDTO, error) {

	s, err := l.repo.GetSalon(ctx, salonID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeSalonNotFound)
		}
		return nil, err
	}

	start, end, err := period(timezone.Location(s.Timezone))
	if err != nil {
		return nil, err
	}

	appointments, err := l.repo.ListAppointmentsForPeriod(
		ctx,
		salonID,
		start.Format(schedule.DateLayout),
		end.Format(schedule.DateLayout),
	)
	if err != nil {
		return nil, err
	}

	return dto.NewAppointmentList(appointments), nil
}

type ListAppointmentsByDate struct {
	periodLister
}

func NewListAppointmentsByDate(repo domain.Repository) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{periodLister{repo: repo}}
}

// Execute lists every appointment of one salon day, any status, by time.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	salonID uint,
	date string,
) ([]dto.AppointmentListDTO, error) {

	return uc.list(ctx, salonID, func(loc *time.Location) (time.Time, time.Time, error) {
		day, err := schedule.ParseDate(date, loc)
		if err != nil {
			return time.Time{}, time.Time{}, &domain.ValidationError{
				Reason: domain.ReasonMissingField,
				Field:  "date",
				Err:    err,
			}
		}
		start, end := timezone.DayBounds(day)
		return start, end, nil
	})
}
