package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type ListAppointmentsByMonth struct {
	periodLister
}

func NewListAppointmentsByMonth(repo domain.Repository) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{periodLister{repo: repo}}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	salonID uint,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	switch {
	case month < 1 || month > 12:
		return nil, domain.Invalid(domain.ReasonMissingField, "month")
	case year < 2000 || year > 9999:
		return nil, domain.Invalid(domain.ReasonMissingField, "year")
	}

	return uc.list(ctx, salonID, func(loc *time.Location) (time.Time, time.Time, error) {
		start, end := timezone.MonthBounds(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc))
		return start, end, nil
	})
}
