package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// CancelAppointment frees the slot as soon as it commits: cancelled
// appointments leave the occupying set.
type CancelAppointment struct {
	transitioner
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier domain.Notifier,
) *CancelAppointment {
	return &CancelAppointment{
		transitioner: newTransitioner(repo, audit, notifier),
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	salonID uint,
	adminID uint,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.apply(ctx, salonID, adminID, appointmentID, domain.StatusCancelled, nil)
}
