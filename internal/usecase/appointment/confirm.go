package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ConfirmAppointment struct {
	transitioner
}

func NewConfirmAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier domain.Notifier,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		transitioner: newTransitioner(repo, audit, notifier),
	}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	salonID uint,
	adminID uint,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.apply(ctx, salonID, adminID, appointmentID, domain.StatusConfirmed, nil)
}
