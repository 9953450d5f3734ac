package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CompleteAppointment struct {
	transitioner
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier domain.Notifier,
) *CompleteAppointment {
	return &CompleteAppointment{
		transitioner: newTransitioner(repo, audit, notifier),
	}
}

// Execute marks the appointment completed and books its income in the same
// transaction. The ledger keeps one entry per appointment.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	salonID uint,
	adminID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	return uc.apply(ctx, salonID, adminID, appointmentID, domain.StatusCompleted,
		func(tx domain.Repository, ap *models.Appointment) error {
			_, created, err := tx.RecordIncome(ctx, domain.IncomeEntry{
				SalonID:       ap.SalonID,
				AppointmentID: ap.ID,
				Amount:        domain.Total(ap),
				Description:   ap.Service.Name,
			})
			if err != nil {
				return err
			}
			if created {
				metrics.IncIncomeRecorded()
			}
			return nil
		},
	)
}
