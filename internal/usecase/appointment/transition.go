package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// transitioner applies one status change for an admin. The write is
// conditional on the status read, so two racing admins cannot both win.
type transitioner struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier domain.Notifier
	now      func() time.Time
}

func newTransitioner(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier domain.Notifier,
) transitioner {
	return transitioner{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
		now:      time.Now,
	}
}

// inTx runs inside the status transaction after the conditional update.
type inTx func(tx domain.Repository, ap *models.Appointment) error

func (t *transitioner) apply(
	ctx context.Context,
	salonID uint,
	actorID uint,
	appointmentID uint,
	to domain.Status,
	extra inTx,
) (*models.Appointment, error) {

	var (
		ap   *models.Appointment
		from domain.Status
	)

	err := t.repo.Transaction(ctx, func(tx domain.Repository) error {
		var err error
		ap, err = tx.GetAppointment(ctx, salonID, appointmentID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
			}
			return err
		}

		from = domain.Status(ap.Status)
		if err := domain.Transition(ap, to, t.now()); err != nil {
			return err
		}

		if err := tx.UpdateStatus(ctx, ap, from); err != nil {
			if errors.Is(err, domain.ErrStaleStatus) {
				return &domain.InvalidTransitionError{From: from, To: to}
			}
			return err
		}

		if extra != nil {
			return extra(tx, ap)
		}
		return nil
	})
	if err != nil {
		if domain.IsInvalidTransition(err) {
			log.Warn().
				Err(err).
				Uint("salon_id", salonID).
				Uint("appointment_id", appointmentID).
				Msg("rejected appointment transition")
		}
		return nil, err
	}

	metrics.IncTransition(string(from), string(to))

	t.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		ActorID:  &actorID,
		Action:   "appointment_" + string(to),
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"from": string(from), "to": string(to)},
	})

	if t.notifier != nil {
		t.notifier.Notify(domain.Notification{
			RecipientRole: domain.RecipientClient,
			SalonID:       salonID,
			AppointmentID: ap.ID,
			ClientID:      ap.ClientID,
			EventType:     domain.EventFor(to),
		})
	}

	return ap, nil
}
