package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/plan"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	SalonID   uint
	ServiceID uint
	ClientID  uint

	Date  string
	Time  string
	Notes string

	AdditionalServiceIDs []uint
}

// LimitEnforcer is run after every committed booking.
type LimitEnforcer interface {
	CheckAndEnforce(ctx context.Context, salonID uint) (plan.Usage, error)
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier domain.Notifier
	limits   LimitEnforcer
	settings domain.Settings
	now      func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier domain.Notifier,
	limits LimitEnforcer,
	settings domain.Settings,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
		limits:   limits,
		settings: settings,
		now:      time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	ap, err := uc.book(ctx, in)

	switch {
	case err == nil:
		metrics.IncBookingAttempt("created")
	case domain.IsConflict(err):
		metrics.IncBookingAttempt("conflict")
	case errors.As(err, new(*domain.ValidationError)):
		metrics.IncBookingAttempt("validation")
	default:
		metrics.IncBookingAttempt("error")
	}

	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// After commit: never fails the booking
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		SalonID:  ap.SalonID,
		ActorID:  &in.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"date": ap.Date, "time": ap.Time},
	})

	if uc.notifier != nil {
		uc.notifier.Notify(domain.Notification{
			RecipientRole: domain.RecipientAdmin,
			SalonID:       ap.SalonID,
			AppointmentID: ap.ID,
			ClientID:      ap.ClientID,
			EventType:     domain.EventBookingCreated,
		})
	}

	if uc.limits != nil {
		if _, err := uc.limits.CheckAndEnforce(ctx, ap.SalonID); err != nil {
			log.Error().
				Err(err).
				Uint("salon_id", ap.SalonID).
				Msg("plan limit enforcement failed")
		}
	}

	return ap, nil
}

func (uc *CreateBooking) book(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios
	// --------------------------------------------------
	switch {
	case in.SalonID == 0:
		return nil, domain.Invalid(domain.ReasonMissingField, "salon_id")
	case in.ServiceID == 0:
		return nil, domain.Invalid(domain.ReasonMissingField, "service_id")
	case in.ClientID == 0:
		return nil, domain.Invalid(domain.ReasonMissingField, "client_id")
	case in.Date == "":
		return nil, domain.Invalid(domain.ReasonMissingField, "date")
	case in.Time == "":
		return nil, domain.Invalid(domain.ReasonMissingField, "time")
	}

	// --------------------------------------------------
	// 2️⃣ Salão aberto
	// --------------------------------------------------
	s, err := uc.repo.GetSalon(ctx, in.SalonID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Invalid(domain.ReasonSalonClosed, "salon_id")
		}
		return nil, err
	}
	if !s.IsOpen {
		return nil, domain.Invalid(domain.ReasonSalonClosed, "salon_id")
	}

	// --------------------------------------------------
	// 3️⃣ Data / hora no timezone do salão
	// --------------------------------------------------
	loc := timezone.Location(s.Timezone)

	date, err := schedule.ParseDate(in.Date, loc)
	if err != nil {
		return nil, &domain.ValidationError{Reason: domain.ReasonSlotUnavailable, Field: "date", Err: err}
	}
	clock, err := schedule.NormalizeClock(in.Time)
	if err != nil {
		return nil, &domain.ValidationError{Reason: domain.ReasonSlotUnavailable, Field: "time", Err: err}
	}
	dateStr := date.Format(schedule.DateLayout)

	// --------------------------------------------------
	// 4️⃣ Serviços
	// --------------------------------------------------
	svc, err := uc.activeService(ctx, s.ID, in.ServiceID, "service_id")
	if err != nil {
		return nil, err
	}

	items := make([]models.AppointmentItem, 0, len(in.AdditionalServiceIDs))
	for i, id := range in.AdditionalServiceIDs {
		extra, err := uc.activeService(ctx, s.ID, id, "additional_service_ids")
		if err != nil {
			return nil, err
		}
		items = append(items, models.AppointmentItem{
			ServiceID:   extra.ID,
			Position:    i,
			Name:        extra.Name,
			Price:       extra.Price,
			DurationMin: extra.DurationMin,
		})
	}

	// --------------------------------------------------
	// 5️⃣ Disponibilidade
	// --------------------------------------------------
	view, err := loadDay(ctx, uc.repo, s, date, uc.now().In(loc), uc.settings)
	if err != nil {
		return nil, err
	}
	slot := schedule.TimeSlot(clock)
	if !view.offers(slot) {
		return nil, domain.Invalid(domain.ReasonSlotUnavailable, "time")
	}

	conflict := &domain.BookingConflict{
		Reason: domain.ReasonAlreadyTaken,
		Date:   dateStr,
		Time:   clock,
	}
	if view.occupies(slot) {
		return nil, conflict
	}

	// --------------------------------------------------
	// 6️⃣ Commit com re-checagem sob lock
	// --------------------------------------------------
	ap := &models.Appointment{
		SalonID:   s.ID,
		ServiceID: svc.ID,
		ClientID:  in.ClientID,
		Date:      dateStr,
		Time:      clock,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
		Items:     items,
	}

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		taken, err := tx.HasActiveAt(ctx, s.ID, dateStr, clock)
		if err != nil {
			return err
		}
		if taken {
			return conflict
		}

		if err := tx.InsertAppointment(ctx, ap); err != nil {
			if errors.Is(err, domain.ErrSlotTaken) {
				return conflict
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ap.Service = *svc
	return ap, nil
}

func (uc *CreateBooking) activeService(
	ctx context.Context,
	salonID uint,
	serviceID uint,
	field string,
) (*models.Service, error) {

	svc, err := uc.repo.GetService(ctx, salonID, serviceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Invalid(domain.ReasonServiceUnavailable, field)
		}
		return nil, err
	}
	if !svc.Active {
		return nil, domain.Invalid(domain.ReasonServiceUnavailable, field)
	}
	return svc, nil
}
