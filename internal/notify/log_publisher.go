package notify

import (
	"context"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

// LogPublisher is used when no Redis is configured.
type LogPublisher struct {
	logger zerolog.Logger
}

func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, n domain.Notification) error {
	p.logger.Info().
		Str("notification_id", n.ID).
		Str("recipient", string(n.RecipientRole)).
		Str("event", string(n.EventType)).
		Uint("salon_id", n.SalonID).
		Uint("appointment_id", n.AppointmentID).
		Msg("notification")
	return nil
}
