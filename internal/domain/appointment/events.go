package appointment

import "time"

type RecipientRole string

const (
	RecipientAdmin  RecipientRole = "admin"
	RecipientClient RecipientRole = "client"
)

type EventType string

const (
	EventBookingCreated EventType = "booking_created"
	EventConfirmed      EventType = "appointment_confirmed"
	EventCancelled      EventType = "appointment_cancelled"
	EventCompleted      EventType = "appointment_completed"
)

// EventFor maps a target status to the event announced to the client.
func EventFor(to Status) EventType {
	switch to {
	case StatusConfirmed:
		return EventConfirmed
	case StatusCancelled:
		return EventCancelled
	case StatusCompleted:
		return EventCompleted
	}
	return ""
}

type Notification struct {
	ID            string        `json:"id"`
	RecipientRole RecipientRole `json:"recipient_role"`
	SalonID       uint          `json:"salon_id"`
	AppointmentID uint          `json:"appointment_id"`
	ClientID      uint          `json:"client_id"`
	EventType     EventType     `json:"event_type"`
	OccurredAt    time.Time     `json:"occurred_at"`
}

// Notifier delivers notifications fire-and-forget. Implementations must not
// block the caller nor report delivery failures back to it.
type Notifier interface {
	Notify(n Notification)
}
