package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves ap to the target status and stamps the matching
// timestamp. On error ap is left untouched.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	switch to {
	case StatusConfirmed:
		ap.ConfirmedAt = &now
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}
	return nil
}

func Confirm(ap *models.Appointment, now time.Time) error {
	return Transition(ap, StatusConfirmed, now)
}

func Cancel(ap *models.Appointment, now time.Time) error {
	return Transition(ap, StatusCancelled, now)
}

func Complete(ap *models.Appointment, now time.Time) error {
	return Transition(ap, StatusCompleted, now)
}

// Total is the amount recognised on completion: the primary service plus
// every line item.
func Total(ap *models.Appointment) float64 {
	total := ap.Service.Price
	for _, it := range ap.Items {
		total += it.Price
	}
	return total
}

// Duration is the time the appointment blocks, in minutes.
func Duration(ap *models.Appointment) int {
	d := ap.Service.DurationMin
	for _, it := range ap.Items {
		d += it.DurationMin
	}
	return d
}
