package salon

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	GetSalon(
		ctx context.Context,
		salonID uint,
	) (*models.Salon, error)

	// SetSalonOpen reports whether the flag actually changed.
	SetSalonOpen(
		ctx context.Context,
		salonID uint,
		open bool,
	) (bool, error)

	UpdatePlan(
		ctx context.Context,
		salonID uint,
		plan string,
	) error

	// CountAppointmentsCreatedBetween counts non-cancelled appointments
	// created in [from, to).
	CountAppointmentsCreatedBetween(
		ctx context.Context,
		salonID uint,
		from time.Time,
		to time.Time,
	) (int64, error)

	ReplaceSchedule(
		ctx context.Context,
		salonID uint,
		hours []models.SalonWorkingHours,
		specials []models.SalonSpecialDate,
	) error
}
