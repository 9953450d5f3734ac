package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type IncomeEntry struct {
	SalonID       uint
	AppointmentID uint
	Amount        float64
	Description   string
}

// Ledger records revenue. RecordIncome is idempotent per appointment: when an
// entry already exists it is returned with created=false.
type Ledger interface {
	RecordIncome(
		ctx context.Context,
		in IncomeEntry,
	) (txn *models.Transaction, created bool, err error)
}

type Repository interface {
	// -------- Directory --------
	GetSalon(
		ctx context.Context,
		salonID uint,
	) (*models.Salon, error)

	GetService(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Appointment (availability / create) --------
	FindOccupied(
		ctx context.Context,
		salonID uint,
		date string,
	) ([]schedule.TimeSlot, error)

	// HasActiveAt locks and checks the exact slot for an occupying appointment.
	HasActiveAt(
		ctx context.Context,
		salonID uint,
		date string,
		time string,
	) (bool, error)

	// InsertAppointment returns ErrSlotTaken on a uniqueness violation.
	InsertAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		salonID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	// UpdateStatus persists ap.Status and its timestamps only while the stored
	// status is still from; otherwise ErrStaleStatus.
	UpdateStatus(
		ctx context.Context,
		ap *models.Appointment,
		from Status,
	) error

	// -------- Listing --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		salonID uint,
		fromDate string,
		toDate string,
	) ([]models.Appointment, error)

	Ledger

	// Transaction runs fn against a repository bound to one store transaction.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error
}
