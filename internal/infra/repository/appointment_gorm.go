package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Salon / Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSalon(
	ctx context.Context,
	salonID uint,
) (*models.Salon, error) {
	return loadSalon(ctx, r.db, salonID)
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	salonID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&svc).Error; err != nil {
		return nil, notFound(err)
	}
	return &svc, nil
}

// --------------------------------------------------
// Availability / Create
// --------------------------------------------------

func (r *AppointmentGormRepository) FindOccupied(
	ctx context.Context,
	salonID uint,
	date string,
) ([]schedule.TimeSlot, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"salon_id = ? AND date = ? AND status IN ?",
			salonID, date, domain.OccupyingStatuses(),
		).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, fmt.Errorf("find occupied: %w", err)
	}

	out := make([]schedule.TimeSlot, 0, len(times))
	for _, t := range times {
		out = append(out, schedule.TimeSlot(t))
	}
	return out, nil
}

func (r *AppointmentGormRepository) HasActiveAt(
	ctx context.Context,
	salonID uint,
	date string,
	time string,
) (bool, error) {

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"salon_id = ? AND date = ? AND time = ? AND status IN ?",
			salonID, date, time, domain.OccupyingStatuses(),
		).
		Limit(1).
		Pluck("id", &ids).Error; err != nil {
		return false, fmt.Errorf("check slot: %w", err)
	}

	return len(ids) > 0, nil
}

func (r *AppointmentGormRepository) InsertAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).
		Omit("Service").
		Create(ap).Error; err != nil {
		if IsUniqueViolation(err) {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// --------------------------------------------------
// Appointment (Confirm / Cancel / Complete)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ? AND salon_id = ?", appointmentID, salonID).
		First(&ap).Error; err != nil {
		return nil, notFound(err)
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateStatus(
	ctx context.Context,
	ap *models.Appointment,
	from domain.Status,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND salon_id = ? AND status = ?", ap.ID, ap.SalonID, string(from)).
		Updates(map[string]any{
			"status":       ap.Status,
			"confirmed_at": ap.ConfirmedAt,
			"cancelled_at": ap.CancelledAt,
			"completed_at": ap.CompletedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("update status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStaleStatus
	}
	return nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	salonID uint,
	fromDate string,
	toDate string,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where(
			"salon_id = ? AND date >= ? AND date < ?",
			salonID, fromDate, toDate,
		).
		Order("date ASC, time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	return apps, nil
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

func loadSalon(ctx context.Context, db *gorm.DB, salonID uint) (*models.Salon, error) {
	var s models.Salon
	if err := db.WithContext(ctx).
		Preload("WorkingHours").
		Preload("SpecialDates").
		First(&s, salonID).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
