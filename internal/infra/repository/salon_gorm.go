package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type SalonGormRepository struct {
	db *gorm.DB
}

func NewSalonGormRepository(db *gorm.DB) *SalonGormRepository {
	return &SalonGormRepository{db: db}
}

func (r *SalonGormRepository) GetSalon(
	ctx context.Context,
	salonID uint,
) (*models.Salon, error) {
	return loadSalon(ctx, r.db, salonID)
}

// SetSalonOpen only writes when the flag differs, so re-closing a closed
// salon is a no-op.
func (r *SalonGormRepository) SetSalonOpen(
	ctx context.Context,
	salonID uint,
	open bool,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Salon{}).
		Where("id = ? AND is_open = ?", salonID, !open).
		Update("is_open", open)
	if res.Error != nil {
		return false, fmt.Errorf("set salon open: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *SalonGormRepository) UpdatePlan(
	ctx context.Context,
	salonID uint,
	plan string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Salon{}).
		Where("id = ?", salonID).
		Update("plan", plan)
	if res.Error != nil {
		return fmt.Errorf("update plan: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SalonGormRepository) CountAppointmentsCreatedBetween(
	ctx context.Context,
	salonID uint,
	from time.Time,
	to time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"salon_id = ? AND status IN ? AND created_at >= ? AND created_at < ?",
			salonID, domain.CountedStatuses(), from, to,
		).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count appointments: %w", err)
	}
	return count, nil
}

// ReplaceSchedule swaps the whole weekly schedule and special dates.
func (r *SalonGormRepository) ReplaceSchedule(
	ctx context.Context,
	salonID uint,
	hours []models.SalonWorkingHours,
	specials []models.SalonSpecialDate,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("salon_id = ?", salonID).
			Delete(&models.SalonWorkingHours{}).Error; err != nil {
			return fmt.Errorf("clear working hours: %w", err)
		}
		if err := tx.Where("salon_id = ?", salonID).
			Delete(&models.SalonSpecialDate{}).Error; err != nil {
			return fmt.Errorf("clear special dates: %w", err)
		}

		if len(hours) > 0 {
			if err := tx.Create(&hours).Error; err != nil {
				return fmt.Errorf("save working hours: %w", err)
			}
		}
		if len(specials) > 0 {
			if err := tx.Create(&specials).Error; err != nil {
				return fmt.Errorf("save special dates: %w", err)
			}
		}
		return nil
	})
}

var _ salon.Repository = (*SalonGormRepository)(nil)
