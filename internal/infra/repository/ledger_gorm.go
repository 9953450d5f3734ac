package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// RecordIncome inserts at most one income row per appointment. A second call
// returns the stored row with created=false.
func (r *AppointmentGormRepository) RecordIncome(
	ctx context.Context,
	in domain.IncomeEntry,
) (*models.Transaction, bool, error) {

	txn := models.Transaction{
		SalonID:       in.SalonID,
		AppointmentID: in.AppointmentID,
		Type:          models.TransactionIncome,
		Amount:        in.Amount,
		Description:   in.Description,
		Reference:     uuid.NewString(),
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "appointment_id"}},
			DoNothing: true,
		}).
		Create(&txn)
	if res.Error != nil {
		return nil, false, fmt.Errorf("record income: %w", res.Error)
	}

	if res.RowsAffected > 0 {
		return &txn, true, nil
	}

	var existing models.Transaction
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", in.AppointmentID).
		First(&existing).Error; err != nil {
		return nil, false, fmt.Errorf("load existing income: %w", err)
	}
	return &existing, false, nil
}
