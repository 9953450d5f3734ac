package models

import "time"

const TransactionIncome = "income"

// Transaction is a ledger entry. At most one per appointment.
type Transaction struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	SalonID       uint   `gorm:"index;not null" json:"salon_id"`
	AppointmentID uint   `gorm:"uniqueIndex;not null" json:"appointment_id"`
	Type          string `gorm:"size:20;not null" json:"type"`

	Amount      float64 `json:"amount"`
	Description string  `gorm:"size:255" json:"description"`
	Reference   string  `gorm:"size:36;not null" json:"reference"`

	CreatedAt time.Time `json:"created_at"`
}
