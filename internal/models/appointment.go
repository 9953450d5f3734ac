package models

import (
	"time"

	"gorm.io/gorm"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint `gorm:"index:idx_appointments_salon_date,priority:1;not null" json:"salon_id"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	ClientID uint `gorm:"index;not null" json:"client_id"`

	// Date is YYYY-MM-DD and Time is HH:MM, both in the salon timezone.
	Date string `gorm:"size:10;index:idx_appointments_salon_date,priority:2;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	Items []AppointmentItem `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE;" json:"items"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// AppointmentItem is an add-on service snapshotted at booking time.
type AppointmentItem struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"index;not null" json:"appointment_id"`
	ServiceID     uint `json:"service_id"`
	Position      int  `json:"position"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
}
