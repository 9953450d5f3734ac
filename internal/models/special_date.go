package models

import "time"

type SalonSpecialDate struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	SalonID uint   `gorm:"uniqueIndex:ux_special_dates_salon_date;not null" json:"salon_id"`
	Date    string `gorm:"size:10;uniqueIndex:ux_special_dates_salon_date;not null" json:"date"`

	Reason      string `gorm:"size:100" json:"reason"`
	Closed      bool   `json:"closed"`
	CustomOpen  string `gorm:"size:5" json:"custom_open"`
	CustomClose string `gorm:"size:5" json:"custom_close"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
