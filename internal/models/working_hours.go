package models

import "time"

type SalonWorkingHours struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"uniqueIndex:ux_working_hours_salon_weekday;not null" json:"salon_id"`

	Weekday int `gorm:"uniqueIndex:ux_working_hours_salon_weekday" json:"weekday"`

	OpenTime     string `gorm:"size:5" json:"open_time"`
	CloseTime    string `gorm:"size:5" json:"close_time"`
	Closed       bool   `json:"closed"`
	LunchEnabled bool   `json:"lunch_enabled"`
	LunchStart   string `gorm:"size:5" json:"lunch_start"`
	LunchEnd     string `gorm:"size:5" json:"lunch_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
