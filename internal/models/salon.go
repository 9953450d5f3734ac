package models

import "time"

type Salon struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Slug     string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone    string `gorm:"size:20" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`
	Timezone string `gorm:"size:64" json:"timezone"`

	// IsOpen gates new bookings. Closed by the plan enforcer or the owner.
	IsOpen bool   `gorm:"not null" json:"is_open"`
	Plan   string `gorm:"size:20;not null;default:'free'" json:"plan"`

	// nil means engine default
	SlotStepMinutes *int `json:"slot_step_minutes"`
	LeadTimeMinutes *int `json:"lead_time_minutes"`

	WorkingHours []SalonWorkingHours `gorm:"foreignKey:SalonID" json:"working_hours,omitempty"`
	SpecialDates []SalonSpecialDate  `gorm:"foreignKey:SalonID" json:"special_dates,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
