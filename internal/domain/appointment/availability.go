package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
)

type AvailabilityInput struct {
	SalonID uint
	Date    string // YYYY-MM-DD
}

type Availability struct {
	Date   string              `json:"date"`
	IsOpen bool                `json:"is_open"`
	Slots  []schedule.TimeSlot `json:"slots"`
}

// Settings are the engine-wide slot step and lead time. Salons may override
// both.
type Settings struct {
	SlotStep int
	LeadTime time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		SlotStep: schedule.DefaultSlotStep,
		LeadTime: schedule.DefaultLeadTime * time.Minute,
	}
}
