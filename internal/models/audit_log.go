package models

import "time"

// AuditLog records who changed what in a salon. Metadata holds the JSON
// payload of the event.
type AuditLog struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	SalonID uint  `gorm:"index:idx_audit_salon_created,priority:1;index:idx_audit_salon_action,priority:1;not null" json:"salon_id"`
	ActorID *uint `json:"actor_id,omitempty"`

	Action   string `gorm:"size:64;index:idx_audit_salon_action,priority:2;not null" json:"action"`
	Entity   string `gorm:"size:32" json:"entity"`
	EntityID *uint  `json:"entity_id,omitempty"`
	Metadata string `gorm:"type:text" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"index:idx_audit_salon_created,priority:2" json:"created_at"`
}
