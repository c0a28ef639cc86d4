package models

import (
	"time"

	"gorm.io/datatypes"
)

// Contact message lifecycle statuses.
const (
	ContactStatusReceived = "received"
	ContactStatusSent     = "sent"
	ContactStatusFailed   = "failed"
)

// ContactMessage is the persisted copy of an accepted contact form submission.
// Persistence is optional; deployments without a database run the pipeline
// stateless and the outgoing emails remain the system of record.
type ContactMessage struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Ticket    string            `gorm:"size:32;uniqueIndex" json:"ticket"`
	Name      string            `gorm:"size:100" json:"name"`
	Email     string            `gorm:"size:100;index" json:"email"`
	Subject   string            `gorm:"size:200" json:"subject"`
	Message   string            `gorm:"type:text" json:"message"`
	Lang      string            `gorm:"size:8" json:"lang"`
	Status    string            `gorm:"size:16;default:received" json:"status"`
	Checksum  string            `gorm:"size:64;index" json:"-"`
	Meta      datatypes.JSONMap `gorm:"type:json" json:"meta,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
