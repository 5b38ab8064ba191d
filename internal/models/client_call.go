package models

import "time"

// ClientCall is one recorded outcome of a phone contact attempt.
// Rows are append-only: never updated or deleted, and they survive the
// client's agent assignment changing later.
type ClientCall struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint  `gorm:"index;not null" json:"client_id"`
	AgentID  *uint `json:"agent_id"`

	CallStatus   string     `gorm:"size:20;not null" json:"call_status"`
	Notes        string     `gorm:"size:2000" json:"notes"`
	FollowupDate *time.Time `json:"followup_date"`

	CreatedAt time.Time `json:"created_at"`
}
