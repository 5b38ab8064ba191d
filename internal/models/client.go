package models

import "time"

// Client is a prospective or contracted customer tracked through the
// booking/sales pipeline. AgentID is a soft reference into agents; the
// reconciler validates it before it is ever written.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserEmail string `gorm:"size:100" json:"user_email"`

	Name            string `gorm:"size:255;not null" json:"name"`
	Email           string `gorm:"size:100;not null" json:"email"`
	BusinessName    string `gorm:"size:255" json:"business_name"`
	BusinessAddress string `gorm:"size:512" json:"business_address"`
	ContactNumber   string `gorm:"size:64" json:"contact_number"`
	Description     string `gorm:"size:2000" json:"description"`

	MeetingSlot *time.Time `json:"meeting_slot"`

	Status       string  `gorm:"size:30;default:'pending'" json:"status"`
	AgentID      *uint   `json:"agent_id"`
	PackageName  string  `gorm:"size:255" json:"package_name"`
	PackagePrice float64 `gorm:"type:decimal(10,2);default:0" json:"package_price"`
	PhotoURL     string  `gorm:"size:512" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
