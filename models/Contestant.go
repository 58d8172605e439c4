package models

import "time"

// Contestant represents a candidate in the pageant. Numbers identify a
// contestant within a gender only; the same number exists on both sides
// (partner pairs share a number).
type Contestant struct {
	ID            int       `gorm:"primaryKey" json:"id"`
	Number        int       `gorm:"not null" json:"number"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name"`
	Gender        string    `gorm:"type:varchar(10);not null" json:"gender"`
	Course        *string   `gorm:"type:varchar(100)" json:"course,omitempty"`
	PartnerNumber *int      `gorm:"column:partner_number" json:"partnerNumber,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
