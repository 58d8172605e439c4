package models

import "time"

// Judge represents a panel member who scores contestants. The PIN is the
// judge's only credential and is never serialized in responses.
type Judge struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Pin       string    `gorm:"type:varchar(10);not null;uniqueIndex" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
