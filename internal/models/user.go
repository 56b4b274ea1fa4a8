package models

import "time"

// User is a login account for the HTTP surface. Role gating here is a
// UI convenience, not a security boundary; the till itself only needs
// the manager credential to be present when a manager shift starts.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         Role   `gorm:"size:20;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
