package models

import "time"

// StateRecord is the single-row durable snapshot of the till. The Data
// column holds the persisted subset of the state (shift, orders, theme,
// language, products, staff); the floor plan and cart are volatile and
// reset on load. Last write wins.
type StateRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Data      string `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

// StateRecordID is the fixed row id of the only snapshot record.
const StateRecordID uint = 1
