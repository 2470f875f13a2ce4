package models

import "time"

// Base holds the columns shared by every catalog table.
type Base struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
