package models

import (
	"time"
)

// Rows are hard-deleted and created_at is immutable, so there is no
// updated_at or soft-delete column.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
