package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyWaterGoalLiters is the fixed hydration goal every percentage and
// score calculation is measured against.
const DailyWaterGoalLiters = 3.0

// HydrationLog holds one row per user per calendar day. Dates are stored as
// "YYYY-MM-DD" strings in the user's local calendar; additions for the same
// day increment the existing row instead of creating a new one.
type HydrationLog struct {
	ID     string  `gorm:"primaryKey" json:"id"`
	UserID string  `gorm:"not null;uniqueIndex:uidx_hydration_user_date" json:"user_id"`
	Date   string  `gorm:"not null;uniqueIndex:uidx_hydration_user_date" json:"date"`
	Liters float64 `gorm:"not null;default:0" json:"liters"`
}

func (entry *HydrationLog) BeforeCreate(tx *gorm.DB) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	return nil
}
