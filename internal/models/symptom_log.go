package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SymptomLog is append-only. Suggestions are computed once when the entry is
// created and never recomputed for historical rows.
type SymptomLog struct {
	ID          string `gorm:"primaryKey" json:"id"`
	UserID      string `gorm:"not null;index" json:"user_id"`
	Date        string `gorm:"not null" json:"date"`
	Symptoms    string `gorm:"not null" json:"symptoms"`
	Suggestions string `json:"suggestions"`
}

func (entry *SymptomLog) BeforeCreate(tx *gorm.DB) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	return nil
}
