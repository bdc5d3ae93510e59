package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FrequencyOnceDaily     = "Once daily"
	FrequencyTwiceDaily    = "Twice daily"
	FrequencyThriceDaily   = "Three times daily"
	FrequencyFourTimes     = "Four times daily"
	FrequencyEveryOtherDay = "Every other day"
	FrequencyWeekly        = "Weekly"
	FrequencyMonthly       = "Monthly"
)

func MedicineFrequencies() []string {
	return []string{
		FrequencyOnceDaily,
		FrequencyTwiceDaily,
		FrequencyThriceDaily,
		FrequencyFourTimes,
		FrequencyEveryOtherDay,
		FrequencyWeekly,
		FrequencyMonthly,
	}
}

type Medicine struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Dosage    string    `json:"dosage"`
	Frequency string    `gorm:"not null" json:"frequency"`
	TimeSlots []string  `gorm:"serializer:json" json:"time_slots"`
	Notes     string    `json:"notes"`
	// No default tag: gorm omits zero-valued defaulted fields from INSERTs,
	// so a default here would store inactive rows as active.
	IsActive  bool      `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (medicine *Medicine) BeforeCreate(tx *gorm.DB) error {
	if medicine.ID == "" {
		medicine.ID = uuid.NewString()
	}
	return nil
}
