package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Doctor struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"not null;index" json:"user_id"`
	Name            string    `gorm:"not null" json:"name"`
	Speciality      string    `json:"speciality"`
	Contact         string    `json:"contact"`
	AppointmentDate string    `json:"appointment_date"`
	CreatedAt       time.Time `json:"created_at"`
}

func (doctor *Doctor) BeforeCreate(tx *gorm.DB) error {
	if doctor.ID == "" {
		doctor.ID = uuid.NewString()
	}
	return nil
}
