package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

func (user *User) BeforeCreate(tx *gorm.DB) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return nil
}

type Profile struct {
	UserID         string    `gorm:"primaryKey" json:"user_id"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	MedicalHistory string    `json:"medical_history"`
	UpdatedAt      time.Time `json:"updated_at"`
}
