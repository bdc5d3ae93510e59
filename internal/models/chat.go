package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ChatSenderUser      = "user"
	ChatSenderAssistant = "ai"
)

type ChatSession struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"not null" json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (session *ChatSession) BeforeCreate(tx *gorm.DB) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	return nil
}

type ChatMessage struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	SessionID string    `gorm:"not null;index" json:"session_id"`
	Sender    string    `gorm:"not null" json:"sender"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (message *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	return nil
}
