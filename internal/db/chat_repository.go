package db

import (
	"time"

	"github.com/akshaan07/pilltime/internal/models"
	"gorm.io/gorm"
)

type ChatRepository struct {
	database *gorm.DB
}

func NewChatRepository(database *gorm.DB) *ChatRepository {
	return &ChatRepository{database: database}
}

func (repo *ChatRepository) ListSessionsByUser(userID string) ([]models.ChatSession, error) {
	sessions := make([]models.ChatSession, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("updated_at DESC, id DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *ChatRepository) FindSessionByIDForUser(sessionID string, userID string) (models.ChatSession, bool, error) {
	var session models.ChatSession
	result := repo.database.
		Where("id = ? AND user_id = ?", sessionID, userID).
		Limit(1).
		Find(&session)
	if result.Error != nil {
		return models.ChatSession{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ChatSession{}, false, nil
	}
	return session, true, nil
}

func (repo *ChatRepository) CreateSession(session *models.ChatSession) error {
	return repo.database.Create(session).Error
}

func (repo *ChatRepository) TouchSession(sessionID string, at time.Time) error {
	return repo.database.Model(&models.ChatSession{}).
		Where("id = ?", sessionID).
		Update("updated_at", at).Error
}

func (repo *ChatRepository) DeleteSessionWithMessages(sessionID string, userID string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("session_id = ? AND user_id = ?", sessionID, userID).
			Delete(&models.ChatMessage{}).Error; err != nil {
			return err
		}
		return tx.
			Where("id = ? AND user_id = ?", sessionID, userID).
			Delete(&models.ChatSession{}).Error
	})
}

func (repo *ChatRepository) ListMessagesBySession(sessionID string, userID string) ([]models.ChatMessage, error) {
	messages := make([]models.ChatMessage, 0)
	if err := repo.database.
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (repo *ChatRepository) CreateMessage(message *models.ChatMessage) error {
	return repo.database.Create(message).Error
}
