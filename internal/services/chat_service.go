package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akshaan07/pilltime/internal/models"
)

var (
	ErrChatSessionNotFound = errors.New("chat session not found")
	ErrChatMessageRequired = errors.New("chat message is required")
	ErrInvalidChatSender   = errors.New("invalid chat sender")
	ErrSaveChatFailed      = errors.New("save chat failed")
	ErrDeleteChatFailed    = errors.New("delete chat session failed")
)

const (
	defaultChatTitle     = "New Chat"
	maxChatTitleLength   = 120
	maxChatMessageLength = 8000
)

type ChatStore interface {
	ListSessionsByUser(userID string) ([]models.ChatSession, error)
	FindSessionByIDForUser(sessionID string, userID string) (models.ChatSession, bool, error)
	CreateSession(session *models.ChatSession) error
	TouchSession(sessionID string, at time.Time) error
	DeleteSessionWithMessages(sessionID string, userID string) error
	ListMessagesBySession(sessionID string, userID string) ([]models.ChatMessage, error)
	CreateMessage(message *models.ChatMessage) error
}

// ChatService stores the assistant conversation history. Producing the
// assistant's replies is an external collaborator; clients post messages for
// both senders.
type ChatService struct {
	chats ChatStore
	feed  *ChangeFeed
}

func NewChatService(chats ChatStore, feed *ChangeFeed) *ChatService {
	return &ChatService{chats: chats, feed: feed}
}

func (service *ChatService) ListSessionsForUser(userID string) ([]models.ChatSession, error) {
	return service.chats.ListSessionsByUser(userID)
}

func (service *ChatService) CreateSessionForUser(userID string, title string, now time.Time) (models.ChatSession, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = defaultChatTitle
	}
	if len(title) > maxChatTitleLength {
		title = title[:maxChatTitleLength]
	}

	session := models.ChatSession{
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := service.chats.CreateSession(&session); err != nil {
		return models.ChatSession{}, fmt.Errorf("%w: %v", ErrSaveChatFailed, err)
	}

	service.feed.Publish(userID, ChangeEvent{Table: "chat_sessions", Action: ChangeActionCreated, RowID: session.ID})
	return session, nil
}

func (service *ChatService) DeleteSessionForUser(userID string, sessionID string) error {
	_, found, err := service.chats.FindSessionByIDForUser(sessionID, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrChatSessionNotFound
	}

	if err := service.chats.DeleteSessionWithMessages(sessionID, userID); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteChatFailed, err)
	}

	service.feed.Publish(userID, ChangeEvent{Table: "chat_sessions", Action: ChangeActionDeleted, RowID: sessionID})
	return nil
}

func (service *ChatService) ListMessagesForUser(userID string, sessionID string) ([]models.ChatMessage, error) {
	_, found, err := service.chats.FindSessionByIDForUser(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrChatSessionNotFound
	}
	return service.chats.ListMessagesBySession(sessionID, userID)
}

func (service *ChatService) PostMessageForUser(userID string, sessionID string, sender string, message string, now time.Time) (models.ChatMessage, error) {
	if sender != models.ChatSenderUser && sender != models.ChatSenderAssistant {
		return models.ChatMessage{}, ErrInvalidChatSender
	}
	message = strings.TrimSpace(message)
	if message == "" || len(message) > maxChatMessageLength {
		return models.ChatMessage{}, ErrChatMessageRequired
	}

	_, found, err := service.chats.FindSessionByIDForUser(sessionID, userID)
	if err != nil {
		return models.ChatMessage{}, err
	}
	if !found {
		return models.ChatMessage{}, ErrChatSessionNotFound
	}

	entry := models.ChatMessage{
		UserID:    userID,
		SessionID: sessionID,
		Sender:    sender,
		Message:   message,
		CreatedAt: now,
	}
	if err := service.chats.CreateMessage(&entry); err != nil {
		return models.ChatMessage{}, fmt.Errorf("%w: %v", ErrSaveChatFailed, err)
	}
	if err := service.chats.TouchSession(sessionID, now); err != nil {
		return models.ChatMessage{}, fmt.Errorf("%w: %v", ErrSaveChatFailed, err)
	}

	service.feed.Publish(userID, ChangeEvent{Table: "chat_messages", Action: ChangeActionCreated, RowID: entry.ID})
	return entry, nil
}
