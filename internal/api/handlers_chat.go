package api

import (
	"errors"

	"github.com/akshaan07/pilltime/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListChatSessions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	sessions, err := handler.chatService.ListSessionsForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not load chat sessions")
	}
	return c.JSON(sessions)
}

func (handler *Handler) CreateChatSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload chatSessionPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	session, err := handler.chatService.CreateSessionForUser(user.ID, payload.Title, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not create chat session")
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (handler *Handler) DeleteChatSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.chatService.DeleteSessionForUser(user.ID, c.Params("id")); err != nil {
		if errors.Is(err, services.ErrChatSessionNotFound) {
			return apiError(c, fiber.StatusNotFound, "chat session not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "could not delete chat session")
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

func (handler *Handler) ListChatMessages(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	messages, err := handler.chatService.ListMessagesForUser(user.ID, c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrChatSessionNotFound) {
			return apiError(c, fiber.StatusNotFound, "chat session not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "could not load chat messages")
	}
	return c.JSON(messages)
}

func (handler *Handler) PostChatMessage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload chatMessagePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	message, err := handler.chatService.PostMessageForUser(user.ID, c.Params("id"), payload.Sender, payload.Message, handler.now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChatSessionNotFound):
			return apiError(c, fiber.StatusNotFound, "chat session not found")
		case errors.Is(err, services.ErrInvalidChatSender),
			errors.Is(err, services.ErrChatMessageRequired):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "could not save chat message")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}
