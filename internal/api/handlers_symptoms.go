package api

import (
	"errors"

	"github.com/akshaan07/pilltime/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListSymptomLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	logs, err := handler.symptomService.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not load symptom logs")
	}
	return c.JSON(logs)
}

func (handler *Handler) LogSymptoms(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload symptomPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := handler.symptomService.LogSymptoms(user.ID, payload.Symptoms, handler.now())
	if err != nil {
		if errors.Is(err, services.ErrSymptomsRequired) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "could not save symptom log")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}
