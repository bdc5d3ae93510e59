package api

import (
	"errors"

	"github.com/akshaan07/pilltime/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListHydrationLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	logs, err := handler.hydrationService.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not load hydration logs")
	}
	return c.JSON(logs)
}

func (handler *Handler) AddHydration(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload hydrationPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := handler.hydrationService.AddWater(user.ID, payload.Liters, payload.Date, handler.now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidLiters), errors.Is(err, services.ErrInvalidDate):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "could not save hydration log")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) HydrationToday(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summary, err := handler.hydrationService.SummaryForUser(user.ID, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not load hydration summary")
	}
	return c.JSON(summary)
}
