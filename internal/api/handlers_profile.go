package api

import (
	"strings"

	"github.com/akshaan07/pilltime/internal/models"
	"github.com/gofiber/fiber/v2"
)

const (
	maxProfileNameLength = 120
	maxProfileAge        = 150
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, found, err := handler.repositories.Users.LoadProfile(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not load profile")
	}
	if !found {
		profile = models.Profile{UserID: user.ID}
	}
	return c.JSON(profile)
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload profilePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	payload.Name = strings.TrimSpace(payload.Name)
	if len(payload.Name) > maxProfileNameLength {
		return apiError(c, fiber.StatusBadRequest, "name is too long")
	}
	if payload.Age < 0 || payload.Age > maxProfileAge {
		return apiError(c, fiber.StatusBadRequest, "age is out of range")
	}

	profile := models.Profile{
		UserID:         user.ID,
		Name:           payload.Name,
		Age:            payload.Age,
		MedicalHistory: strings.TrimSpace(payload.MedicalHistory),
		UpdatedAt:      handler.now(),
	}
	if err := handler.repositories.Users.SaveProfile(&profile); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not save profile")
	}
	return c.JSON(profile)
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.repositories.Users.DeleteAccountAndRelatedData(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not delete account")
	}
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"status": "deleted"})
}
