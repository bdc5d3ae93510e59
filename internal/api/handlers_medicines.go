package api

import (
	"errors"

	"github.com/akshaan07/pilltime/internal/models"
	"github.com/akshaan07/pilltime/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListMedicines(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var medicines []models.Medicine
	var err error
	if c.QueryBool("active") {
		medicines, err = handler.medicineService.ListActiveForUser(user.ID)
	} else {
		medicines, err = handler.medicineService.ListForUser(user.ID)
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not load medicines")
	}
	return c.JSON(medicines)
}

func (handler *Handler) CreateMedicine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload medicinePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	medicine, err := handler.medicineService.CreateForUser(user.ID, services.MedicineInput{
		Name:      payload.Name,
		Dosage:    payload.Dosage,
		Frequency: payload.Frequency,
		TimeSlots: payload.TimeSlots,
		Notes:     payload.Notes,
	}, handler.now())
	if err != nil {
		return medicineErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(medicine)
}

func (handler *Handler) UpdateMedicine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload medicinePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	medicine, err := handler.medicineService.UpdateForUser(user.ID, c.Params("id"), services.MedicineInput{
		Name:      payload.Name,
		Dosage:    payload.Dosage,
		Frequency: payload.Frequency,
		TimeSlots: payload.TimeSlots,
		Notes:     payload.Notes,
	}, handler.now())
	if err != nil {
		return medicineErrorResponse(c, err)
	}
	return c.JSON(medicine)
}

func (handler *Handler) DeleteMedicine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.medicineService.DeactivateForUser(user.ID, c.Params("id")); err != nil {
		return medicineErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

func medicineErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMedicineNotFound):
		return apiError(c, fiber.StatusNotFound, "medicine not found")
	case errors.Is(err, services.ErrMedicineNameRequired),
		errors.Is(err, services.ErrInvalidFrequency),
		errors.Is(err, services.ErrTimeSlotRequired),
		errors.Is(err, services.ErrInvalidTimeSlot):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "could not save medicine")
	}
}
