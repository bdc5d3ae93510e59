package api

import (
	"errors"

	"github.com/akshaan07/pilltime/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListDoctors(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	doctors, err := handler.doctorService.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not load doctors")
	}
	return c.JSON(doctors)
}

func (handler *Handler) CreateDoctor(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload doctorPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	doctor, err := handler.doctorService.CreateForUser(user.ID, services.DoctorInput{
		Name:            payload.Name,
		Speciality:      payload.Speciality,
		Contact:         payload.Contact,
		AppointmentDate: payload.AppointmentDate,
	}, handler.now())
	if err != nil {
		return doctorErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doctor)
}

func (handler *Handler) UpdateDoctor(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload doctorPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	doctor, err := handler.doctorService.UpdateForUser(user.ID, c.Params("id"), services.DoctorInput{
		Name:            payload.Name,
		Speciality:      payload.Speciality,
		Contact:         payload.Contact,
		AppointmentDate: payload.AppointmentDate,
	})
	if err != nil {
		return doctorErrorResponse(c, err)
	}
	return c.JSON(doctor)
}

func (handler *Handler) DeleteDoctor(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.doctorService.DeleteForUser(user.ID, c.Params("id")); err != nil {
		return doctorErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

func doctorErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrDoctorNotFound):
		return apiError(c, fiber.StatusNotFound, "doctor not found")
	case errors.Is(err, services.ErrDoctorNameRequired),
		errors.Is(err, services.ErrInvalidAppointmentDate):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "could not save doctor")
	}
}
