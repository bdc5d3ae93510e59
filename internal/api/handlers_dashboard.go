package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) DashboardOverview(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	overview, err := handler.dashboardService.BuildOverview(user.ID, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not build dashboard overview")
	}
	return c.JSON(overview)
}
