package api

import (
	"github.com/akshaan07/pilltime/internal/models"
	"github.com/gofiber/fiber/v2"
)

const (
	authCookieName = "pilltime_auth"
	contextUserKey = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
