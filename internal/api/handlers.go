package api

import (
	"time"

	"github.com/akshaan07/pilltime/internal/db"
	"github.com/akshaan07/pilltime/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, feed *services.ChangeFeed, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}
	if feed == nil {
		feed = services.NewChangeFeed()
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
		feed:         feed,
	}

	repositories := db.NewRepositories(database)
	handler.repositories = repositories
	handler.authService = services.NewAuthService(repositories.Users)
	handler.medicineService = services.NewMedicineService(repositories.Medicines, feed)
	handler.hydrationService = services.NewHydrationService(repositories.HydrationLogs, feed, location)
	handler.symptomService = services.NewSymptomService(repositories.SymptomLogs, feed, location)
	handler.doctorService = services.NewDoctorService(repositories.Doctors, feed)
	handler.chatService = services.NewChatService(repositories.Chats, feed)
	handler.dashboardService = services.NewDashboardService(
		repositories.Medicines,
		repositories.HydrationLogs,
		repositories.SymptomLogs,
		location,
	)

	return handler
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}
