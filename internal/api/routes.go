package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.CurrentUser)

	medicines := api.Group("/medicines", handler.AuthRequired)
	medicines.Get("", handler.ListMedicines)
	medicines.Post("", handler.CreateMedicine)
	medicines.Put("/:id", handler.UpdateMedicine)
	medicines.Delete("/:id", handler.DeleteMedicine)

	hydration := api.Group("/hydration", handler.AuthRequired)
	hydration.Get("", handler.ListHydrationLogs)
	hydration.Post("", handler.AddHydration)
	hydration.Get("/today", handler.HydrationToday)

	symptoms := api.Group("/symptoms", handler.AuthRequired)
	symptoms.Get("", handler.ListSymptomLogs)
	symptoms.Post("", handler.LogSymptoms)

	doctors := api.Group("/doctors", handler.AuthRequired)
	doctors.Get("", handler.ListDoctors)
	doctors.Post("", handler.CreateDoctor)
	doctors.Put("/:id", handler.UpdateDoctor)
	doctors.Delete("/:id", handler.DeleteDoctor)

	chat := api.Group("/chat", handler.AuthRequired)
	chat.Get("/sessions", handler.ListChatSessions)
	chat.Post("/sessions", handler.CreateChatSession)
	chat.Delete("/sessions/:id", handler.DeleteChatSession)
	chat.Get("/sessions/:id/messages", handler.ListChatMessages)
	chat.Post("/sessions/:id/messages", handler.PostChatMessage)

	dashboard := api.Group("/dashboard", handler.AuthRequired)
	dashboard.Get("/overview", handler.DashboardOverview)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpdateProfile)
	profile.Delete("", handler.DeleteAccount)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)

	app.Get("/ws", handler.AuthRequired, handler.ChangeFeedUpgrade, websocket.New(handler.ChangeFeedSocket))
}
