package api

import (
	"time"

	"github.com/akshaan07/pilltime/internal/db"
	"github.com/akshaan07/pilltime/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories *db.Repositories
	feed         *services.ChangeFeed

	authService      *services.AuthService
	medicineService  *services.MedicineService
	hydrationService *services.HydrationService
	symptomService   *services.SymptomService
	doctorService    *services.DoctorService
	chatService      *services.ChatService
	dashboardService *services.DashboardService
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type credentialsInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type medicinePayload struct {
	Name      string   `json:"name"`
	Dosage    string   `json:"dosage"`
	Frequency string   `json:"frequency"`
	TimeSlots []string `json:"time_slots"`
	Notes     string   `json:"notes"`
}

type hydrationPayload struct {
	Liters float64 `json:"liters"`
	Date   string  `json:"date"`
}

type symptomPayload struct {
	Symptoms string `json:"symptoms"`
}

type doctorPayload struct {
	Name            string `json:"name"`
	Speciality      string `json:"speciality"`
	Contact         string `json:"contact"`
	AppointmentDate string `json:"appointment_date"`
}

type chatSessionPayload struct {
	Title string `json:"title"`
}

type chatMessagePayload struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

type profilePayload struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	MedicalHistory string `json:"medical_history"`
}
