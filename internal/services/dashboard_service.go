package services

import (
	"time"

	"github.com/akshaan07/pilltime/internal/models"
)

type DashboardMedicineReader interface {
	ListByUser(userID string) ([]models.Medicine, error)
}

type DashboardHydrationReader interface {
	ListByUser(userID string) ([]models.HydrationLog, error)
}

type DashboardSymptomReader interface {
	ListByUser(userID string) ([]models.SymptomLog, error)
}

type DashboardService struct {
	medicines DashboardMedicineReader
	hydration DashboardHydrationReader
	symptoms  DashboardSymptomReader
	location  *time.Location
}

type DashboardOverview struct {
	HealthScore HealthScore      `json:"health_score"`
	Reminders   []Reminder       `json:"upcoming_reminders"`
	Hydration   HydrationSummary `json:"hydration"`
}

func NewDashboardService(
	medicines DashboardMedicineReader,
	hydration DashboardHydrationReader,
	symptoms DashboardSymptomReader,
	location *time.Location,
) *DashboardService {
	return &DashboardService{
		medicines: medicines,
		hydration: hydration,
		symptoms:  symptoms,
		location:  location,
	}
}

// BuildOverview is the single recompute pass behind the dashboard: one read
// of the three collections, three independent pure derivations. Repeated
// invocations are idempotent.
func (service *DashboardService) BuildOverview(userID string, now time.Time) (DashboardOverview, error) {
	medicines, err := service.medicines.ListByUser(userID)
	if err != nil {
		return DashboardOverview{}, err
	}
	hydrationLogs, err := service.hydration.ListByUser(userID)
	if err != nil {
		return DashboardOverview{}, err
	}
	symptomLogs, err := service.symptoms.ListByUser(userID)
	if err != nil {
		return DashboardOverview{}, err
	}

	return DashboardOverview{
		HealthScore: ComputeHealthScore(medicines, hydrationLogs, symptomLogs, now, service.location),
		Reminders:   UpcomingReminders(medicines, now, service.location),
		Hydration:   SummarizeHydration(hydrationLogs, now, service.location),
	}, nil
}
