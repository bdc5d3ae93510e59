package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/akshaan07/pilltime/internal/models"
)

var (
	ErrInvalidLiters       = errors.New("liters must be positive")
	ErrInvalidDate         = errors.New("invalid date")
	ErrSaveHydrationFailed = errors.New("save hydration log failed")
)

type HydrationStore interface {
	ListByUser(userID string) ([]models.HydrationLog, error)
	FindByUserAndDate(userID string, date string) (models.HydrationLog, bool, error)
	Create(entry *models.HydrationLog) error
	UpdateLiters(entry *models.HydrationLog) error
}

type HydrationService struct {
	logs     HydrationStore
	feed     *ChangeFeed
	location *time.Location
}

func NewHydrationService(logs HydrationStore, feed *ChangeFeed, location *time.Location) *HydrationService {
	return &HydrationService{logs: logs, feed: feed, location: location}
}

func (service *HydrationService) ListForUser(userID string) ([]models.HydrationLog, error) {
	return service.logs.ListByUser(userID)
}

// AddWater upserts the per-day row: the first log of a day inserts it, later
// additions increment the stored liters.
func (service *HydrationService) AddWater(userID string, liters float64, date string, now time.Time) (models.HydrationLog, error) {
	if liters <= 0 {
		return models.HydrationLog{}, ErrInvalidLiters
	}
	if date == "" {
		date = DateKey(now, service.location)
	} else if !IsValidDateKey(date) {
		return models.HydrationLog{}, ErrInvalidDate
	}

	existing, found, err := service.logs.FindByUserAndDate(userID, date)
	if err != nil {
		return models.HydrationLog{}, err
	}

	if found {
		existing.Liters += liters
		if err := service.logs.UpdateLiters(&existing); err != nil {
			return models.HydrationLog{}, fmt.Errorf("%w: %v", ErrSaveHydrationFailed, err)
		}
		service.feed.Publish(userID, ChangeEvent{Table: "hydration_logs", Action: ChangeActionUpdated, RowID: existing.ID})
		return existing, nil
	}

	entry := models.HydrationLog{
		UserID: userID,
		Date:   date,
		Liters: liters,
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.HydrationLog{}, fmt.Errorf("%w: %v", ErrSaveHydrationFailed, err)
	}
	service.feed.Publish(userID, ChangeEvent{Table: "hydration_logs", Action: ChangeActionCreated, RowID: entry.ID})
	return entry, nil
}

func (service *HydrationService) SummaryForUser(userID string, now time.Time) (HydrationSummary, error) {
	logs, err := service.logs.ListByUser(userID)
	if err != nil {
		return HydrationSummary{}, err
	}
	return SummarizeHydration(logs, now, service.location), nil
}
