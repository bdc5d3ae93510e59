package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akshaan07/pilltime/internal/models"
)

var (
	ErrSymptomsRequired     = errors.New("symptoms description is required")
	ErrSaveSymptomLogFailed = errors.New("save symptom log failed")
)

const maxSymptomTextLength = 2000

type SymptomLogStore interface {
	ListByUser(userID string) ([]models.SymptomLog, error)
	Create(entry *models.SymptomLog) error
}

type SymptomService struct {
	logs     SymptomLogStore
	feed     *ChangeFeed
	location *time.Location
}

func NewSymptomService(logs SymptomLogStore, feed *ChangeFeed, location *time.Location) *SymptomService {
	return &SymptomService{logs: logs, feed: feed, location: location}
}

func (service *SymptomService) ListForUser(userID string) ([]models.SymptomLog, error) {
	return service.logs.ListByUser(userID)
}

// LogSymptoms appends a dated entry with its advice computed once at creation
// time. Historical entries are never recomputed or edited.
func (service *SymptomService) LogSymptoms(userID string, symptoms string, now time.Time) (models.SymptomLog, error) {
	symptoms = strings.TrimSpace(symptoms)
	if symptoms == "" || len(symptoms) > maxSymptomTextLength {
		return models.SymptomLog{}, ErrSymptomsRequired
	}

	entry := models.SymptomLog{
		UserID:      userID,
		Date:        DateKey(now, service.location),
		Symptoms:    symptoms,
		Suggestions: SuggestionForSymptoms(symptoms),
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.SymptomLog{}, fmt.Errorf("%w: %v", ErrSaveSymptomLogFailed, err)
	}

	service.feed.Publish(userID, ChangeEvent{Table: "symptom_logs", Action: ChangeActionCreated, RowID: entry.ID})
	return entry, nil
}
