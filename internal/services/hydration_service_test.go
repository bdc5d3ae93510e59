package services

import (
	"errors"
	"testing"
	"time"

	"github.com/akshaan07/pilltime/internal/models"
)

type stubHydrationStore struct {
	logs []models.HydrationLog
}

func (store *stubHydrationStore) ListByUser(userID string) ([]models.HydrationLog, error) {
	result := make([]models.HydrationLog, 0)
	for _, entry := range store.logs {
		if entry.UserID == userID {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (store *stubHydrationStore) FindByUserAndDate(userID string, date string) (models.HydrationLog, bool, error) {
	for _, entry := range store.logs {
		if entry.UserID == userID && entry.Date == date {
			return entry, true, nil
		}
	}
	return models.HydrationLog{}, false, nil
}

func (store *stubHydrationStore) Create(entry *models.HydrationLog) error {
	entry.ID = "log-1"
	store.logs = append(store.logs, *entry)
	return nil
}

func (store *stubHydrationStore) UpdateLiters(entry *models.HydrationLog) error {
	for i := range store.logs {
		if store.logs[i].ID == entry.ID {
			store.logs[i].Liters = entry.Liters
			return nil
		}
	}
	return errors.New("not found")
}

func TestAddWaterAccumulatesOneRowPerDay(t *testing.T) {
	store := &stubHydrationStore{}
	service := NewHydrationService(store, NewChangeFeed(), time.UTC)
	now := time.Date(2026, 3, 15, 13, 0, 0, 0, time.UTC)

	first, err := service.AddWater("user-1", 0.5, "", now)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	if first.Date != "2026-03-15" {
		t.Fatalf("expected today's date key, got %q", first.Date)
	}
	if first.Liters != 0.5 {
		t.Fatalf("expected 0.5 liters, got %.2f", first.Liters)
	}

	second, err := service.AddWater("user-1", 0.25, "", now)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if second.Liters != 0.75 {
		t.Fatalf("expected accumulated 0.75 liters, got %.2f", second.Liters)
	}

	if len(store.logs) != 1 {
		t.Fatalf("expected a single row for the day, got %d", len(store.logs))
	}
}

func TestAddWaterRejectsBadInput(t *testing.T) {
	service := NewHydrationService(&stubHydrationStore{}, NewChangeFeed(), time.UTC)
	now := time.Now()

	if _, err := service.AddWater("user-1", 0, "", now); !errors.Is(err, ErrInvalidLiters) {
		t.Fatalf("expected ErrInvalidLiters for zero, got %v", err)
	}
	if _, err := service.AddWater("user-1", -1, "", now); !errors.Is(err, ErrInvalidLiters) {
		t.Fatalf("expected ErrInvalidLiters for negative, got %v", err)
	}
	if _, err := service.AddWater("user-1", 0.5, "15-03-2026", now); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestAddWaterHonorsExplicitDate(t *testing.T) {
	store := &stubHydrationStore{}
	service := NewHydrationService(store, NewChangeFeed(), time.UTC)
	now := time.Date(2026, 3, 15, 13, 0, 0, 0, time.UTC)

	entry, err := service.AddWater("user-1", 1.0, "2026-03-10", now)
	if err != nil {
		t.Fatalf("add with date: %v", err)
	}
	if entry.Date != "2026-03-10" {
		t.Fatalf("expected explicit date key, got %q", entry.Date)
	}
}
