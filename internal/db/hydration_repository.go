package db

import (
	"github.com/akshaan07/pilltime/internal/models"
	"gorm.io/gorm"
)

type HydrationLogRepository struct {
	database *gorm.DB
}

func NewHydrationLogRepository(database *gorm.DB) *HydrationLogRepository {
	return &HydrationLogRepository{database: database}
}

func (repo *HydrationLogRepository) ListByUser(userID string) ([]models.HydrationLog, error) {
	logs := make([]models.HydrationLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *HydrationLogRepository) ListByUserDateRange(userID string, fromDate string, toDate string) ([]models.HydrationLog, error) {
	logs := make([]models.HydrationLog, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, fromDate, toDate).
		Order("date ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *HydrationLogRepository) FindByUserAndDate(userID string, date string) (models.HydrationLog, bool, error) {
	var entry models.HydrationLog
	result := repo.database.
		Where("user_id = ? AND date = ?", userID, date).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.HydrationLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.HydrationLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *HydrationLogRepository) Create(entry *models.HydrationLog) error {
	return repo.database.Create(entry).Error
}

func (repo *HydrationLogRepository) UpdateLiters(entry *models.HydrationLog) error {
	return repo.database.Model(entry).Select("liters").Updates(entry).Error
}
