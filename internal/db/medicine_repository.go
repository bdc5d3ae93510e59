package db

import (
	"github.com/akshaan07/pilltime/internal/models"
	"gorm.io/gorm"
)

type MedicineRepository struct {
	database *gorm.DB
}

func NewMedicineRepository(database *gorm.DB) *MedicineRepository {
	return &MedicineRepository{database: database}
}

func (repo *MedicineRepository) ListByUser(userID string) ([]models.Medicine, error) {
	medicines := make([]models.Medicine, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

func (repo *MedicineRepository) ListActiveByUser(userID string) ([]models.Medicine, error) {
	medicines := make([]models.Medicine, 0)
	if err := repo.database.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC, id DESC").
		Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

func (repo *MedicineRepository) FindByIDForUser(medicineID string, userID string) (models.Medicine, bool, error) {
	var medicine models.Medicine
	result := repo.database.
		Where("id = ? AND user_id = ?", medicineID, userID).
		Limit(1).
		Find(&medicine)
	if result.Error != nil {
		return models.Medicine{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Medicine{}, false, nil
	}
	return medicine, true, nil
}

func (repo *MedicineRepository) Create(medicine *models.Medicine) error {
	return repo.database.Create(medicine).Error
}

func (repo *MedicineRepository) Save(medicine *models.Medicine) error {
	return repo.database.Save(medicine).Error
}

func (repo *MedicineRepository) Deactivate(medicineID string, userID string) error {
	return repo.database.Model(&models.Medicine{}).
		Where("id = ? AND user_id = ?", medicineID, userID).
		Update("is_active", false).Error
}
