package db

import (
	"github.com/akshaan07/pilltime/internal/models"
	"gorm.io/gorm"
)

type DoctorRepository struct {
	database *gorm.DB
}

func NewDoctorRepository(database *gorm.DB) *DoctorRepository {
	return &DoctorRepository{database: database}
}

func (repo *DoctorRepository) ListByUser(userID string) ([]models.Doctor, error) {
	doctors := make([]models.Doctor, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (repo *DoctorRepository) FindByIDForUser(doctorID string, userID string) (models.Doctor, bool, error) {
	var doctor models.Doctor
	result := repo.database.
		Where("id = ? AND user_id = ?", doctorID, userID).
		Limit(1).
		Find(&doctor)
	if result.Error != nil {
		return models.Doctor{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Doctor{}, false, nil
	}
	return doctor, true, nil
}

func (repo *DoctorRepository) Create(doctor *models.Doctor) error {
	return repo.database.Create(doctor).Error
}

func (repo *DoctorRepository) Save(doctor *models.Doctor) error {
	return repo.database.Save(doctor).Error
}

func (repo *DoctorRepository) Delete(doctorID string, userID string) error {
	return repo.database.
		Where("id = ? AND user_id = ?", doctorID, userID).
		Delete(&models.Doctor{}).Error
}
