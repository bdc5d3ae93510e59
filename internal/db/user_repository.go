package db

import (
	"github.com/akshaan07/pilltime/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID string) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, "id = ?", userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) LoadProfile(userID string) (models.Profile, bool, error) {
	var profile models.Profile
	result := repo.database.Where("user_id = ?", userID).Limit(1).Find(&profile)
	if result.Error != nil {
		return models.Profile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Profile{}, false, nil
	}
	return profile, true, nil
}

func (repo *UserRepository) SaveProfile(profile *models.Profile) error {
	return repo.database.Save(profile).Error
}

func (repo *UserRepository) DeleteAccountAndRelatedData(userID string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&models.Medicine{},
			&models.HydrationLog{},
			&models.SymptomLog{},
			&models.Doctor{},
			&models.ChatMessage{},
			&models.ChatSession{},
			&models.Profile{},
		} {
			if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.User{}, "id = ?", userID).Error
	})
}
