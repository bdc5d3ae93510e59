package services

import (
	"errors"
	"strings"

	"github.com/akshaan07/pilltime/internal/models"
)

var ErrEmailTaken = errors.New("email already registered")

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID string) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (service *AuthService) RegisterUser(user *models.User) error {
	exists, err := service.users.ExistsByNormalizedEmail(NormalizeEmail(user.Email))
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailTaken
	}
	return service.users.Create(user)
}

func (service *AuthService) FindByNormalizedEmail(email string) (models.User, error) {
	return service.users.FindByNormalizedEmail(email)
}

func (service *AuthService) FindByID(userID string) (models.User, error) {
	return service.users.FindByID(userID)
}
