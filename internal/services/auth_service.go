package services

import "github.com/jhachhotu/feedback/internal/models"

type AuthUserRepository interface {
	ExistsByNormalizedUsername(username string) (bool, error)
	FindByNormalizedUsername(username string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) UsernameExists(username string) (bool, error) {
	return service.users.ExistsByNormalizedUsername(username)
}

func (service *AuthService) CreateUser(user *models.User) error {
	return service.users.Create(user)
}

func (service *AuthService) FindByNormalizedUsername(username string) (models.User, error) {
	return service.users.FindByNormalizedUsername(username)
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) SaveUser(user *models.User) error {
	return service.users.Save(user)
}
