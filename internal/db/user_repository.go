package db

import (
	"github.com/jhachhotu/feedback/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) CountUsers() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedUsername(username string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(username)) = ?", username).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedUsername(username string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(username)) = ?", username).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

func (repo *UserRepository) UpdatePassword(userID uint, passwordHash string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).
		Update("password_hash", passwordHash).Error
}

// ListDirectReports returns the users whose manager reference equals the given
// manager, in stable id order. The roster is non-transitive.
func (repo *UserRepository) ListDirectReports(managerID uint) ([]models.User, error) {
	reports := make([]models.User, 0)
	if err := repo.database.
		Where("manager_id = ?", managerID).
		Order("id ASC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ClearManagerReferences detaches every dependent from the given manager.
// Dependents keep their accounts; only the link is cleared.
func (repo *UserRepository) ClearManagerReferences(managerID uint) error {
	return repo.database.Model(&models.User{}).
		Where("manager_id = ?", managerID).
		Update("manager_id", nil).Error
}

func (repo *UserRepository) DeleteAccountAndDetachReports(userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("manager_id = ?", userID).
			Update("manager_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}
