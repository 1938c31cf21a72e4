package db

import (
	"time"

	"github.com/jhachhotu/feedback/internal/models"
	"github.com/jhachhotu/feedback/internal/services"
	"gorm.io/gorm"
)

type FeedbackRepository struct {
	database *gorm.DB
}

func NewFeedbackRepository(database *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{database: database}
}

// FindByScope returns the records permitted by the given scope, newest first.
// The scope comes from the access policy; the repository applies it blindly.
func (repo *FeedbackRepository) FindByScope(scope services.FeedbackScope) ([]models.Feedback, error) {
	query := repo.database.Model(&models.Feedback{})
	if scope.ManagerID != nil {
		query = query.Where("manager_id = ?", *scope.ManagerID)
	}
	if scope.EmployeeID != nil {
		query = query.Where("employee_id = ?", *scope.EmployeeID)
	}

	feedbacks := make([]models.Feedback, 0)
	if err := query.Order("created_at DESC, id DESC").Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (repo *FeedbackRepository) FindByID(feedbackID uint) (models.Feedback, error) {
	var feedback models.Feedback
	if err := repo.database.First(&feedback, feedbackID).Error; err != nil {
		return models.Feedback{}, err
	}
	return feedback, nil
}

func (repo *FeedbackRepository) Create(feedback *models.Feedback) error {
	return repo.database.Create(feedback).Error
}

func (repo *FeedbackRepository) CountByEmployee(employeeID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Feedback{}).
		Where("employee_id = ?", employeeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Acknowledge flips the acknowledged flag with a guarded single-statement
// update, so concurrent calls on the same id cannot race the boolean: the
// first one wins, later ones match zero rows and the record is re-read as is.
// A missing id surfaces gorm.ErrRecordNotFound.
func (repo *FeedbackRepository) Acknowledge(feedbackID uint, now time.Time) (models.Feedback, error) {
	result := repo.database.Model(&models.Feedback{}).
		Where("id = ? AND acknowledged = ?", feedbackID, false).
		Updates(map[string]any{
			"acknowledged":    true,
			"acknowledged_at": now,
		})
	if result.Error != nil {
		return models.Feedback{}, result.Error
	}

	return repo.FindByID(feedbackID)
}
