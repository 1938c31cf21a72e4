package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	Feedbacks *FeedbackRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Feedbacks: NewFeedbackRepository(database),
	}
}
