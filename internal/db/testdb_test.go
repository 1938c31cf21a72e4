package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jhachhotu/feedback/internal/models"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "feedback-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

func createTestUser(t *testing.T, repo *UserRepository, username string, role string, managerID *uint) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         role,
		ManagerID:    managerID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.Create(&user); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}
