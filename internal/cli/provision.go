package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhachhotu/feedback/internal/db"
	"github.com/jhachhotu/feedback/internal/models"
	"github.com/jhachhotu/feedback/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunCreateUserCommand provisions an account with a generated temporary
// password. Onboarding stays an operator action; there is no self-signup.
func RunCreateUserCommand(dbPath string, username string, email string, role string, managerUsername string) error {
	normalizedUsername := strings.ToLower(strings.TrimSpace(username))
	if normalizedUsername == "" {
		return errors.New("username is required")
	}
	if !models.IsKnownRole(role) {
		return fmt.Errorf("unknown role %q (expected manager or employee)", role)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	users := db.NewUserRepository(database)

	exists, err := users.ExistsByNormalizedUsername(normalizedUsername)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if exists {
		return fmt.Errorf("user %s already exists", normalizedUsername)
	}

	var managerID *uint
	if managerUsername != "" {
		manager, err := resolveManager(users, managerUsername)
		if err != nil {
			return err
		}
		managerID = &manager.ID
	}

	temporaryPassword, err := generateTemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	user := models.User{
		Username:     normalizedUsername,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(passwordHash),
		Role:         role,
		ManagerID:    managerID,
		CreatedAt:    time.Now(),
	}
	if err := users.Create(&user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	fmt.Printf("Created %s %s (ID: %d)\n", role, user.Username, user.ID)
	fmt.Printf("Temporary password: %s\n", temporaryPassword)
	return nil
}

// RunCheckTeamCommand prints a manager's direct reports.
func RunCheckTeamCommand(dbPath string, username string) error {
	normalizedUsername := strings.ToLower(strings.TrimSpace(username))
	if normalizedUsername == "" {
		return errors.New("username is required")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	users := db.NewUserRepository(database)

	manager, err := users.FindByNormalizedUsername(normalizedUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s not found", normalizedUsername)
		}
		return fmt.Errorf("load user: %w", err)
	}
	if manager.Role != models.RoleManager {
		return fmt.Errorf("%s is not a manager", normalizedUsername)
	}

	roster, err := users.ListDirectReports(manager.ID)
	if err != nil {
		return fmt.Errorf("load team: %w", err)
	}

	fmt.Printf("Manager: %s (ID: %d)\n", manager.Username, manager.ID)
	fmt.Println("Team Members:")
	if len(roster) == 0 {
		fmt.Println("  No team members found")
		return nil
	}
	for _, member := range roster {
		fmt.Printf("  - %s (ID: %d) - %s\n", member.Username, member.ID, member.Email)
	}
	return nil
}

// RunSeedDemoCommand creates the manager1/employee1/employee2 trio used for
// API testing, all with the password 12345.
func RunSeedDemoCommand(dbPath string) error {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	users := db.NewUserRepository(database)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("12345"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	manager, err := ensureSeedUser(users, models.User{
		Username:     "manager1",
		Email:        "manager1@example.com",
		PasswordHash: string(passwordHash),
		Role:         models.RoleManager,
	})
	if err != nil {
		return err
	}

	for _, username := range []string{"employee1", "employee2"} {
		managerID := manager.ID
		if _, err := ensureSeedUser(users, models.User{
			Username:     username,
			Email:        username + "@example.com",
			PasswordHash: string(passwordHash),
			Role:         models.RoleEmployee,
			ManagerID:    &managerID,
		}); err != nil {
			return err
		}
	}

	fmt.Println("Demo users ready:")
	fmt.Println("  manager1 / 12345")
	fmt.Println("  employee1 / 12345")
	fmt.Println("  employee2 / 12345")
	return nil
}

func resolveManager(users *db.UserRepository, managerUsername string) (models.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(managerUsername))
	manager, err := users.FindByNormalizedUsername(normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, fmt.Errorf("manager %s not found", normalized)
		}
		return models.User{}, fmt.Errorf("load manager: %w", err)
	}
	if manager.Role != models.RoleManager {
		return models.User{}, fmt.Errorf("%s is not a manager", normalized)
	}
	return manager, nil
}

func ensureSeedUser(users *db.UserRepository, seed models.User) (models.User, error) {
	existing, err := users.FindByNormalizedUsername(seed.Username)
	if err == nil {
		existing.PasswordHash = seed.PasswordHash
		existing.Role = seed.Role
		existing.ManagerID = seed.ManagerID
		if err := users.Save(&existing); err != nil {
			return models.User{}, fmt.Errorf("update %s: %w", seed.Username, err)
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, fmt.Errorf("load %s: %w", seed.Username, err)
	}

	seed.CreatedAt = time.Now()
	if err := users.Create(&seed); err != nil {
		return models.User{}, fmt.Errorf("create %s: %w", seed.Username, err)
	}
	return seed, nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
