package models

import "time"

const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// User covers both roles with the same shape; Role distinguishes them and
// ManagerID links an employee to the manager they report to. The manager
// chain forms a forest, never a cycle.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"not null;default:employee" json:"role"`
	ManagerID    *uint     `gorm:"index" json:"manager"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

func IsKnownRole(role string) bool {
	return role == RoleManager || role == RoleEmployee
}
