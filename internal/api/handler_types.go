package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jhachhotu/feedback/internal/db"
	"github.com/jhachhotu/feedback/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db               *gorm.DB
	secretKey        []byte
	repositories     *db.Repositories
	authService      *services.AuthService
	dashboardService *services.DashboardService
	loginLimiter     *attemptLimiter
}

const (
	accessTokenTTL  = 30 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type authClaims struct {
	UserID    uint   `json:"uid"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func NewHandler(database *gorm.DB, secretKey string) *Handler {
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		loginLimiter: newAttemptLimiter(),
	}
	return handler.withDependencies(database)
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.dashboardService = services.NewDashboardService(handler.repositories.Users, handler.repositories.Feedbacks)
	return handler
}
