package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhachhotu/feedback/internal/services"
	"golang.org/x/crypto/bcrypt"
)

const (
	loginAttemptsLimit  = 8
	loginAttemptsWindow = 15 * time.Minute
)

func (handler *Handler) Login(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptsLimit, loginAttemptsWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.FindByNormalizedUsername(credentials.Username)
	if err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	handler.loginLimiter.reset(limiterKey)

	accessToken, err := handler.buildAccessToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	refreshToken, err := handler.buildRefreshToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"access":  accessToken,
		"refresh": refreshToken,
		"user":    user,
	})
}

func (handler *Handler) Refresh(c *fiber.Ctx) error {
	rawToken, err := parseRefreshInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	claims, err := handler.parseToken(rawToken, tokenTypeRefresh)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid refresh token")
	}

	user, err := handler.authService.FindByID(claims.UserID)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid refresh token")
	}

	accessToken, err := handler.buildAccessToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to refresh session")
	}

	return c.JSON(fiber.Map{"access": accessToken})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}

func (handler *Handler) Team(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := services.CanViewTeamRoster(user); err != nil {
		return respondPolicyError(c, err)
	}

	roster, err := handler.repositories.Users.ListDirectReports(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch team")
	}

	return c.JSON(roster)
}
