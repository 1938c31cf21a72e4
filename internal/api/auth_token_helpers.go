package api

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jhachhotu/feedback/internal/models"
)

func (handler *Handler) buildAccessToken(user *models.User) (string, error) {
	return handler.buildToken(user, tokenTypeAccess, accessTokenTTL)
}

func (handler *Handler) buildRefreshToken(user *models.User) (string, error) {
	return handler.buildToken(user, tokenTypeRefresh, refreshTokenTTL)
}

func (handler *Handler) buildToken(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := authClaims{
		UserID:    user.ID,
		Role:      user.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}
