package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type credentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}

	credentials.Username = strings.ToLower(strings.TrimSpace(credentials.Username))
	credentials.Password = strings.TrimSpace(credentials.Password)

	if credentials.Username == "" || credentials.Password == "" {
		return credentialsInput{}, errors.New("missing credentials")
	}

	return credentials, nil
}

type refreshInput struct {
	Refresh string `json:"refresh"`
}

func parseRefreshInput(c *fiber.Ctx) (string, error) {
	input := refreshInput{}
	if err := c.BodyParser(&input); err != nil {
		return "", err
	}

	token := strings.TrimSpace(input.Refresh)
	if token == "" {
		return "", errors.New("missing refresh token")
	}
	return token, nil
}

func parseQueryFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}
