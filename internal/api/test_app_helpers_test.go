package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhachhotu/feedback/internal/db"
	"github.com/jhachhotu/feedback/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testPassword = "12345"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "feedback-api-test.db")
	database, err := db.OpenSQLite(databasePath)
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

	handler := NewHandler(database, "test-secret-key")

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func createAPITestUser(t *testing.T, database *gorm.DB, username string, role string, managerID *uint) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(passwordHash),
		Role:         role,
		ManagerID:    managerID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func jsonRequest(t *testing.T, method string, path string, payload any, accessToken string) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		request.Header.Set("Authorization", "Bearer "+accessToken)
	}
	return request
}

func performRequest(t *testing.T, app *fiber.App, request *http.Request, expectedStatus int) []byte {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if response.StatusCode != expectedStatus {
		t.Fatalf("%s %s expected status %d, got %d (body: %s)",
			request.Method, request.URL.Path, expectedStatus, response.StatusCode, string(body))
	}
	return body
}

func decodeJSON(t *testing.T, body []byte, target any) {
	t.Helper()
	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("decode response %s: %v", string(body), err)
	}
}

func loginAccessToken(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	body := performRequest(t, app,
		jsonRequest(t, http.MethodPost, "/auth/login", fiber.Map{
			"username": username,
			"password": testPassword,
		}, ""),
		http.StatusOK)

	tokens := struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}{}
	decodeJSON(t, body, &tokens)
	if tokens.Access == "" || tokens.Refresh == "" {
		t.Fatalf("expected token pair, got %s", string(body))
	}
	return tokens.Access
}
