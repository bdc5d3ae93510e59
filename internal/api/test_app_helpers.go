package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akshaan07/pilltime/internal/db"
	"github.com/akshaan07/pilltime/internal/models"
	"github.com/akshaan07/pilltime/internal/services"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	app, database, _ := newTestAppWithFeed(t)
	return app, database
}

func newTestAppWithFeed(t *testing.T) (*fiber.App, *gorm.DB, *services.ChangeFeed) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "pilltime-test.db")
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

	feed := services.NewChangeFeed()
	handler := NewHandler(database, testSecretKey, time.UTC, feed, false)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database, feed
}

func createTestUser(t *testing.T, database *gorm.DB, email string, password string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	response := postJSON(t, app, "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie is missing in login response")
	return ""
}

func jsonRequest(t *testing.T, method string, target string, authCookie string, payload any) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		serialized, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(serialized)
	}

	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}
	return request
}

func doRequest(t *testing.T, app *fiber.App, request *http.Request) *http.Response {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	return response
}

func postJSON(t *testing.T, app *fiber.App, target string, authCookie string, payload any) *http.Response {
	t.Helper()
	return doRequest(t, app, jsonRequest(t, http.MethodPost, target, authCookie, payload))
}

func getJSON(t *testing.T, app *fiber.App, target string, authCookie string) *http.Response {
	t.Helper()
	return doRequest(t, app, jsonRequest(t, http.MethodGet, target, authCookie, nil))
}

func decodeJSONBody(t *testing.T, response *http.Response, destination any) {
	t.Helper()

	if err := json.NewDecoder(response.Body).Decode(destination); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
