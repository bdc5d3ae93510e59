package api

import (
	"net/http"
	"testing"

	"github.com/akshaan07/pilltime/internal/models"
)

func TestRegisterLoginAndCurrentUser(t *testing.T) {
	app, _ := newTestApp(t)

	response := postJSON(t, app, "/api/auth/register", "", map[string]any{
		"email":    "New.User@Example.com",
		"password": "super-secret-password",
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected register status 201, got %d", response.StatusCode)
	}

	var registered models.User
	decodeJSONBody(t, response, &registered)
	if registered.Email != "new.user@example.com" {
		t.Fatalf("expected normalized email, got %q", registered.Email)
	}
	if registered.ID == "" {
		t.Fatal("expected generated user id")
	}

	authCookie := loginAndExtractAuthCookie(t, app, "new.user@example.com", "super-secret-password")

	meResponse := getJSON(t, app, "/api/auth/me", authCookie)
	defer meResponse.Body.Close()

	if meResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected me status 200, got %d", meResponse.StatusCode)
	}

	var me models.User
	decodeJSONBody(t, meResponse, &me)
	if me.ID != registered.ID {
		t.Fatalf("expected same user, got %q and %q", me.ID, registered.ID)
	}
}

func TestRegisterValidation(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "taken@example.com", "super-secret-password")

	tests := []struct {
		name    string
		payload map[string]any
		status  int
	}{
		{
			name:    "missing email",
			payload: map[string]any{"password": "super-secret-password"},
			status:  http.StatusBadRequest,
		},
		{
			name:    "short password",
			payload: map[string]any{"email": "short@example.com", "password": "tiny"},
			status:  http.StatusBadRequest,
		},
		{
			name:    "duplicate email",
			payload: map[string]any{"email": "Taken@Example.com", "password": "super-secret-password"},
			status:  http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			response := postJSON(t, app, "/api/auth/register", "", tc.payload)
			defer response.Body.Close()

			if response.StatusCode != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, response.StatusCode)
			}
		})
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "user@example.com", "super-secret-password")

	response := postJSON(t, app, "/api/auth/login", "", map[string]any{
		"email":    "user@example.com",
		"password": "wrong-password",
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}
}

func TestLoginNormalizesEmail(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "user@example.com", "super-secret-password")

	response := postJSON(t, app, "/api/auth/login", "", map[string]any{
		"email":    "  USER@Example.COM  ",
		"password": "super-secret-password",
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	targets := []string{
		"/api/auth/me",
		"/api/medicines",
		"/api/hydration",
		"/api/symptoms",
		"/api/doctors",
		"/api/chat/sessions",
		"/api/dashboard/overview",
		"/api/profile",
		"/api/export/json",
	}

	for _, target := range targets {
		response := getJSON(t, app, target, "")
		response.Body.Close()

		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s: expected status 401, got %d", target, response.StatusCode)
		}
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "user@example.com", "super-secret-password")
	authCookie := loginAndExtractAuthCookie(t, app, "user@example.com", "super-secret-password")

	response := postJSON(t, app, "/api/auth/logout", authCookie, nil)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			t.Fatalf("expected auth cookie cleared, got %q", cookie.Value)
		}
	}
}

func TestAuthRejectsTamperedToken(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "user@example.com", "super-secret-password")
	authCookie := loginAndExtractAuthCookie(t, app, "user@example.com", "super-secret-password")

	tampered := authCookie[:len(authCookie)-2] + "xx"
	response := getJSON(t, app, "/api/auth/me", tampered)
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for tampered token, got %d", response.StatusCode)
	}
}
