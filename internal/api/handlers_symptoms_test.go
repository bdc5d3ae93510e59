package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/akshaan07/pilltime/internal/models"
)

func TestLogSymptomsReturnsSuggestion(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "user@example.com", "super-secret-password")
	authCookie := loginAndExtractAuthCookie(t, app, "user@example.com", "super-secret-password")

	response := postJSON(t, app, "/api/symptoms", authCookie, map[string]any{
		"symptoms": "I have a bad headache and nausea",
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	var entry models.SymptomLog
	decodeJSONBody(t, response, &entry)
	if !strings.Contains(entry.Suggestions, "quiet, dark room") {
		t.Fatalf("expected headache advice to win over nausea, got %q", entry.Suggestions)
	}
	if entry.Date == "" {
		t.Fatal("expected entry to be stamped with a date key")
	}
}

func TestLogSymptomsRejectsBlankInput(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "user@example.com", "super-secret-password")
	authCookie := loginAndExtractAuthCookie(t, app, "user@example.com", "super-secret-password")

	response := postJSON(t, app, "/api/symptoms", authCookie, map[string]any{"symptoms": "   "})
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestSymptomHistoryIsAppendOnly(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "user@example.com", "super-secret-password")
	authCookie := loginAndExtractAuthCookie(t, app, "user@example.com", "super-secret-password")

	for _, symptoms := range []string{"headache", "fever", "sore ankle"} {
		response := postJSON(t, app, "/api/symptoms", authCookie, map[string]any{"symptoms": symptoms})
		response.Body.Close()
	}

	listResponse := getJSON(t, app, "/api/symptoms", authCookie)
	defer listResponse.Body.Close()

	var logs []models.SymptomLog
	decodeJSONBody(t, listResponse, &logs)
	if len(logs) != 3 {
		t.Fatalf("expected three entries, got %d", len(logs))
	}
}
