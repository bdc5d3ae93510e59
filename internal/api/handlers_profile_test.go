package api

import (
	"net/http"
	"testing"

	"github.com/akshaan07/pilltime/internal/models"
)

func TestProfileRoundTrip(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "user@example.com", "super-secret-password")
	authCookie := loginAndExtractAuthCookie(t, app, "user@example.com", "super-secret-password")

	emptyResponse := getJSON(t, app, "/api/profile", authCookie)
	defer emptyResponse.Body.Close()

	if emptyResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for empty profile, got %d", emptyResponse.StatusCode)
	}

	updateResponse := doRequest(t, app, jsonRequest(t, http.MethodPut, "/api/profile", authCookie, map[string]any{
		"name":            "Akshaan",
		"age":             24,
		"medical_history": "none",
	}))
	defer updateResponse.Body.Close()

	if updateResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", updateResponse.StatusCode)
	}

	readBack := getJSON(t, app, "/api/profile", authCookie)
	defer readBack.Body.Close()

	var profile models.Profile
	decodeJSONBody(t, readBack, &profile)
	if profile.Name != "Akshaan" || profile.Age != 24 {
		t.Fatalf("unexpected profile %+v", profile)
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "user@example.com", "super-secret-password")
	authCookie := loginAndExtractAuthCookie(t, app, "user@example.com", "super-secret-password")

	response := doRequest(t, app, jsonRequest(t, http.MethodPut, "/api/profile", authCookie, map[string]any{
		"name": "Akshaan",
		"age":  200,
	}))
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for out-of-range age, got %d", response.StatusCode)
	}
}

func TestDeleteAccountRemovesAllData(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "user@example.com", "super-secret-password")
	authCookie := loginAndExtractAuthCookie(t, app, "user@example.com", "super-secret-password")

	medicineResponse := postJSON(t, app, "/api/medicines", authCookie, map[string]any{
		"name":       "Aspirin",
		"frequency":  "Once daily",
		"time_slots": []string{"09:00"},
	})
	medicineResponse.Body.Close()

	deleteResponse := doRequest(t, app, jsonRequest(t, http.MethodDelete, "/api/profile", authCookie, nil))
	defer deleteResponse.Body.Close()

	if deleteResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", deleteResponse.StatusCode)
	}

	var users int64
	if err := database.Model(&models.User{}).Where("id = ?", user.ID).Count(&users).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if users != 0 {
		t.Fatal("expected user row removed")
	}

	var medicines int64
	if err := database.Model(&models.Medicine{}).Where("user_id = ?", user.ID).Count(&medicines).Error; err != nil {
		t.Fatalf("count medicines: %v", err)
	}
	if medicines != 0 {
		t.Fatal("expected medicines removed with account")
	}

	afterDelete := getJSON(t, app, "/api/auth/me", authCookie)
	defer afterDelete.Body.Close()

	if afterDelete.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 after account deletion, got %d", afterDelete.StatusCode)
	}
}
