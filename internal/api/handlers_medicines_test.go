package api

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/akshaan07/pilltime/internal/models"
)

func TestMedicineCRUDFlow(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "user@example.com", "super-secret-password")
	authCookie := loginAndExtractAuthCookie(t, app, "user@example.com", "super-secret-password")

	createResponse := postJSON(t, app, "/api/medicines", authCookie, map[string]any{
		"name":       "Aspirin",
		"dosage":     "100mg",
		"frequency":  "Twice daily",
		"time_slots": []string{"21:00", "09:00"},
		"notes":      "after meals",
	})
	defer createResponse.Body.Close()

	if createResponse.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", createResponse.StatusCode)
	}

	var created models.Medicine
	decodeJSONBody(t, createResponse, &created)
	if !reflect.DeepEqual(created.TimeSlots, []string{"09:00", "21:00"}) {
		t.Fatalf("expected sorted slots, got %v", created.TimeSlots)
	}
	if !created.IsActive {
		t.Fatal("expected new medicine to be active")
	}

	updateResponse := doRequest(t, app, jsonRequest(t, http.MethodPut, "/api/medicines/"+created.ID, authCookie, map[string]any{
		"name":       "Aspirin Forte",
		"dosage":     "200mg",
		"frequency":  "Once daily",
		"time_slots": []string{"09:00"},
	}))
	defer updateResponse.Body.Close()

	if updateResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", updateResponse.StatusCode)
	}

	var updated models.Medicine
	decodeJSONBody(t, updateResponse, &updated)
	if updated.Name != "Aspirin Forte" || updated.Dosage != "200mg" {
		t.Fatalf("unexpected updated medicine %+v", updated)
	}

	deleteResponse := doRequest(t, app, jsonRequest(t, http.MethodDelete, "/api/medicines/"+created.ID, authCookie, nil))
	defer deleteResponse.Body.Close()

	if deleteResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", deleteResponse.StatusCode)
	}

	listResponse := getJSON(t, app, "/api/medicines", authCookie)
	defer listResponse.Body.Close()

	var medicines []models.Medicine
	decodeJSONBody(t, listResponse, &medicines)
	if len(medicines) != 1 {
		t.Fatalf("expected deactivated row to remain listed, got %d rows", len(medicines))
	}
	if medicines[0].IsActive {
		t.Fatal("expected medicine to be inactive after delete")
	}

	activeResponse := getJSON(t, app, "/api/medicines?active=true", authCookie)
	defer activeResponse.Body.Close()

	var active []models.Medicine
	decodeJSONBody(t, activeResponse, &active)
	if len(active) != 0 {
		t.Fatalf("expected active filter to hide deactivated rows, got %d", len(active))
	}
}

func TestCreateMedicineRejectsInvalidPayload(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "user@example.com", "super-secret-password")
	authCookie := loginAndExtractAuthCookie(t, app, "user@example.com", "super-secret-password")

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{name: "missing name", payload: map[string]any{"frequency": "Once daily", "time_slots": []string{"09:00"}}},
		{name: "bad frequency", payload: map[string]any{"name": "Aspirin", "frequency": "Sometimes", "time_slots": []string{"09:00"}}},
		{name: "no slots", payload: map[string]any{"name": "Aspirin", "frequency": "Once daily", "time_slots": []string{}}},
		{name: "bad slot", payload: map[string]any{"name": "Aspirin", "frequency": "Once daily", "time_slots": []string{"9am"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			response := postJSON(t, app, "/api/medicines", authCookie, tc.payload)
			defer response.Body.Close()

			if response.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", response.StatusCode)
			}
		})
	}
}

func TestMedicinesAreScopedPerUser(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "owner@example.com", "super-secret-password")
	createTestUser(t, database, "other@example.com", "super-secret-password")

	ownerCookie := loginAndExtractAuthCookie(t, app, "owner@example.com", "super-secret-password")
	otherCookie := loginAndExtractAuthCookie(t, app, "other@example.com", "super-secret-password")

	createResponse := postJSON(t, app, "/api/medicines", ownerCookie, map[string]any{
		"name":       "Aspirin",
		"frequency":  "Once daily",
		"time_slots": []string{"09:00"},
	})
	defer createResponse.Body.Close()

	var created models.Medicine
	decodeJSONBody(t, createResponse, &created)

	foreignUpdate := doRequest(t, app, jsonRequest(t, http.MethodPut, "/api/medicines/"+created.ID, otherCookie, map[string]any{
		"name":       "Hijacked",
		"frequency":  "Once daily",
		"time_slots": []string{"09:00"},
	}))
	defer foreignUpdate.Body.Close()

	if foreignUpdate.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 for foreign update, got %d", foreignUpdate.StatusCode)
	}

	otherList := getJSON(t, app, "/api/medicines", otherCookie)
	defer otherList.Body.Close()

	var medicines []models.Medicine
	decodeJSONBody(t, otherList, &medicines)
	if len(medicines) != 0 {
		t.Fatalf("expected empty list for other user, got %d rows", len(medicines))
	}
}
