package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/akshaan07/pilltime/internal/models"
	"github.com/akshaan07/pilltime/internal/services"
	"github.com/gofiber/fiber/v2"
)

var exportCSVHeaders = []string{"Date", "Water (L)", "Symptoms", "Suggestions"}

type exportSnapshot struct {
	medicines []models.Medicine
	hydration []models.HydrationLog
	symptoms  []models.SymptomLog
	doctors   []models.Doctor
}

func (handler *Handler) exportUserAndRange(c *fiber.Ctx) (*models.User, string, string, int, string) {
	user, ok := currentUser(c)
	if !ok {
		return nil, "", "", fiber.StatusUnauthorized, "unauthorized"
	}

	from, to, err := services.ParseExportRange(c.Query("from"), c.Query("to"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrExportFromDateInvalid):
			return nil, "", "", fiber.StatusBadRequest, "invalid from date"
		case errors.Is(err, services.ErrExportToDateInvalid):
			return nil, "", "", fiber.StatusBadRequest, "invalid to date"
		default:
			return nil, "", "", fiber.StatusBadRequest, "invalid range"
		}
	}

	return user, from, to, 0, ""
}

func (handler *Handler) fetchExportData(userID string, from string, to string) (exportSnapshot, error) {
	medicines, err := handler.repositories.Medicines.ListByUser(userID)
	if err != nil {
		return exportSnapshot{}, err
	}
	doctors, err := handler.repositories.Doctors.ListByUser(userID)
	if err != nil {
		return exportSnapshot{}, err
	}

	snapshot := exportSnapshot{medicines: medicines, doctors: doctors}

	if from != "" && to != "" {
		snapshot.hydration, err = handler.repositories.HydrationLogs.ListByUserDateRange(userID, from, to)
		if err != nil {
			return exportSnapshot{}, err
		}
		snapshot.symptoms, err = handler.repositories.SymptomLogs.ListByUserDateRange(userID, from, to)
		if err != nil {
			return exportSnapshot{}, err
		}
		return snapshot, nil
	}

	hydrationLogs, err := handler.repositories.HydrationLogs.ListByUser(userID)
	if err != nil {
		return exportSnapshot{}, err
	}
	symptomLogs, err := handler.repositories.SymptomLogs.ListByUser(userID)
	if err != nil {
		return exportSnapshot{}, err
	}
	for _, entry := range hydrationLogs {
		if services.DateKeyInRange(entry.Date, from, to) {
			snapshot.hydration = append(snapshot.hydration, entry)
		}
	}
	for _, entry := range symptomLogs {
		if services.DateKeyInRange(entry.Date, from, to) {
			snapshot.symptoms = append(snapshot.symptoms, entry)
		}
	}
	return snapshot, nil
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	user, from, to, status, message := handler.exportUserAndRange(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	snapshot, err := handler.fetchExportData(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch logs")
	}
	now := handler.now()

	payload := fiber.Map{
		"exported_at":    now.Format(time.RFC3339),
		"medicines":      snapshot.medicines,
		"hydration_logs": snapshot.hydration,
		"symptom_logs":   snapshot.symptoms,
		"doctors":        snapshot.doctors,
	}

	serialized, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, buildExportFilename(now, "json"))
	return c.Send(serialized)
}

// ExportCSV flattens the dated logs into one row per day; symptom entries on
// the same day are joined with "; ".
func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	user, from, to, status, message := handler.exportUserAndRange(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	snapshot, err := handler.fetchExportData(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch logs")
	}
	now := handler.now()

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(exportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	for _, row := range buildDailyExportRows(snapshot) {
		if err := writer.Write(row); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", buildExportFilename(now, "csv"))
	return c.Send(output.Bytes())
}

func buildDailyExportRows(snapshot exportSnapshot) [][]string {
	type dayRow struct {
		liters      float64
		hasWater    bool
		symptoms    []string
		suggestions []string
	}

	days := make(map[string]*dayRow)
	dayFor := func(date string) *dayRow {
		row, ok := days[date]
		if !ok {
			row = &dayRow{}
			days[date] = row
		}
		return row
	}

	for _, entry := range snapshot.hydration {
		row := dayFor(entry.Date)
		row.liters += entry.Liters
		row.hasWater = true
	}
	for _, entry := range snapshot.symptoms {
		row := dayFor(entry.Date)
		row.symptoms = append(row.symptoms, entry.Symptoms)
		row.suggestions = append(row.suggestions, entry.Suggestions)
	}

	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	rows := make([][]string, 0, len(dates))
	for _, date := range dates {
		row := days[date]
		liters := ""
		if row.hasWater {
			liters = strconv.FormatFloat(row.liters, 'f', -1, 64)
		}
		rows = append(rows, []string{
			date,
			liters,
			strings.Join(row.symptoms, "; "),
			strings.Join(row.suggestions, "; "),
		})
	}
	return rows
}

func buildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("pilltime-export-%s.%s", now.Format("2006-01-02"), extension)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
