package services

import (
	"math"
	"time"

	"github.com/akshaan07/pilltime/internal/models"
)

const (
	RatingExcellent = "Excellent"
	RatingGood      = "Good"
	RatingFair      = "Fair"
	RatingPoor      = "Poor"
)

const (
	healthScoreWindowDays = 7

	hydrationScoreMax = 40
	adherenceScoreMax = 30
	symptomScoreMax   = 30

	// Hydration sub-score when the last 7 days hold no logs at all. Absence
	// of tracking is scored neutrally, not as zero intake.
	hydrationScoreNeutral = 20
)

type HealthScoreFactors struct {
	Hydration         int `json:"hydration"`
	MedicineAdherence int `json:"medicineAdherence"`
	SymptomFrequency  int `json:"symptomFrequency"`
}

type HealthScore struct {
	Score   int                `json:"score"`
	Rating  string             `json:"rating"`
	Factors HealthScoreFactors `json:"factors"`
}

// ComputeHealthScore derives the 0-100 dashboard score from the last seven
// calendar days of data. It is a heuristic, not a medical metric, and never
// fails: empty collections degrade to the documented defaults.
func ComputeHealthScore(
	medicines []models.Medicine,
	hydrationLogs []models.HydrationLog,
	symptomLogs []models.SymptomLog,
	now time.Time,
	location *time.Location,
) HealthScore {
	window := recentDateKeySet(now, location)

	factors := HealthScoreFactors{
		Hydration:         hydrationScore(hydrationLogs, window),
		MedicineAdherence: adherenceScore(medicines),
		SymptomFrequency:  symptomFrequencyScore(symptomLogs, window),
	}
	total := factors.Hydration + factors.MedicineAdherence + factors.SymptomFrequency

	return HealthScore{
		Score:   total,
		Rating:  RatingForScore(total),
		Factors: factors,
	}
}

func RatingForScore(total int) string {
	switch {
	case total >= 85:
		return RatingExcellent
	case total >= 70:
		return RatingGood
	case total >= 50:
		return RatingFair
	default:
		return RatingPoor
	}
}

func recentDateKeySet(now time.Time, location *time.Location) map[string]struct{} {
	keys := LastNDateKeys(now, location, healthScoreWindowDays)
	window := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		window[key] = struct{}{}
	}
	return window
}

func hydrationScore(logs []models.HydrationLog, window map[string]struct{}) int {
	var total float64
	var daysWithData int
	for _, entry := range logs {
		if _, inWindow := window[entry.Date]; !inWindow {
			continue
		}
		total += entry.Liters
		daysWithData++
	}
	if daysWithData == 0 {
		return hydrationScoreNeutral
	}

	averageIntake := total / float64(daysWithData)
	ratio := averageIntake / models.DailyWaterGoalLiters
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round(ratio * hydrationScoreMax))
}

// adherenceScore approximates adherence by the active share of the medicine
// list; actual per-dose taken tracking is not recorded.
func adherenceScore(medicines []models.Medicine) int {
	if len(medicines) == 0 {
		return adherenceScoreMax
	}

	var active int
	for _, medicine := range medicines {
		if medicine.IsActive {
			active++
		}
	}
	rate := float64(active) / float64(len(medicines))
	return int(math.Round(rate * adherenceScoreMax))
}

func symptomFrequencyScore(logs []models.SymptomLog, window map[string]struct{}) int {
	var recent int
	for _, entry := range logs {
		if _, inWindow := window[entry.Date]; inWindow {
			recent++
		}
	}

	switch {
	case recent == 0:
		return symptomScoreMax
	case recent <= 2:
		return 25
	case recent <= 4:
		return 15
	case recent <= 6:
		return 10
	default:
		return 5
	}
}
