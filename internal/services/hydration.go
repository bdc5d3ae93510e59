package services

import (
	"math"
	"time"

	"github.com/akshaan07/pilltime/internal/models"
)

type HydrationSummary struct {
	TodayLiters   float64 `json:"todayLiters"`
	PercentOfGoal int     `json:"percentOfGoal"`
}

// SummarizeHydration reports today's cumulative intake and its share of the
// 3L daily goal. The percentage is deliberately uncapped above 100.
func SummarizeHydration(logs []models.HydrationLog, now time.Time, location *time.Location) HydrationSummary {
	today := DateKey(now, location)

	var todayLiters float64
	for _, entry := range logs {
		if entry.Date == today {
			todayLiters = entry.Liters
			break
		}
	}

	percent := int(math.Round(todayLiters / models.DailyWaterGoalLiters * 100))
	return HydrationSummary{
		TodayLiters:   todayLiters,
		PercentOfGoal: percent,
	}
}
