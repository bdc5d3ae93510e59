package services

import (
	"sort"
	"time"

	"github.com/akshaan07/pilltime/internal/models"
)

const (
	// ReminderWindowMinutes is the forward-looking window for upcoming doses.
	// Slots earlier in the day than "now" never qualify, even when they would
	// be due again tomorrow; the window does not wrap past midnight.
	ReminderWindowMinutes = 240

	MaxUpcomingReminders = 3
)

type Reminder struct {
	Name   string `json:"name"`
	Time   string `json:"time"`
	Detail string `json:"detail"`
}

// UpcomingReminders selects up to three (medicine, slot) pairs due within the
// next four hours, sorted by slot time. When nothing qualifies it falls back
// to the fixed wellness reminders.
func UpcomingReminders(medicines []models.Medicine, now time.Time, location *time.Location) []Reminder {
	nowMinutes := MinutesSinceMidnight(now, location)

	type candidate struct {
		minutes  int
		reminder Reminder
	}
	candidates := make([]candidate, 0)

	for _, medicine := range medicines {
		if !medicine.IsActive {
			continue
		}
		for _, slot := range medicine.TimeSlots {
			slotMinutes, ok := ParseSlotMinutes(slot)
			if !ok {
				continue
			}
			if slotMinutes < nowMinutes || slotMinutes > nowMinutes+ReminderWindowMinutes {
				continue
			}
			candidates = append(candidates, candidate{
				minutes: slotMinutes,
				reminder: Reminder{
					Name:   medicine.Name,
					Time:   FormatSlot12Hour(slot),
					Detail: reminderDetail(medicine),
				},
			})
		}
	}

	if len(candidates) == 0 {
		return FallbackReminders()
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].minutes < candidates[j].minutes
	})

	reminders := make([]Reminder, 0, MaxUpcomingReminders)
	for _, entry := range candidates {
		reminders = append(reminders, entry.reminder)
		if len(reminders) == MaxUpcomingReminders {
			break
		}
	}
	return reminders
}

func reminderDetail(medicine models.Medicine) string {
	if medicine.Dosage != "" {
		return medicine.Dosage
	}
	return medicine.Frequency
}

// FallbackReminders is the fixed list shown when no dose is due; clients rely
// on the exact text and times.
func FallbackReminders() []Reminder {
	return []Reminder{
		{Name: "Drink Water", Time: "10:00 AM", Detail: "Stay on track with your 3L hydration goal"},
		{Name: "Take a Walk", Time: "5:00 PM", Detail: "Light exercise keeps your routine going"},
		{Name: "Symptom Check-in", Time: "8:00 PM", Detail: "Log how you are feeling today"},
	}
}
