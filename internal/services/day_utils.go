package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateKeyLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DateKey renders a timestamp as the "YYYY-MM-DD" calendar key logs are stored
// under.
func DateKey(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format(dateKeyLayout)
}

// LastNDateKeys returns the calendar keys for today and the n-1 preceding
// days, newest first.
func LastNDateKeys(now time.Time, location *time.Location, days int) []string {
	today := DateAtLocation(now, location)
	keys := make([]string, 0, days)
	for offset := 0; offset < days; offset++ {
		keys = append(keys, today.AddDate(0, 0, -offset).Format(dateKeyLayout))
	}
	return keys
}

func IsValidDateKey(value string) bool {
	_, err := time.Parse(dateKeyLayout, value)
	return err == nil
}

func MinutesSinceMidnight(value time.Time, location *time.Location) int {
	localized := value
	if location != nil {
		localized = value.In(location)
	}
	return localized.Hour()*60 + localized.Minute()
}

// ParseSlotMinutes converts an "HH:MM" time slot into minutes since midnight.
func ParseSlotMinutes(slot string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(slot), ":")
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// FormatSlot12Hour renders an "HH:MM" slot as "h:mm AM/PM". Malformed slots
// are returned unchanged.
func FormatSlot12Hour(slot string) string {
	minutes, ok := ParseSlotMinutes(slot)
	if !ok {
		return slot
	}
	hour := minutes / 60
	minute := minutes % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	displayHour := hour
	if hour > 12 {
		displayHour = hour - 12
	} else if hour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minute, period)
}
