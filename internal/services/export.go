package services

import (
	"errors"
	"strings"
)

var (
	ErrExportFromDateInvalid = errors.New("invalid export from date")
	ErrExportToDateInvalid   = errors.New("invalid export to date")
	ErrExportRangeInvalid    = errors.New("invalid export range")
)

// ParseExportRange validates optional "YYYY-MM-DD" bounds. Empty strings mean
// an open bound; date keys compare lexicographically.
func ParseExportRange(fromRaw string, toRaw string) (string, string, error) {
	from := strings.TrimSpace(fromRaw)
	to := strings.TrimSpace(toRaw)

	if from != "" && !IsValidDateKey(from) {
		return "", "", ErrExportFromDateInvalid
	}
	if to != "" && !IsValidDateKey(to) {
		return "", "", ErrExportToDateInvalid
	}
	if from != "" && to != "" && from > to {
		return "", "", ErrExportRangeInvalid
	}
	return from, to, nil
}

// DateKeyInRange reports whether a date key falls inside the inclusive
// bounds; empty bounds match everything.
func DateKeyInRange(date string, from string, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}
