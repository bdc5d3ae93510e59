package services

import (
	"testing"
	"time"
)

func TestDateKeyUsesLocation(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 2026-03-14 23:30 UTC is already 2026-03-15 in Kolkata.
	value := time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)
	if got := DateKey(value, time.UTC); got != "2026-03-14" {
		t.Fatalf("expected 2026-03-14 in UTC, got %q", got)
	}
	if got := DateKey(value, kolkata); got != "2026-03-15" {
		t.Fatalf("expected 2026-03-15 in Kolkata, got %q", got)
	}
}

func TestLastNDateKeys(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	keys := LastNDateKeys(now, time.UTC, 3)

	want := []string{"2026-03-02", "2026-03-01", "2026-02-28"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("key %d: expected %q, got %q", i, want[i], keys[i])
		}
	}
}

func TestIsValidDateKey(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "2026-03-15", want: true},
		{value: "2026-02-29", want: false},
		{value: "2026-13-01", want: false},
		{value: "15-03-2026", want: false},
		{value: "", want: false},
		{value: "2026-03-15T00:00:00Z", want: false},
	}

	for _, tc := range tests {
		if got := IsValidDateKey(tc.value); got != tc.want {
			t.Fatalf("%q: expected %v, got %v", tc.value, tc.want, got)
		}
	}
}

func TestParseSlotMinutes(t *testing.T) {
	tests := []struct {
		slot    string
		minutes int
		ok      bool
	}{
		{slot: "00:00", minutes: 0, ok: true},
		{slot: "09:30", minutes: 570, ok: true},
		{slot: "23:59", minutes: 1439, ok: true},
		{slot: " 14:00 ", minutes: 840, ok: true},
		{slot: "24:00", ok: false},
		{slot: "12:60", ok: false},
		{slot: "noon", ok: false},
		{slot: "12", ok: false},
		{slot: "", ok: false},
	}

	for _, tc := range tests {
		minutes, ok := ParseSlotMinutes(tc.slot)
		if ok != tc.ok {
			t.Fatalf("%q: expected ok=%v, got %v", tc.slot, tc.ok, ok)
		}
		if ok && minutes != tc.minutes {
			t.Fatalf("%q: expected %d minutes, got %d", tc.slot, tc.minutes, minutes)
		}
	}
}

func TestFormatSlot12Hour(t *testing.T) {
	tests := []struct {
		slot string
		want string
	}{
		{slot: "00:00", want: "12:00 AM"},
		{slot: "00:05", want: "12:05 AM"},
		{slot: "09:30", want: "9:30 AM"},
		{slot: "12:00", want: "12:00 PM"},
		{slot: "12:45", want: "12:45 PM"},
		{slot: "13:05", want: "1:05 PM"},
		{slot: "23:59", want: "11:59 PM"},
		{slot: "not-a-slot", want: "not-a-slot"},
	}

	for _, tc := range tests {
		if got := FormatSlot12Hour(tc.slot); got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.slot, tc.want, got)
		}
	}
}
