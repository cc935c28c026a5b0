package timeutil

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time within a single day, stored as minutes
// since midnight. Punch records and work schedules keep times as "HH:MM"
// strings; this type owns the parsing and the minute arithmetic.
type TimeOfDay int

// ParseTimeOfDay parses an "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// FromTime projects the HH:MM component of a timestamp, dropping seconds.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// AddMinutes returns the time of day m minutes later. Callers never push
// it past midnight here, so no wrap-around handling.
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	return t + TimeOfDay(m)
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

// Sub returns the difference t - other in whole minutes.
func (t TimeOfDay) Sub(other TimeOfDay) int {
	return int(t) - int(other)
}

// FormatDuration renders a minute count as "HH:MM:00", the format delay
// durations are stored in.
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}

// DateOf truncates a timestamp to its calendar date, keeping the location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
