package models

import (
	"fmt"
	"time"
)

// StressEntry records one stress observation. Entries are append-only and
// kept newest-first.
type StressEntry struct {
	ID          string      `json:"id"`
	StressLevel StressLevel `json:"stress_level"`
	Note        string      `json:"note"`
	Date        string      `json:"date"` // YYYY-MM-DD
	Timestamp   time.Time   `json:"timestamp"`
}

// SleepEntry records one night of sleep.
type SleepEntry struct {
	ID              string       `json:"id"`
	Date            string       `json:"date"`    // YYYY-MM-DD
	Bedtime         string       `json:"bedtime"` // HH:MM
	Wakeup          string       `json:"wakeup"`  // HH:MM
	DurationMinutes int          `json:"duration_minutes"`
	Quality         SleepQuality `json:"quality"`
}

// Validate checks the entry's formats and quality rating.
func (e *SleepEntry) Validate() error {
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	if _, err := time.Parse("15:04", e.Bedtime); err != nil {
		return fmt.Errorf("invalid bedtime format (expected HH:MM): %w", err)
	}
	if _, err := time.Parse("15:04", e.Wakeup); err != nil {
		return fmt.Errorf("invalid wakeup format (expected HH:MM): %w", err)
	}
	if !e.Quality.IsValid() {
		return fmt.Errorf("invalid sleep quality %q", e.Quality)
	}
	return nil
}

// SleepDuration computes the minutes between bedtime and wakeup, treating a
// wakeup at or before bedtime as the following day.
func SleepDuration(bedtime, wakeup string) (int, error) {
	bed, err := time.Parse("15:04", bedtime)
	if err != nil {
		return 0, fmt.Errorf("invalid bedtime format (expected HH:MM): %w", err)
	}
	wake, err := time.Parse("15:04", wakeup)
	if err != nil {
		return 0, fmt.Errorf("invalid wakeup format (expected HH:MM): %w", err)
	}
	if !wake.After(bed) {
		wake = wake.Add(24 * time.Hour)
	}
	return int(wake.Sub(bed).Minutes()), nil
}

// JournalEntry is a dated free-form note with a title.
type JournalEntry struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"` // YYYY-MM-DD
}

// Validate checks that the entry has a title and a well-formed date.
func (e *JournalEntry) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("journal entry title cannot be empty")
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	return nil
}
