package store

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/attune/internal/models"
)

func TestAddStressEntry(t *testing.T) {
	s := NewSession()
	s.now = func() time.Time { return time.Date(2026, 3, 14, 21, 30, 0, 0, time.UTC) }

	first := s.AddStressEntry(models.StressHigh, "work deadline")
	if first.Date != "2026-03-14" {
		t.Errorf("date = %q", first.Date)
	}

	second := s.AddStressEntry(models.StressLow, "better now")
	entries := s.StressEntries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].ID != second.ID {
		t.Error("newest entry should be first")
	}

	t.Run("unknown level defaults to moderate", func(t *testing.T) {
		e := s.AddStressEntry(models.StressLevel("catastrophic"), "")
		if e.StressLevel != models.StressModerate {
			t.Errorf("level = %v, want moderate", e.StressLevel)
		}
	})
}

func TestAddSleepEntry(t *testing.T) {
	s := NewSession()

	t.Run("overnight duration wraps", func(t *testing.T) {
		e, err := s.AddSleepEntry(models.SleepEntry{
			Date: "2026-03-14", Bedtime: "23:30", Wakeup: "07:00", Quality: models.SleepGood,
		})
		if err != nil {
			t.Fatalf("AddSleepEntry failed: %v", err)
		}
		if e.DurationMinutes != 450 {
			t.Errorf("duration = %d minutes, want 450", e.DurationMinutes)
		}
	})

	t.Run("invalid quality rejected", func(t *testing.T) {
		_, err := s.AddSleepEntry(models.SleepEntry{
			Date: "2026-03-14", Bedtime: "23:30", Wakeup: "07:00", Quality: "amazing",
		})
		if err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("invalid time format rejected", func(t *testing.T) {
		_, err := s.AddSleepEntry(models.SleepEntry{
			Date: "2026-03-14", Bedtime: "11:30 PM", Wakeup: "07:00", Quality: models.SleepGood,
		})
		if err == nil {
			t.Error("expected validation error")
		}
	})
}

func TestJournalCRUD(t *testing.T) {
	s := NewSession()

	entry, err := s.AddJournalEntry(models.JournalEntry{
		Title: "Rough morning", Content: "Traffic again.", Date: "2026-03-14",
	})
	if err != nil {
		t.Fatalf("AddJournalEntry failed: %v", err)
	}

	entry.Content = "Traffic again, but the afternoon improved."
	if err := s.UpdateJournalEntry(entry); err != nil {
		t.Fatalf("UpdateJournalEntry failed: %v", err)
	}
	if got := s.JournalEntries()[0].Content; got != entry.Content {
		t.Errorf("content = %q", got)
	}

	if err := s.DeleteJournalEntry(entry.ID); err != nil {
		t.Fatalf("DeleteJournalEntry failed: %v", err)
	}
	if len(s.JournalEntries()) != 0 {
		t.Error("journal should be empty after delete")
	}

	t.Run("update missing entry", func(t *testing.T) {
		err := s.UpdateJournalEntry(models.JournalEntry{ID: "missing", Title: "x", Date: "2026-03-14"})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("empty title rejected", func(t *testing.T) {
		if _, err := s.AddJournalEntry(models.JournalEntry{Date: "2026-03-14"}); err == nil {
			t.Error("expected validation error")
		}
	})
}

func TestAppendMessage(t *testing.T) {
	s := NewSession()

	s.AppendMessage(models.SenderUser, "hello")
	s.AppendMessage(models.SenderBot, "Hi! How are you feeling today?\n")

	msgs := s.Messages()
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].Sender != models.SenderUser || msgs[1].Sender != models.SenderBot {
		t.Error("senders out of order")
	}
	if msgs[1].Text != "Hi! How are you feeling today?" {
		t.Errorf("trailing newline not trimmed: %q", msgs[1].Text)
	}
}
