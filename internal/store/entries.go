package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/attune/internal/models"
)

// AddStressEntry records a stress observation. Entries are prepended so the
// newest is always first.
func (s *Session) AddStressEntry(level models.StressLevel, note string) models.StressEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry := models.StressEntry{
		ID:          uuid.NewString(),
		StressLevel: level.OrDefault(),
		Note:        note,
		Date:        now.Format("2006-01-02"),
		Timestamp:   now,
	}
	s.stressEntries = append([]models.StressEntry{entry}, s.stressEntries...)
	return entry
}

// StressEntries returns a copy of the stress log, newest first.
func (s *Session) StressEntries() []models.StressEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.StressEntry, len(s.stressEntries))
	copy(out, s.stressEntries)
	return out
}

// AddSleepEntry validates the entry, computes its duration, and appends it.
func (s *Session) AddSleepEntry(entry models.SleepEntry) (models.SleepEntry, error) {
	if err := entry.Validate(); err != nil {
		return models.SleepEntry{}, err
	}
	minutes, err := models.SleepDuration(entry.Bedtime, entry.Wakeup)
	if err != nil {
		return models.SleepEntry{}, err
	}
	entry.ID = uuid.NewString()
	entry.DurationMinutes = minutes

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sleepEntries = append(s.sleepEntries, entry)
	return entry, nil
}

// SleepEntries returns a copy of the sleep log.
func (s *Session) SleepEntries() []models.SleepEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SleepEntry, len(s.sleepEntries))
	copy(out, s.sleepEntries)
	return out
}

// AddJournalEntry validates and stores a journal entry.
func (s *Session) AddJournalEntry(entry models.JournalEntry) (models.JournalEntry, error) {
	if err := entry.Validate(); err != nil {
		return models.JournalEntry{}, err
	}
	entry.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.journalEntries = append(s.journalEntries, entry)
	return entry, nil
}

// UpdateJournalEntry replaces the entry with the same ID.
func (s *Session) UpdateJournalEntry(entry models.JournalEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.journalEntries {
		if s.journalEntries[i].ID == entry.ID {
			s.journalEntries[i] = entry
			return nil
		}
	}
	return fmt.Errorf("%w: journal entry %s", ErrNotFound, entry.ID)
}

// DeleteJournalEntry removes the entry with the given ID.
func (s *Session) DeleteJournalEntry(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.journalEntries {
		if s.journalEntries[i].ID == id {
			s.journalEntries = append(s.journalEntries[:i], s.journalEntries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: journal entry %s", ErrNotFound, id)
}

// JournalEntries returns a copy of the journal.
func (s *Session) JournalEntries() []models.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.JournalEntry, len(s.journalEntries))
	copy(out, s.journalEntries)
	return out
}

// AppendMessage adds a message to the chat transcript and returns it. The
// transcript is append-only; there is no edit or delete.
func (s *Session) AppendMessage(sender models.Sender, text string) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		Text:      strings.TrimRight(text, "\n"),
		Sender:    sender,
		Timestamp: s.now(),
	}
	s.messages = append(s.messages, msg)
	return msg
}

// Messages returns a copy of the chat transcript in order.
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}
