package storage

import (
	"errors"
	"testing"

	"github.com/julianstephens/attune/internal/models"
)

// mockProvider counts writes for the saver tests.
type mockProvider struct {
	Provider

	saves   int
	lastSet models.Settings
	fail    bool
}

func (m *mockProvider) SaveSettings(s models.Settings) error {
	if m.fail {
		return errors.New("write failed")
	}
	m.saves++
	m.lastSet = s
	return nil
}

func TestSaverSkipsUnchangedSettings(t *testing.T) {
	mock := &mockProvider{}
	saver := NewSaver(mock)

	settings := DefaultSettings()
	if err := saver.SaveSettings(settings); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := saver.SaveSettings(settings); err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if mock.saves != 1 {
		t.Errorf("saves = %d, identical settings must not be re-written", mock.saves)
	}

	settings.Theme = "dark"
	if err := saver.SaveSettings(settings); err != nil {
		t.Fatalf("changed save failed: %v", err)
	}
	if mock.saves != 2 {
		t.Errorf("saves = %d, want 2 after a change", mock.saves)
	}
	if mock.lastSet.Theme != "dark" {
		t.Errorf("written settings = %+v", mock.lastSet)
	}
}

func TestSaverRetriesAfterFailure(t *testing.T) {
	mock := &mockProvider{fail: true}
	saver := NewSaver(mock)

	settings := DefaultSettings()
	if err := saver.SaveSettings(settings); err == nil {
		t.Fatal("expected the write error to surface")
	}

	// The failed write must not poison the hash; the retry goes through.
	mock.fail = false
	if err := saver.SaveSettings(settings); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if mock.saves != 1 {
		t.Errorf("saves = %d, want 1", mock.saves)
	}
}
