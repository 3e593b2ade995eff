package storage

import (
	"path/filepath"
	"testing"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attune.db")

	s := NewSQLiteStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	got, err := s.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got != DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", got)
	}

	settings := DefaultSettings()
	settings.Theme = "light"
	settings.ChatPanelWidth = 800
	settings.NotificationsOnExit = false
	if err := s.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	fresh := NewSQLiteStore(path)
	if err := fresh.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer fresh.Close()

	got, err = fresh.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings after reopen failed: %v", err)
	}
	if got != settings {
		t.Errorf("settings = %+v, want %+v", got, settings)
	}
}

func TestSQLiteStoreLoadUninitialized(t *testing.T) {
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := s.Load(); err == nil {
		t.Error("expected an error for an uninitialized database")
	}
}
