package storage

import (
	"path/filepath"
	"testing"
)

func TestJSONStoreLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attune.json")
	s := NewJSONStore(path)

	t.Run("load before init fails", func(t *testing.T) {
		if err := NewJSONStore(path).Load(); err == nil {
			t.Error("expected an error before init")
		}
	})

	t.Run("init writes defaults", func(t *testing.T) {
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
	})

	t.Run("double init fails", func(t *testing.T) {
		if err := NewJSONStore(path).Init(); err == nil {
			t.Error("expected an error for an already-initialized file")
		}
	})

	t.Run("save and reload", func(t *testing.T) {
		settings := DefaultSettings()
		settings.Theme = "dark"
		settings.SoundEnabled = false
		if err := s.SaveSettings(settings); err != nil {
			t.Fatalf("SaveSettings failed: %v", err)
		}

		fresh := NewJSONStore(path)
		if err := fresh.Load(); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		got, err := fresh.GetSettings()
		if err != nil {
			t.Fatalf("GetSettings failed: %v", err)
		}
		if got != settings {
			t.Errorf("settings = %+v, want %+v", got, settings)
		}
	})
}
