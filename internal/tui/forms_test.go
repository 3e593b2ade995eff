package tui

import (
	"testing"

	"github.com/julianstephens/attune/internal/storage"
)

func TestSettingsFormRoundTrip(t *testing.T) {
	want := storage.DefaultSettings()
	want.Theme = "dark"
	want.ChatPanelWidth = 720
	want.NotificationsOnExit = false

	got := settingsFromForm(settingsFormFrom(want))
	if got != want {
		t.Errorf("settings after form round-trip = %+v, want %+v", got, want)
	}
}

func TestSettingsFormValidation(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"numeric", "600", true},
		{"zero", "0", true},
		{"negative", "-5", false},
		{"non-numeric", "wide", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDimension(tt.value)
			if (err == nil) != tt.ok {
				t.Errorf("validateDimension(%q) err = %v, want ok=%v", tt.value, err, tt.ok)
			}
		})
	}
}

func TestTabNavigationWraps(t *testing.T) {
	state := StateSettings
	next := (state + 1) % tabCount
	if next != StateChat {
		t.Errorf("next tab after settings = %d, want chat", next)
	}
	prev := (StateChat - 1 + tabCount) % tabCount
	if prev != StateSettings {
		t.Errorf("prev tab before chat = %d, want settings", prev)
	}
}
