// Package storage persists the application's UI preferences behind a small
// Provider interface with SQLite, JSON-file, and PostgreSQL implementations.
// The provider is chosen from the config target: a postgres:// URL, a .json
// path, or (default) a SQLite database path.
package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/attune/internal/constants"
	"github.com/julianstephens/attune/internal/models"
)

// DefaultSettings returns the preferences written on first init.
func DefaultSettings() models.Settings {
	return models.Settings{
		SoundEnabled:        constants.DefaultSoundEnabled,
		Theme:               constants.DefaultTheme,
		ChatPanelWidth:      constants.DefaultChatPanelWidth,
		ChatPanelHeight:     constants.DefaultChatPanelHeight,
		ChatTabPanelWidth:   constants.DefaultChatTabPanelWidth,
		ChatTabPanelHeight:  constants.DefaultChatTabPanelHeight,
		NotificationsOnExit: constants.DefaultNotificationsOnExit,
	}
}

// ForTarget picks the provider implied by the config target.
func ForTarget(target string) (Provider, error) {
	switch {
	case strings.HasPrefix(target, "postgres://") || strings.HasPrefix(target, "postgresql://"):
		return NewPostgresStore(target)
	case strings.HasSuffix(target, ".json"):
		return NewJSONStore(target), nil
	default:
		return NewSQLiteStore(target), nil
	}
}

// Settings are stored as flat key-value pairs in the database providers; the
// two helpers below are the single place the key names live.

func SettingsPairs(s models.Settings) [][2]string {
	return [][2]string{
		{"sound_enabled", strconv.FormatBool(s.SoundEnabled)},
		{"theme", s.Theme},
		{"chat_panel_width", strconv.Itoa(s.ChatPanelWidth)},
		{"chat_panel_height", strconv.Itoa(s.ChatPanelHeight)},
		{"chat_tab_panel_width", strconv.Itoa(s.ChatTabPanelWidth)},
		{"chat_tab_panel_height", strconv.Itoa(s.ChatTabPanelHeight)},
		{"notifications_on_exit", strconv.FormatBool(s.NotificationsOnExit)},
	}
}

func ApplySettingsPair(s *models.Settings, key, value string) error {
	var err error
	switch key {
	case "sound_enabled":
		s.SoundEnabled = value == "true"
	case "theme":
		s.Theme = value
	case "chat_panel_width":
		s.ChatPanelWidth, err = strconv.Atoi(value)
	case "chat_panel_height":
		s.ChatPanelHeight, err = strconv.Atoi(value)
	case "chat_tab_panel_width":
		s.ChatTabPanelWidth, err = strconv.Atoi(value)
	case "chat_tab_panel_height":
		s.ChatTabPanelHeight, err = strconv.Atoi(value)
	case "notifications_on_exit":
		s.NotificationsOnExit = value == "true"
	}
	if err != nil {
		return fmt.Errorf("parsing %s: %w", key, err)
	}
	return nil
}
