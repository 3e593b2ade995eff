package models

import "fmt"

// Settings holds the persisted UI preferences. Wellness data itself is
// session-scoped and never persisted; these are the only values that
// survive a restart.
type Settings struct {
	SoundEnabled        bool   `json:"sound_enabled"`         // whether audio cues play
	Theme               string `json:"theme"`                 // "light", "dark", or "system"
	ChatPanelWidth      int    `json:"chat_panel_width"`      // chat panel width in the dashboard context
	ChatPanelHeight     int    `json:"chat_panel_height"`     // chat panel height in the dashboard context
	ChatTabPanelWidth   int    `json:"chat_tab_panel_width"`  // chat panel width in the tab context
	ChatTabPanelHeight  int    `json:"chat_tab_panel_height"` // chat panel height in the tab context
	NotificationsOnExit bool   `json:"notifications_on_exit"` // print pending banners when the session ends
}

// Validate checks theme and panel bounds.
func (s *Settings) Validate() error {
	switch s.Theme {
	case "light", "dark", "system":
	default:
		return fmt.Errorf("invalid theme %q (expected light, dark, or system)", s.Theme)
	}
	for _, dim := range []int{s.ChatPanelWidth, s.ChatPanelHeight, s.ChatTabPanelWidth, s.ChatTabPanelHeight} {
		if dim < 0 {
			return fmt.Errorf("chat panel dimensions cannot be negative")
		}
	}
	return nil
}
