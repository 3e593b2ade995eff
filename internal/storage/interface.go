package storage

import "github.com/julianstephens/attune/internal/models"

// Provider persists UI preferences. Wellness data (habits, entries, chat) is
// session-scoped and never goes through a Provider.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Utils
	ConfigPath() string
}
