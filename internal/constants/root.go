package constants

import "time"

const (
	AppName            = "attune"
	DefaultKeyringUser = "gemini-api-key"
	DefaultConfigPath  = "~/.config/attune/attune.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "attune-"
	BackupFileSuffix = ".db"

	// NotificationTTL is how long an in-session notification banner stays visible
	NotificationTTL = 5 * time.Second

	// EnvAPIKey is the environment variable consulted for the Gemini API key
	// when the OS keyring has no entry.
	EnvAPIKey = "ATTUNE_GEMINI_API_KEY"
)

// Default settings values
const (
	DefaultSoundEnabled        = true
	DefaultTheme               = "system"
	DefaultChatPanelWidth      = 600
	DefaultChatPanelHeight     = 600
	DefaultChatTabPanelWidth   = 400
	DefaultChatTabPanelHeight  = 500
	DefaultNotificationsOnExit = true
)
