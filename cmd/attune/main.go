package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/attune/internal/cli"
	"github.com/julianstephens/attune/internal/constants"
	apperrors "github.com/julianstephens/attune/internal/errors"
	"github.com/julianstephens/attune/internal/logger"
	"github.com/julianstephens/attune/internal/notify"
	"github.com/julianstephens/attune/internal/storage"
	"github.com/julianstephens/attune/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Preferences target: a database path, a .json path, or a postgres:// URL." type:"path" default:"~/.config/attune/attune.db"`
	Debug   bool   `help:"Enable debug logging."`

	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Chat   cli.ChatCmd   `cmd:"" help:"Chat with the assistant in line mode."`
	Init   cli.InitCmd   `cmd:"" help:"Initialize the preferences store."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`

	Settings struct {
		List cli.SettingsListCmd `cmd:"" help:"List all settings."`
		Get  cli.SettingsGetCmd  `cmd:"" help:"Show one setting."`
		Set  cli.SettingsSetCmd  `cmd:"" help:"Update one setting."`
	} `cmd:"" help:"Manage persisted UI preferences."`

	Keyring struct {
		Set    cli.KeyringSetCmd    `cmd:"" help:"Store the Gemini API key in the OS keyring."`
		Delete cli.KeyringDeleteCmd `cmd:"" help:"Remove the Gemini API key from the OS keyring."`
		Status cli.KeyringStatusCmd `cmd:"" help:"Show keyring availability and key status."`
	} `cmd:"" help:"Manage the Gemini API key."`

	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a preferences backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore a preferences backup."`
	} `cmd:"" help:"Manage preferences backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal wellness companion: chat, habits, stress, sleep, and journaling"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir(CLI.Config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	provider, err := storage.ForTarget(CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:         provider,
		Session:       store.NewSession(),
		Notifications: notify.NewCenter(),
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}

// configDir returns the directory logs live in. Postgres targets have no
// local data directory, so those fall back to the default config path.
func configDir(target string) string {
	if strings.HasPrefix(target, "postgres://") || strings.HasPrefix(target, "postgresql://") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		return filepath.Join(home, ".config", constants.AppName)
	}
	return filepath.Dir(target)
}
