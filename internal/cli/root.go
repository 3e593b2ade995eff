package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/attune/internal/assistant"
	"github.com/julianstephens/attune/internal/backup"
	"github.com/julianstephens/attune/internal/keyring"
	"github.com/julianstephens/attune/internal/logger"
	"github.com/julianstephens/attune/internal/notify"
	"github.com/julianstephens/attune/internal/storage"
	"github.com/julianstephens/attune/internal/store"
)

// Context carries the shared dependencies into every command. The session and
// notification center are per-process; only Store touches disk.
type Context struct {
	Store         storage.Provider
	Session       *store.Session
	Notifications *notify.Center

	orchestrator *assistant.Orchestrator
}

// Orchestrator builds the chat pipeline on first use. The Gemini API key is
// resolved from the OS keyring or the environment; without one the assistant
// runs entirely on local heuristics.
func (c *Context) Orchestrator() *assistant.Orchestrator {
	if c.orchestrator == nil {
		var client assistant.Client
		if key := keyring.ResolveAPIKey(); key != "" {
			client = assistant.NewGeminiClient(assistant.DefaultGeminiConfig(key))
		} else {
			logger.Debug("no Gemini API key configured, assistant runs on local heuristics")
		}
		a := assistant.New(client, c.Notifications)
		c.orchestrator = assistant.NewOrchestrator(a, c.Session, c.Notifications)
	}
	return c.orchestrator
}

// PerformAutomaticBackup snapshots the preferences database before a session
// starts. Only the SQLite provider is backed up; failures are logged, never
// fatal.
func (c *Context) PerformAutomaticBackup() {
	sqliteStore, ok := c.Store.(*storage.SQLiteStore)
	if !ok {
		return
	}
	mgr := backup.NewManager(sqliteStore.ConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("automatic backup failed", "error", err)
	}
}

// confirm asks a y/N question on stdin.
func confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// flushNotifications prints any still-active banners, used by line-mode
// commands that have no persistent notification area.
func flushNotifications(center *notify.Center) {
	for _, n := range center.Active() {
		switch n.Kind {
		case notify.KindSuccess:
			fmt.Printf("  ✓ %s\n", n.Message)
		default:
			fmt.Printf("  ℹ %s\n", n.Message)
		}
		center.Dismiss(n.ID)
	}
}
