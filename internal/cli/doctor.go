package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/attune/internal/backup"
	"github.com/julianstephens/attune/internal/constants"
	"github.com/julianstephens/attune/internal/keyring"
	"github.com/julianstephens/attune/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: preferences store reachable
	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Preferences store: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Preferences store: OK\n")
	}

	// Check 2: keyring availability (warning only; env var is a fallback)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   Keyring unavailable; use %s for the API key\n", constants.EnvAPIKey)
	}

	// Check 3: Gemini API key (warning only; the assistant degrades gracefully)
	if keyring.ResolveAPIKey() != "" {
		fmt.Printf("✓ Gemini API key: OK\n")
	} else {
		fmt.Printf("⚠ Gemini API key: WARNING\n")
		fmt.Printf("   No key configured; chat runs on local heuristics only\n")
	}

	// Check 4: duplicate instances (warning only; wellness data is per-process)
	if others, err := otherAttuneInstances(); err != nil {
		fmt.Printf("⚠ Running instances: WARNING\n")
		fmt.Printf("   Could not list processes: %v\n", err)
	} else if len(others) > 0 {
		fmt.Printf("⚠ Running instances: WARNING\n")
		fmt.Printf("   %d other attune process(es) running (pids %v); sessions do not share data\n", len(others), others)
	} else {
		fmt.Printf("✓ Running instances: OK\n")
	}

	// Check 5: backups present (warning only, SQLite provider only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 6: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("stored settings are invalid: %w", err)
	}
	return nil
}

// otherAttuneInstances returns the pids of attune processes other than this
// one.
func otherAttuneInstances() ([]int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}

	self := os.Getpid()
	var pids []int
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == constants.AppName {
			pids = append(pids, p.Pid())
		}
	}
	return pids, nil
}

func checkBackupsPresent(ctx *Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		// JSON and Postgres providers are not covered by the backup manager.
		return nil
	}

	mgr := backup.NewManager(sqliteStore.ConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'attune backup create'")
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		fmt.Printf("   Note: timezone is UTC\n")
	}
	return nil
}
