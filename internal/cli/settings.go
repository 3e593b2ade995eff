package cli

import (
	"fmt"

	"github.com/julianstephens/attune/internal/storage"
)

// SettingsListCmd prints every preference key and its current value.
type SettingsListCmd struct{}

func (c *SettingsListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	fmt.Println("Current settings:")
	for _, pair := range storage.SettingsPairs(settings) {
		fmt.Printf("  %-24s %s\n", pair[0], pair[1])
	}
	return nil
}

type SettingsGetCmd struct {
	Key string `arg:"" help:"Setting key (see 'attune settings list')."`
}

func (c *SettingsGetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	for _, pair := range storage.SettingsPairs(settings) {
		if pair[0] == c.Key {
			fmt.Println(pair[1])
			return nil
		}
	}
	return fmt.Errorf("unknown setting %q", c.Key)
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting key (see 'attune settings list')."`
	Value string `arg:"" help:"New value."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	known := false
	for _, pair := range storage.SettingsPairs(settings) {
		if pair[0] == c.Key {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown setting %q", c.Key)
	}

	if err := storage.ApplySettingsPair(&settings, c.Key, c.Value); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("✓ %s = %s\n", c.Key, c.Value)
	return nil
}
