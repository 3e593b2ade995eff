package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/attune/internal/constants"
	"github.com/julianstephens/attune/internal/keyring"
)

// KeyringSetCmd stores the Gemini API key in the OS keyring.
type KeyringSetCmd struct {
	APIKey string `arg:"" help:"Gemini API key to store in the keyring."`
}

func (cmd *KeyringSetCmd) Run(ctx *Context) error {
	key := strings.TrimSpace(cmd.APIKey)
	if key == "" {
		return errors.New("API key cannot be empty")
	}

	if err := keyring.SetAPIKey(key); err != nil {
		return fmt.Errorf("failed to store API key in keyring: %w", err)
	}

	fmt.Println("✓ Gemini API key stored in OS keyring")
	fmt.Println("  The chat assistant will use the remote model on the next session.")
	return nil
}

// KeyringDeleteCmd removes the Gemini API key from the OS keyring.
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *Context) error {
	err := keyring.DeleteAPIKey()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API key found in keyring")
		}
		return fmt.Errorf("failed to delete API key from keyring: %w", err)
	}

	fmt.Println("✓ Gemini API key deleted from OS keyring")
	fmt.Println("  The chat assistant will fall back to local heuristics.")
	return nil
}

// KeyringStatusCmd reports keyring availability and whether a key is stored.
type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *Context) error {
	if !keyring.IsAvailable() {
		fmt.Println("❌ OS keyring is not available on this system")
		fmt.Printf("   Set %s instead to use the remote model.\n", constants.EnvAPIKey)
		return errors.New("keyring unavailable")
	}
	fmt.Println("✓ OS keyring is available")

	_, err := keyring.GetAPIKey()
	switch {
	case err == nil:
		fmt.Println("✓ Gemini API key is stored in keyring")
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Println("ℹ No Gemini API key stored in keyring")
		fmt.Printf("  Use 'attune keyring set' or export %s.\n", constants.EnvAPIKey)
	default:
		return fmt.Errorf("failed to read keyring: %w", err)
	}
	return nil
}
