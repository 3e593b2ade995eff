package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/attune/internal/assistant"
)

// ChatCmd runs the assistant as a line-mode REPL, sharing the orchestrator
// with the TUI chat view. Tracker mutations (stress entries, suggestions,
// exercise todos) happen exactly as they do in the TUI; banners are printed
// inline after each turn.
type ChatCmd struct{}

func (c *ChatCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	orch := ctx.Orchestrator()
	if orch.Online() {
		fmt.Println("attune chat (Gemini connected). Type a message, or 'exit' to quit.")
	} else {
		fmt.Println("attune chat (offline, local heuristics only). Type a message, or 'exit' to quit.")
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		reply, err := orch.HandleTurn(context.Background(), line)
		if err != nil {
			if errors.Is(err, assistant.ErrTurnInProgress) {
				fmt.Println("  (still thinking, hold on)")
				continue
			}
			return err
		}
		fmt.Printf("attune> %s\n", reply.Text)
		flushNotifications(ctx.Notifications)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err == nil && settings.NotificationsOnExit {
		flushNotifications(ctx.Notifications)
	}
	fmt.Println("Take care!")
	return nil
}
