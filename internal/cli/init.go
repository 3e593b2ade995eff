package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("✓ Initialized attune preferences at: %s\n", ctx.Store.ConfigPath())
	fmt.Println("Run 'attune' to start a session, or 'attune keyring set' to configure the Gemini API key.")
	return nil
}
