package cli

import (
	"fmt"

	"github.com/BuildAppolis/claude-context-wrapper/internal/state"
)

// runBypass toggles bypass mode and reports the new state.
func (a *app) runBypass() error {
	on, err := a.store.Toggle(state.Bypass)
	if err != nil {
		return err
	}
	if on {
		fmt.Printf("Bypass mode %s — claude will skip file-write confirmations\n", colorize(ansiYellow, "ENABLED"))
	} else {
		fmt.Printf("Bypass mode %s\n", colorize(ansiGreen, "DISABLED"))
	}
	return nil
}
