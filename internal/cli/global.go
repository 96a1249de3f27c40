package cli

import (
	"fmt"
	"os"
	"strings"
)

// runSetGlobal persists the global context string to the per-user file.
// The environment override still wins at assembly time.
func (a *app) runSetGlobal(args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("--set-global requires the context text")
	}

	if err := os.WriteFile(a.globalContextPath(), []byte(text+"\n"), 0o600); err != nil {
		return fmt.Errorf("write global context: %w", err)
	}
	fmt.Printf("Global context set: %s\n", text)
	return nil
}

// runClearGlobal removes the stored global context. Clearing an unset
// context is not an error.
func (a *app) runClearGlobal() error {
	if err := os.Remove(a.globalContextPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove global context: %w", err)
	}
	fmt.Println("Global context cleared")
	return nil
}
