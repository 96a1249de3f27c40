package cli

import (
	"fmt"
	"os"

	"github.com/BuildAppolis/claude-context-wrapper/internal/project"
)

// runInit scaffolds one project context source in the current directory.
func (a *app) runInit(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("--init requires a type: ts, py or txt")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}

	path, err := project.Scaffold(cwd, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Created %s\n", path)
	fmt.Println("Edit it to emit the context you want injected into every invocation.")
	return nil
}
