package cli

import (
	"fmt"
	"os"

	"github.com/BuildAppolis/claude-context-wrapper/internal/project"
	"github.com/BuildAppolis/claude-context-wrapper/internal/state"
)

// runContainer toggles container mode. Enabling captures the current
// working directory as the container root and folds in the project's
// allowedDirectories.
func (a *app) runContainer() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}

	projCfg, err := project.LoadConfig(cwd)
	if err != nil {
		a.debugf("%v", err)
		projCfg = &project.Config{}
	}

	on, err := a.store.ToggleContainer(state.ContainerConfig{
		Root:    cwd,
		Allowed: projCfg.AllowedDirectories,
	})
	if err != nil {
		return err
	}

	if on {
		fmt.Printf("Container mode %s — root: %s\n", colorize(ansiYellow, "ENABLED"), cwd)
		for _, dir := range projCfg.AllowedDirectories {
			fmt.Printf("  also allowed: %s\n", dir)
		}
	} else {
		fmt.Printf("Container mode %s\n", colorize(ansiGreen, "DISABLED"))
	}
	return nil
}
