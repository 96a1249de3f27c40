package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/BuildAppolis/claude-context-wrapper/internal/assemble"
	"github.com/BuildAppolis/claude-context-wrapper/internal/project"
)

// watchDebounce coalesces bursts of file events into one re-print.
const watchDebounce = 200 * time.Millisecond

// runShowContext prints the assembled context and mode status. With
// --watch it keeps running and re-prints whenever the project context
// directory changes, until interrupted.
func (a *app) runShowContext(args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}

	if err := a.printContext(cwd); err != nil {
		return err
	}

	if len(args) == 0 || args[0] != "--watch" {
		return nil
	}
	return a.watchContext(cwd)
}

func (a *app) printContext(cwd string) error {
	asm, containerCfg, err := a.newAssembler(cwd)
	if err != nil {
		return err
	}

	fmt.Println(assemble.Render(asm.Assemble(context.Background())))

	if asm.Bypass {
		fmt.Printf("Bypass mode: %s\n", colorize(ansiYellow, "enabled"))
	} else {
		fmt.Println("Bypass mode: disabled")
	}
	if containerCfg != nil {
		fmt.Printf("Container mode: %s (root: %s)\n", colorize(ansiYellow, "enabled"), containerCfg.Root)
	} else {
		fmt.Println("Container mode: disabled")
	}
	return nil
}

// watchContext re-prints the context on changes to .claude-context/.
func (a *app) watchContext(cwd string) error {
	ctxDir := filepath.Join(cwd, project.Dir)
	if _, err := os.Stat(ctxDir); err != nil {
		return fmt.Errorf("--watch needs a %s directory (run cc --init first)", project.Dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(ctxDir); err != nil {
		return fmt.Errorf("watch %s: %w", ctxDir, err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	fmt.Printf("%s\n", colorize(ansiDim, "watching "+ctxDir+" — Ctrl+C to stop"))

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	for {
		select {
		case <-sigCh:
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.debugf("watcher: %v", err)
		case _, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if timer == nil {
				timer = time.AfterFunc(watchDebounce, func() { fire <- struct{}{} })
			} else {
				timer.Reset(watchDebounce)
			}
		case <-fire:
			timer = nil
			fmt.Println()
			if err := a.printContext(cwd); err != nil {
				return err
			}
		}
	}
}
