package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BuildAppolis/claude-context-wrapper/internal/audit"
	"github.com/BuildAppolis/claude-context-wrapper/internal/config"
	"github.com/BuildAppolis/claude-context-wrapper/internal/history"
	"github.com/BuildAppolis/claude-context-wrapper/internal/state"
)

// File names under the per-user state directory.
const (
	globalContextFile = "global-context.txt"
	historyFile       = "history.db"
	auditFile         = "audit.jsonl"
)

// app carries the per-invocation wiring shared by all commands.
type app struct {
	stateDir string
	cfg      *config.Config
	store    *state.Store
	hist     *history.Store // nil when the database cannot be opened
	log      *audit.Log     // nil when the log cannot be opened
	debug    bool
}

// newApp loads the env file, the user config and the state store.
// History and audit are opened lazily best-effort: the wrapper still
// dispatches when they are broken.
func newApp() (*app, error) {
	stateDir := state.DefaultDir()
	config.LoadEnvFile(stateDir)

	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.Getenv)

	store, err := state.NewStore(stateDir)
	if err != nil {
		return nil, err
	}

	a := &app{
		stateDir: stateDir,
		cfg:      cfg,
		store:    store,
		debug:    config.Debug(),
	}

	if hist, err := history.Open(filepath.Join(stateDir, historyFile)); err == nil {
		a.hist = hist
	} else {
		a.debugf("history unavailable: %v", err)
	}
	if log, err := audit.Open(filepath.Join(stateDir, auditFile)); err == nil {
		a.log = log
	} else {
		a.debugf("audit log unavailable: %v", err)
	}
	return a, nil
}

func (a *app) close() {
	if a.hist != nil {
		a.hist.Close()
	}
	if a.log != nil {
		a.log.Close()
	}
}

// exit flushes open stores before terminating with the given code.
func (a *app) exit(code int) {
	a.close()
	os.Exit(code)
}

func (a *app) debugf(format string, args ...any) {
	if !a.debug {
		return
	}
	fmt.Fprintf(os.Stderr, "cc: "+format+"\n", args...)
}

func (a *app) globalContextPath() string {
	return filepath.Join(a.stateDir, globalContextFile)
}
