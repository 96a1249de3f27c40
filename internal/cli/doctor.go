package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BuildAppolis/claude-context-wrapper/internal/audit"
	"github.com/BuildAppolis/claude-context-wrapper/internal/config"
	"github.com/BuildAppolis/claude-context-wrapper/internal/dispatch"
	"github.com/BuildAppolis/claude-context-wrapper/internal/project"
	"github.com/BuildAppolis/claude-context-wrapper/internal/state"
)

type checkResult struct {
	label  string
	ok     bool
	detail string
	fix    string
}

// runDoctor checks wrapper readiness: the wrapped binary, the state
// directory, the project context source and the audit chain.
func (a *app) runDoctor() error {
	var checks []checkResult

	// 1. Wrapped binary.
	if tool, err := dispatch.LocateTool(a.cfg.ClaudePath, config.DefaultToolName); err == nil {
		checks = append(checks, checkResult{label: "claude binary", ok: true, detail: tool})
	} else {
		checks = append(checks, checkResult{
			label:  "claude binary",
			ok:     false,
			detail: "not found on PATH",
			fix:    "install claude or set CC_CLAUDE_PATH",
		})
	}

	// 2. State directory.
	if info, err := os.Stat(a.stateDir); err == nil && info.IsDir() {
		checks = append(checks, checkResult{label: "state directory", ok: true, detail: a.stateDir})
	} else {
		checks = append(checks, checkResult{
			label:  "state directory",
			ok:     false,
			detail: "missing",
			fix:    "any cc invocation creates it",
		})
	}

	// 3. Mode markers.
	bypass := a.store.Enabled(state.Bypass)
	containerCfg, _ := a.store.ContainerConfig()
	detail := "bypass off, container off"
	switch {
	case bypass && containerCfg != nil:
		detail = fmt.Sprintf("bypass on, container on (root: %s)", containerCfg.Root)
	case bypass:
		detail = "bypass on, container off"
	case containerCfg != nil:
		detail = fmt.Sprintf("bypass off, container on (root: %s)", containerCfg.Root)
	}
	checks = append(checks, checkResult{label: "mode state", ok: true, detail: detail})

	// 4. Project context source.
	if cwd, err := os.Getwd(); err == nil {
		if src, ok := project.ResolveSource(cwd); ok {
			checks = append(checks, checkResult{label: "project context", ok: true, detail: src.Path})
		} else {
			checks = append(checks, checkResult{
				label:  "project context",
				ok:     true,
				detail: "none (optional)",
				fix:    "cc --init <ts|py|txt>",
			})
		}
	}

	// 5. Audit chain.
	result := audit.Verify(filepath.Join(a.stateDir, auditFile))
	if result.Valid {
		checks = append(checks, checkResult{
			label:  "audit chain",
			ok:     true,
			detail: fmt.Sprintf("%d entries, chain intact", result.Lines),
		})
	} else {
		checks = append(checks, checkResult{
			label:  "audit chain",
			ok:     false,
			detail: fmt.Sprintf("%s (line %d)", result.Error, result.ErrorLine),
		})
	}

	// 6. History database.
	if a.hist != nil {
		checks = append(checks, checkResult{label: "history database", ok: true, detail: filepath.Join(a.stateDir, historyFile)})
	} else {
		checks = append(checks, checkResult{label: "history database", ok: false, detail: "cannot open"})
	}

	broken := 0
	for _, c := range checks {
		mark := colorize(ansiGreen, "ok")
		if !c.ok {
			mark = colorize(ansiYellow, "FAIL")
			broken++
		}
		fmt.Printf("%-18s %-4s %s\n", c.label, mark, c.detail)
		if c.fix != "" {
			fmt.Printf("%-18s      fix: %s\n", "", c.fix)
		}
	}

	if broken > 0 {
		fmt.Printf("\n%d check(s) need attention\n", broken)
	} else {
		fmt.Println("\nAll checks passed")
	}
	return nil
}
