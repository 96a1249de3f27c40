package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/BuildAppolis/claude-context-wrapper/internal/assemble"
	"github.com/BuildAppolis/claude-context-wrapper/internal/audit"
	"github.com/BuildAppolis/claude-context-wrapper/internal/classify"
	"github.com/BuildAppolis/claude-context-wrapper/internal/config"
	"github.com/BuildAppolis/claude-context-wrapper/internal/contain"
	"github.com/BuildAppolis/claude-context-wrapper/internal/dispatch"
	"github.com/BuildAppolis/claude-context-wrapper/internal/history"
	"github.com/BuildAppolis/claude-context-wrapper/internal/project"
	"github.com/BuildAppolis/claude-context-wrapper/internal/state"
)

// dispatch assembles context, enforces containment and invokes the
// wrapped tool. Order matters: tool lookup fails before any assembly
// work, the container check runs after assembly but before the child
// process starts.
func (a *app) dispatch(res classify.Result) error {
	tool, err := dispatch.LocateTool(a.cfg.ClaudePath, config.DefaultToolName)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}

	asm, containerCfg, err := a.newAssembler(cwd)
	if err != nil {
		return err
	}
	ctxStr := assemble.Render(asm.Assemble(context.Background()))

	invID := uuid.NewString()
	summary := dispatch.Summary(res)

	if containerCfg != nil && contain.Check(cwd, *containerCfg) == contain.Deny {
		a.record(invID, res.Kind.String(), cwd, summary, "denied", 1)
		fmt.Fprintf(os.Stderr, "cc: container mode is active: %s is outside container root %s\n", cwd, containerCfg.Root)
		a.exit(1)
	}

	args := dispatch.BuildArgs(res, ctxStr, asm.Bypass)
	code, err := dispatch.Run(tool, args)
	if err != nil {
		a.record(invID, res.Kind.String(), cwd, summary, "not-started", 1)
		return err
	}

	a.record(invID, res.Kind.String(), cwd, summary, "dispatched", code)
	a.exit(code)
	return nil
}

// newAssembler builds the context assembler for cwd, reading mode state
// and the per-project config. A malformed project config degrades to an
// empty one rather than blocking the invocation.
func (a *app) newAssembler(cwd string) (*assemble.Assembler, *state.ContainerConfig, error) {
	projCfg, err := project.LoadConfig(cwd)
	if err != nil {
		a.debugf("%v", err)
		projCfg = &project.Config{}
	}

	containerCfg, err := a.store.ContainerConfig()
	if err != nil {
		return nil, nil, err
	}

	asm := assemble.New(cwd, a.stateDir, projCfg)
	asm.Timeout = time.Duration(a.cfg.ContextTimeoutSeconds) * time.Second
	asm.DisableGit = a.cfg.DisableGit
	asm.Debug = a.debug
	asm.Bypass = a.store.Enabled(state.Bypass)
	asm.Container = containerCfg
	return asm, containerCfg, nil
}

// record writes one invocation to history and audit. Both are soft.
func (a *app) record(id, kind, cwd, command, outcome string, exitCode int) {
	if a.hist != nil {
		err := a.hist.Record(history.Entry{
			ID:       id,
			Kind:     kind,
			Cwd:      cwd,
			Command:  command,
			ExitCode: exitCode,
		})
		if err != nil {
			a.debugf("%v", err)
		}
	}
	if a.log != nil {
		err := a.log.Record(audit.Entry{
			InvocationID: id,
			Kind:         kind,
			Cwd:          cwd,
			Command:      command,
			Outcome:      outcome,
			ExitCode:     exitCode,
		})
		if err != nil {
			a.debugf("%v", err)
		}
	}
}
