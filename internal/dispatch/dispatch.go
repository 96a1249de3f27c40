// Package dispatch builds the final argument list and hands control to
// the wrapped tool. The child inherits the terminal; the wrapper's exit
// code is the child's exit code.
package dispatch

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"

	"github.com/BuildAppolis/claude-context-wrapper/internal/classify"
)

const (
	// bypassFlag tells the wrapped tool to skip its own file-write
	// confirmation prompts.
	bypassFlag = "--dangerously-skip-permissions"
	// prefaceFlag injects the assembled context as a system-level preface.
	prefaceFlag = "--append-system-prompt"
)

// LocateTool resolves the wrapped binary. An override may be an absolute
// path or an alternate name; empty means the default name on PATH. A
// miss is a configuration error and must abort before any other work.
func LocateTool(override, defaultName string) (string, error) {
	name := defaultName
	if override != "" {
		name = override
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("cannot find %q on PATH (install the tool or set CC_CLAUDE_PATH): %w", name, err)
	}
	return path, nil
}

// BuildArgs composes the child argument list from a classification, the
// rendered context string and the bypass state. Bypass always comes
// first so the wrapped tool sees it before any payload.
func BuildArgs(res classify.Result, contextStr string, bypass bool) []string {
	var args []string
	if bypass {
		args = append(args, bypassFlag)
	}

	switch res.Kind {
	case classify.InteractiveSession:
		args = append(args, prefaceFlag, contextStr)
	case classify.PassThrough:
		args = append(args, prefaceFlag, contextStr)
		args = append(args, res.Args...)
	case classify.Prompt:
		args = append(args, contextStr+" "+res.Prompt)
	}
	return args
}

// Run executes the wrapped tool with inherited standard streams and
// returns its exit code. Only failures to start at all return an error.
func Run(tool string, args []string) (int, error) {
	cmd := exec.Command(tool, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Ctrl+C belongs to the child while it owns the terminal; the
	// wrapper just waits and reports the resulting exit code.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		for range sigCh {
		}
	}()

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	return 1, fmt.Errorf("run %s: %w", tool, err)
}

// ToolVersion asks the wrapped tool for its own version string.
func ToolVersion(tool string) (string, error) {
	out, err := exec.Command(tool, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("query %s --version: %w", tool, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Summary renders a short argv description for history and audit records.
func Summary(res classify.Result) string {
	switch res.Kind {
	case classify.InteractiveSession:
		return "(interactive)"
	case classify.Prompt:
		return res.Prompt
	default:
		return strings.Join(res.Args, " ")
	}
}
