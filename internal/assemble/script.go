package assemble

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/BuildAppolis/claude-context-wrapper/internal/project"
)

// runSource executes (or reads) the project context source and returns
// its non-empty output lines. Timeout, non-zero exit and empty output all
// contribute nothing; the distinction is visible only in debug mode.
func (a *Assembler) runSource(ctx context.Context, src project.Source, timeout time.Duration) []string {
	if src.Kind == project.SourceTxt {
		data, err := os.ReadFile(src.Path)
		if err != nil {
			a.debugf("context source: read %s: %v", src.Path, err)
			return nil
		}
		return splitLines(string(data))
	}

	argv, err := interpreterFor(src)
	if err != nil {
		a.debugf("context source: %v", err)
		return nil
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	cmd.Dir = a.Dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	// The script is forcibly killed at the deadline; WaitDelay keeps a
	// child that ignores the kill from wedging the invocation.
	cmd.WaitDelay = time.Second

	err = cmd.Run()
	switch {
	case runCtx.Err() == context.DeadlineExceeded:
		a.debugf("context source: %s timed out after %s", src.Path, timeout)
		return nil
	case err != nil:
		a.debugf("context source: %s failed: %v", src.Path, err)
		return nil
	}

	lines := splitLines(stdout.String())
	if len(lines) == 0 {
		a.debugf("context source: %s produced no output", src.Path)
	}
	return lines
}

// interpreterFor picks the command line for a script source. TypeScript
// prefers a bun install, falling back to npx tsx; Python uses python3.
func interpreterFor(src project.Source) ([]string, error) {
	switch src.Kind {
	case project.SourceTS:
		if path, err := exec.LookPath("bun"); err == nil {
			return []string{path, src.Path}, nil
		}
		if path, err := exec.LookPath("npx"); err == nil {
			return []string{path, "-y", "tsx", src.Path}, nil
		}
		return nil, errNoInterpreter(src.Path, "bun or npx")
	case project.SourcePy:
		if path, err := exec.LookPath("python3"); err == nil {
			return []string{path, src.Path}, nil
		}
		return nil, errNoInterpreter(src.Path, "python3")
	}
	return nil, errNoInterpreter(src.Path, "unknown source kind")
}

type noInterpreterError struct {
	path string
	need string
}

func errNoInterpreter(path, need string) error {
	return &noInterpreterError{path: path, need: need}
}

func (e *noInterpreterError) Error() string {
	return "no interpreter for " + e.path + " (need " + e.need + ")"
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
