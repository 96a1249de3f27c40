// Package contain decides whether the current working directory is
// admitted under an enabled container configuration. The check is purely
// lexical: paths are cleaned and compared on separator boundaries, no
// filesystem access.
package contain

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BuildAppolis/claude-context-wrapper/internal/state"
)

// Decision is the containment outcome.
type Decision int

const (
	Admit Decision = iota
	Deny
)

// String returns the decision name.
func (d Decision) String() string {
	if d == Admit {
		return "admit"
	}
	return "deny"
}

// Check returns Admit iff cwd equals or descends from the container root
// or from one of the allowed entries. Allowed entries may use the ~/
// shorthand, which is expanded before comparison.
func Check(cwd string, cfg state.ContainerConfig) Decision {
	if within(cwd, cfg.Root) {
		return Admit
	}
	for _, entry := range cfg.Allowed {
		if within(cwd, ExpandHome(entry)) {
			return Admit
		}
	}
	return Deny
}

// ExpandHome replaces a leading ~ with the user's home directory.
// Unexpandable paths are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// within reports whether path equals root or sits under it. The prefix
// match stops at separator boundaries so /repo2 is not inside /repo.
func within(path, root string) bool {
	if root == "" {
		return false
	}
	path = filepath.Clean(path)
	root = filepath.Clean(root)
	if path == root {
		return true
	}
	if root == string(filepath.Separator) {
		return strings.HasPrefix(path, root)
	}
	return strings.HasPrefix(path, root+string(filepath.Separator))
}
