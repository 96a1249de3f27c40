package assemble

import (
	"os/exec"
	"strings"
)

// gitFragment builds the git fragment for the working directory.
// Returns false when the directory is not inside a git work tree. Query
// failures inside a work tree degrade to "unknown" placeholders instead
// of aborting.
func (a *Assembler) gitFragment() (Fragment, bool) {
	inside, err := runGit(a.Dir, "rev-parse", "--is-inside-work-tree")
	if err != nil || inside != "true" {
		a.debugf("git: not a work tree (%v)", err)
		return Fragment{}, false
	}

	branch, err := runGit(a.Dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil || branch == "" {
		a.debugf("git: branch query failed: %v", err)
		branch = "unknown"
	}
	commit, err := runGit(a.Dir, "rev-parse", "--short", "HEAD")
	if err != nil || commit == "" {
		a.debugf("git: commit query failed: %v", err)
		commit = "unknown"
	}

	value := branch + "@" + commit

	status, err := runGit(a.Dir, "status", "--porcelain")
	if err != nil {
		a.debugf("git: status query failed: %v", err)
	} else if status != "" {
		value += " (uncommitted changes)"
	}

	return Fragment{Key: "git", Value: value}, true
}

func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
