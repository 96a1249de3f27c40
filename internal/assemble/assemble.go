// Package assemble composes the context string injected into every
// invocation of the wrapped tool. Internally the context is an ordered
// list of named fragments; the bracketed textual form exists only at the
// boundary. Source order is fixed: base, project, global, bypass,
// container. The result is recomputed from the live environment on every
// invocation and never cached.
package assemble

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BuildAppolis/claude-context-wrapper/internal/config"
	"github.com/BuildAppolis/claude-context-wrapper/internal/project"
	"github.com/BuildAppolis/claude-context-wrapper/internal/state"
)

// timestampLayout is the base fragment's local time format.
const timestampLayout = "2006-01-02 15:04:05"

// globalContextFile is the per-user global context file name.
const globalContextFile = "global-context.txt"

// Fragment is one named piece of context. A fragment without a key
// renders as its bare value.
type Fragment struct {
	Key   string
	Value string
}

func (f Fragment) String() string {
	if f.Key == "" {
		return f.Value
	}
	return f.Key + ": " + f.Value
}

// Render serializes fragments into the injected textual form.
func Render(frags []Fragment) string {
	parts := make([]string, 0, len(frags))
	for _, f := range frags {
		parts = append(parts, f.String())
	}
	return "[Context: " + strings.Join(parts, ", ") + "]"
}

// Assembler gathers context fragments for one invocation.
type Assembler struct {
	Dir      string          // working directory
	StateDir string          // per-user state directory
	Project  *project.Config // per-project config, never nil
	Timeout  time.Duration   // project script wall-clock budget

	DisableGit bool
	Bypass     bool
	Container  *state.ContainerConfig

	Debug    bool
	DebugOut io.Writer

	Now    func() time.Time
	Getenv func(string) string
}

// New returns an Assembler bound to dir with live environment defaults.
func New(dir, stateDir string, projCfg *project.Config) *Assembler {
	if projCfg == nil {
		projCfg = &project.Config{}
	}
	return &Assembler{
		Dir:      dir,
		StateDir: stateDir,
		Project:  projCfg,
		Timeout:  3 * time.Second,
		DebugOut: os.Stderr,
		Now:      time.Now,
		Getenv:   os.Getenv,
	}
}

// Assemble produces the ordered fragment list. Failures in the git and
// project sources degrade silently; only the debug channel sees them.
func (a *Assembler) Assemble(ctx context.Context) []Fragment {
	frags := a.baseFragments()
	frags = append(frags, a.projectFragments(ctx)...)

	if global, ok := a.globalFragment(); ok {
		frags = append(frags, global)
	}
	if a.Bypass {
		frags = append(frags, Fragment{Key: "bypass", Value: "on"})
	}
	if a.Container != nil {
		frags = append(frags, Fragment{Key: "container", Value: a.Container.Root})
	}
	return frags
}

func (a *Assembler) baseFragments() []Fragment {
	frags := []Fragment{
		{Value: a.Now().Format(timestampLayout)},
		{Key: "pwd", Value: a.Dir},
	}

	includeGit := !a.DisableGit
	if a.Project.IncludeGitInfo != nil {
		includeGit = includeGit && *a.Project.IncludeGitInfo
	}
	if includeGit {
		if frag, ok := a.gitFragment(); ok {
			frags = append(frags, frag)
		}
	}
	return frags
}

func (a *Assembler) projectFragments(ctx context.Context) []Fragment {
	var frags []Fragment

	if src, ok := project.ResolveSource(a.Dir); ok {
		timeout := a.Timeout
		if a.Project.ContextTimeout > 0 {
			timeout = time.Duration(a.Project.ContextTimeout) * time.Second
		}
		for _, line := range a.runSource(ctx, src, timeout) {
			frags = append(frags, Fragment{Value: line})
		}
	}

	// customContext entries are appended verbatim in sorted key order so
	// the output is stable across invocations.
	if len(a.Project.CustomContext) > 0 {
		keys := make([]string, 0, len(a.Project.CustomContext))
		for k := range a.Project.CustomContext {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			frags = append(frags, Fragment{Key: k, Value: a.Project.CustomContext[k]})
		}
	}
	return frags
}

func (a *Assembler) globalFragment() (Fragment, bool) {
	if v := a.Getenv(config.EnvGlobalContext); v != "" {
		return Fragment{Key: "global", Value: v}, true
	}

	data, err := os.ReadFile(filepath.Join(a.StateDir, globalContextFile))
	if err != nil {
		return Fragment{}, false
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return Fragment{}, false
	}
	return Fragment{Key: "global", Value: text}, true
}

func (a *Assembler) debugf(format string, args ...any) {
	if !a.Debug || a.DebugOut == nil {
		return
	}
	fmt.Fprintf(a.DebugOut, "cc: "+format+"\n", args...)
}
