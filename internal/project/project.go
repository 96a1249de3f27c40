// Package project resolves the per-project context directory: at most one
// context source (script or static text) plus an optional JSON
// configuration object.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Dir is the per-project context directory name.
const Dir = ".claude-context"

// SourceKind distinguishes the three context source flavors.
type SourceKind int

const (
	SourceTS SourceKind = iota
	SourcePy
	SourceTxt
)

// sourceFiles lists source file names in precedence order. The first one
// present wins; the rest are ignored.
var sourceFiles = []struct {
	name string
	kind SourceKind
}{
	{"context.ts", SourceTS},
	{"context.py", SourcePy},
	{"context.txt", SourceTxt},
}

// Source is one resolved context source.
type Source struct {
	Path string
	Kind SourceKind
}

// Config is the optional per-project configuration, read from
// .claude-context/config.json. Unknown fields are ignored.
type Config struct {
	CustomContext      map[string]string `json:"customContext,omitempty"`
	ContextTimeout     int               `json:"contextTimeout,omitempty"` // seconds
	AllowedDirectories []string          `json:"allowedDirectories,omitempty"`
	ExcludePaths       []string          `json:"excludePaths,omitempty"`
	IncludeGitInfo     *bool             `json:"includeGitInfo,omitempty"`
	IncludeNodeModules *bool             `json:"includeNodeModules,omitempty"`
}

// ResolveSource finds the active context source for a project directory.
// Returns false when the context directory is missing or holds no source.
func ResolveSource(projectDir string) (Source, bool) {
	ctxDir := filepath.Join(projectDir, Dir)
	for _, sf := range sourceFiles {
		path := filepath.Join(ctxDir, sf.name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return Source{Path: path, Kind: sf.kind}, true
		}
	}
	return Source{}, false
}

// LoadConfig reads the project config. A missing file yields an empty
// config; malformed JSON is an error so a typo does not silently drop
// settings.
func LoadConfig(projectDir string) (*Config, error) {
	path := filepath.Join(projectDir, Dir, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read project config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}
