package project

import (
	"fmt"
	"os"
	"path/filepath"
)

const tsTemplate = `// Prints one line of project context to stdout.
// Edit freely — whatever this script prints becomes part of the
// assembled context for every invocation in this project.
const parts: string[] = [];
parts.push("project: " + (process.env.npm_package_name ?? "unnamed"));
console.log(parts.join(", "));
`

const pyTemplate = `#!/usr/bin/env python3
"""Prints one line of project context to stdout."""
import pathlib

print(f"project: {pathlib.Path.cwd().name}")
`

const txtTemplate = `project: describe this project here
`

var templates = map[string]struct {
	file    string
	content string
	mode    os.FileMode
}{
	"ts":  {"context.ts", tsTemplate, 0o644},
	"py":  {"context.py", pyTemplate, 0o755},
	"txt": {"context.txt", txtTemplate, 0o644},
}

// Scaffold creates a context source of the given type ("ts", "py" or
// "txt") under projectDir/.claude-context. Returns the created path.
// Refuses to overwrite an existing file of the same name.
func Scaffold(projectDir, typ string) (string, error) {
	tpl, ok := templates[typ]
	if !ok {
		return "", fmt.Errorf("invalid context type %q (expected ts, py or txt)", typ)
	}

	ctxDir := filepath.Join(projectDir, Dir)
	if err := os.MkdirAll(ctxDir, 0o755); err != nil {
		return "", fmt.Errorf("create context directory: %w", err)
	}

	path := filepath.Join(ctxDir, tpl.file)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}

	if err := os.WriteFile(path, []byte(tpl.content), tpl.mode); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
