package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSource(t *testing.T, dir, name string) {
	t.Helper()
	ctxDir := filepath.Join(dir, Dir)
	if err := os.MkdirAll(ctxDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(ctxDir, name), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveSourceMissing(t *testing.T) {
	if _, ok := ResolveSource(t.TempDir()); ok {
		t.Error("expected no source in empty project")
	}
}

func TestResolveSourcePrecedence(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "context.txt")

	src, ok := ResolveSource(dir)
	if !ok || src.Kind != SourceTxt {
		t.Fatalf("expected txt source, got %+v ok=%v", src, ok)
	}

	writeSource(t, dir, "context.py")
	src, _ = ResolveSource(dir)
	if src.Kind != SourcePy {
		t.Errorf("py should shadow txt, got %+v", src)
	}

	writeSource(t, dir, "context.ts")
	src, _ = ResolveSource(dir)
	if src.Kind != SourceTS {
		t.Errorf("ts should shadow py and txt, got %+v", src)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if cfg.ContextTimeout != 0 || len(cfg.CustomContext) != 0 {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigFull(t *testing.T) {
	dir := t.TempDir()
	ctxDir := filepath.Join(dir, Dir)
	os.MkdirAll(ctxDir, 0o755)

	raw := `{
		"customContext": {"stack": "go", "team": "infra"},
		"contextTimeout": 7,
		"allowedDirectories": ["~/shared"],
		"excludePaths": ["vendor"],
		"includeGitInfo": false,
		"unknownField": 42
	}`
	os.WriteFile(filepath.Join(ctxDir, "config.json"), []byte(raw), 0o644)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ContextTimeout != 7 {
		t.Errorf("ContextTimeout = %d, want 7", cfg.ContextTimeout)
	}
	if cfg.CustomContext["stack"] != "go" {
		t.Errorf("CustomContext = %v", cfg.CustomContext)
	}
	if len(cfg.AllowedDirectories) != 1 || cfg.AllowedDirectories[0] != "~/shared" {
		t.Errorf("AllowedDirectories = %v", cfg.AllowedDirectories)
	}
	if cfg.IncludeGitInfo == nil || *cfg.IncludeGitInfo {
		t.Error("IncludeGitInfo should be explicit false")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	ctxDir := filepath.Join(dir, Dir)
	os.MkdirAll(ctxDir, 0o755)
	os.WriteFile(filepath.Join(ctxDir, "config.json"), []byte("{not json"), 0o644)

	if _, err := LoadConfig(dir); err == nil {
		t.Error("expected error for malformed config.json")
	}
}

func TestScaffoldTypes(t *testing.T) {
	for _, typ := range []string{"ts", "py", "txt"} {
		dir := t.TempDir()
		path, err := Scaffold(dir, typ)
		if err != nil {
			t.Fatalf("Scaffold(%s): %v", typ, err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("scaffolded file missing: %v", err)
		}
		src, ok := ResolveSource(dir)
		if !ok || src.Path != path {
			t.Errorf("scaffolded source not resolvable: %+v", src)
		}
	}
}

func TestScaffoldInvalidType(t *testing.T) {
	if _, err := Scaffold(t.TempDir(), "rb"); err == nil {
		t.Error("expected error for invalid type")
	}
}

func TestScaffoldRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	if _, err := Scaffold(dir, "txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := Scaffold(dir, "txt"); err == nil {
		t.Error("expected error when source already exists")
	}
}
