// Package config loads the per-user wrapper configuration. Precedence is
// environment variables over ~/.ccwrap/config.yaml over built-in
// defaults. An optional ~/.ccwrap/env file is loaded into the process
// environment first, so it participates at env precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/BuildAppolis/claude-context-wrapper/internal/state"
)

// Environment variables consumed by the wrapper.
const (
	EnvGlobalContext  = "CC_GLOBAL_CONTEXT"
	EnvDebug          = "CC_DEBUG"
	EnvDisableGit     = "CC_DISABLE_GIT"
	EnvContextTimeout = "CC_CONTEXT_TIMEOUT"
	EnvClaudePath     = "CC_CLAUDE_PATH"
)

// DefaultToolName is the wrapped binary looked up on PATH when no
// override is configured.
const DefaultToolName = "claude"

// Config holds all configurable wrapper parameters.
type Config struct {
	ContextTimeoutSeconds int    `yaml:"context_timeout_seconds"`
	ClaudePath            string `yaml:"claude_path"`
	DisableGit            bool   `yaml:"disable_git"`
	HistoryLimit          int    `yaml:"history_limit"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ContextTimeoutSeconds: 3,
		HistoryLimit:          20,
	}
}

// Load reads configuration from a YAML file. Empty path falls back to
// <state dir>/config.yaml. Missing file returns defaults. Invalid YAML
// returns an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = filepath.Join(state.DefaultDir(), "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.ContextTimeoutSeconds <= 0 {
		cfg.ContextTimeoutSeconds = Default().ContextTimeoutSeconds
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = Default().HistoryLimit
	}
	return cfg, nil
}

// LoadEnvFile loads <state dir>/env into the process environment if it
// exists. Existing variables are never overridden.
func LoadEnvFile(stateDir string) {
	path := filepath.Join(stateDir, "env")
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}

// ApplyEnv overrides file-level settings with environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvContextTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			c.ContextTimeoutSeconds = secs
		}
	}
	if v := getenv(EnvClaudePath); v != "" {
		c.ClaudePath = v
	}
	if v := getenv(EnvDisableGit); v != "" && v != "0" && v != "false" {
		c.DisableGit = true
	}
}

// Debug reports whether debug diagnostics are enabled.
func Debug() bool {
	v := os.Getenv(EnvDebug)
	return v != "" && v != "0" && v != "false"
}
