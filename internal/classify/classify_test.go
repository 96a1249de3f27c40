package classify

import (
	"reflect"
	"testing"
)

func TestClassifyEmpty(t *testing.T) {
	got := Classify(nil, DefaultConfig())
	if got.Kind != InteractiveSession {
		t.Errorf("Kind = %v, want InteractiveSession", got.Kind)
	}
}

func TestClassifyWrapperTokens(t *testing.T) {
	cases := []struct {
		argv    []string
		command string
		rest    []string
	}{
		{[]string{"--help"}, "help", nil},
		{[]string{"-h"}, "help", nil},
		{[]string{"--version"}, "version", nil},
		{[]string{"--init", "ts"}, "init", []string{"ts"}},
		{[]string{"--show-context"}, "show-context", nil},
		{[]string{"--set-global", "always", "test"}, "set-global", []string{"always", "test"}},
		{[]string{"--clear-global"}, "clear-global", nil},
		{[]string{"--bypass"}, "bypass", nil},
		{[]string{"--container"}, "container", nil},
		{[]string{"--history"}, "history", nil},
		{[]string{"--doctor"}, "doctor", nil},
	}

	cfg := DefaultConfig()
	for _, tc := range cases {
		got := Classify(tc.argv, cfg)
		if got.Kind != WrapperCommand {
			t.Errorf("Classify(%v).Kind = %v, want WrapperCommand", tc.argv, got.Kind)
			continue
		}
		if got.Command != tc.command {
			t.Errorf("Classify(%v).Command = %q, want %q", tc.argv, got.Command, tc.command)
		}
		if len(got.Args) != len(tc.rest) {
			t.Errorf("Classify(%v).Args = %v, want %v", tc.argv, got.Args, tc.rest)
		}
	}
}

func TestClassifyPassThrough(t *testing.T) {
	cases := [][]string{
		{"--dangerously-skip-permissions"},
		{"--model", "opus"},
		{"-p", "print mode"},
		{"config", "list"},
		{"mcp", "add", "server"},
		{"setup-token"},
		{"doctor"},
		{"update"},
		{"install", "stable"},
	}

	cfg := DefaultConfig()
	for _, argv := range cases {
		got := Classify(argv, cfg)
		if got.Kind != PassThrough {
			t.Errorf("Classify(%v).Kind = %v, want PassThrough", argv, got.Kind)
		}
		if !reflect.DeepEqual(got.Args, argv) {
			t.Errorf("Classify(%v).Args = %v, want argv verbatim", argv, got.Args)
		}
	}
}

func TestClassifyPrompt(t *testing.T) {
	got := Classify([]string{"add", "a", "logger"}, DefaultConfig())
	if got.Kind != Prompt {
		t.Fatalf("Kind = %v, want Prompt", got.Kind)
	}
	if got.Prompt != "add a logger" {
		t.Errorf("Prompt = %q, want %q", got.Prompt, "add a logger")
	}
}

// Classification must be total: every first token lands in exactly one
// category, and the same input always produces the same result.
func TestClassifyTotalAndDeterministic(t *testing.T) {
	heads := []string{
		"--help", "--bypass", "--container", "--no-such-flag", "-x",
		"config", "mcp", "update", "fix", "explain", "doctor",
		"--", "-", "a", "", "config.yaml",
	}

	cfg := DefaultConfig()
	for _, head := range heads {
		first := Classify([]string{head}, cfg)
		second := Classify([]string{head}, cfg)
		if first.Kind != second.Kind {
			t.Errorf("Classify(%q) not deterministic: %v vs %v", head, first.Kind, second.Kind)
		}
		switch first.Kind {
		case WrapperCommand, PassThrough, Prompt:
		default:
			t.Errorf("Classify(%q) = %v, want one of wrapper/passthrough/prompt", head, first.Kind)
		}
	}
}

// A bare word that happens to match a wrapper token only in spirit (e.g.
// "help" without dashes) is a prompt, not a wrapper command. The match is
// literal.
func TestClassifyLiteralMatchOnly(t *testing.T) {
	cfg := DefaultConfig()

	got := Classify([]string{"help"}, cfg)
	if got.Kind != Prompt {
		t.Errorf("bare %q should classify as Prompt, got %v", "help", got.Kind)
	}

	got = Classify([]string{"--HELP"}, cfg)
	if got.Kind != PassThrough {
		t.Errorf("%q should classify as PassThrough (flag prefix), got %v", "--HELP", got.Kind)
	}
}

func TestClassifyInjectableSets(t *testing.T) {
	cfg := Config{
		WrapperTokens: map[string]string{"--zap": "zap"},
		ToolCommands:  map[string]bool{"frobnicate": true},
	}

	if got := Classify([]string{"--zap"}, cfg); got.Kind != WrapperCommand || got.Command != "zap" {
		t.Errorf("custom wrapper token not honored: %+v", got)
	}
	if got := Classify([]string{"frobnicate"}, cfg); got.Kind != PassThrough {
		t.Errorf("custom tool command not honored: %+v", got)
	}
	if got := Classify([]string{"--help"}, cfg); got.Kind != PassThrough {
		t.Errorf("default tokens must not leak into custom config: %+v", got)
	}
}
