// Package classify decides how a raw argument vector is routed: handled
// by the wrapper itself, forwarded to the wrapped tool as a command, or
// treated as a free-text prompt. Classification looks only at the literal
// form of the first argument — never at filesystem state — so repeated
// calls with the same input always agree.
package classify

import "strings"

// Kind is the classification outcome.
type Kind int

const (
	// InteractiveSession means no arguments were given; the wrapped tool
	// runs interactively with context injected as a system preface.
	InteractiveSession Kind = iota
	// WrapperCommand is handled locally without touching the wrapped tool.
	WrapperCommand
	// PassThrough forwards the arguments verbatim after the context preface.
	PassThrough
	// Prompt joins the arguments into free text with context prepended.
	Prompt
)

// String returns the kind name for diagnostics and audit records.
func (k Kind) String() string {
	switch k {
	case InteractiveSession:
		return "interactive"
	case WrapperCommand:
		return "wrapper"
	case PassThrough:
		return "passthrough"
	default:
		return "prompt"
	}
}

// Result carries the classification and the routed payload.
type Result struct {
	Kind    Kind
	Command string   // canonical wrapper command name, WrapperCommand only
	Args    []string // remaining args (WrapperCommand) or full argv (PassThrough)
	Prompt  string   // joined free text, Prompt only
}

// Config holds the reserved-token sets. Both sets are injectable so the
// wrapped tool's own command surface can evolve without touching the
// decision logic.
type Config struct {
	// WrapperTokens maps a literal first argument to a canonical wrapper
	// command name.
	WrapperTokens map[string]string
	// ToolCommands are subcommands reserved by the wrapped tool; a bare
	// word matching one of these is forwarded rather than prompted.
	ToolCommands map[string]bool
}

// DefaultConfig returns the reserved-token sets for the claude CLI.
func DefaultConfig() Config {
	return Config{
		WrapperTokens: map[string]string{
			"--help":         "help",
			"-h":             "help",
			"--version":      "version",
			"-v":             "version",
			"--init":         "init",
			"--show-context": "show-context",
			"--set-global":   "set-global",
			"--clear-global": "clear-global",
			"--bypass":       "bypass",
			"--container":    "container",
			"--history":      "history",
			"--doctor":       "doctor",
		},
		ToolCommands: map[string]bool{
			"config":      true,
			"mcp":         true,
			"setup-token": true,
			"doctor":      true,
			"update":      true,
			"install":     true,
		},
	}
}

// Classify maps argv onto exactly one Kind.
func Classify(argv []string, cfg Config) Result {
	if len(argv) == 0 {
		return Result{Kind: InteractiveSession}
	}

	head := argv[0]
	if name, ok := cfg.WrapperTokens[head]; ok {
		return Result{Kind: WrapperCommand, Command: name, Args: argv[1:]}
	}

	if strings.HasPrefix(head, "-") || cfg.ToolCommands[head] {
		return Result{Kind: PassThrough, Args: argv}
	}

	return Result{Kind: Prompt, Prompt: strings.Join(argv, " ")}
}
