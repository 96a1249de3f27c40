package cli

import "fmt"

const helpText = `cc wraps the claude CLI and injects assembled context (timestamp,
working directory, git state, project and global context) into every
prompt and command it forwards.

Usage:
  cc [prompt...]              send a prompt with context prepended
  cc                          start an interactive session with context
  cc <claude-command> [...]   forward a claude subcommand or flag verbatim

Wrapper commands:
  --help                      show this help
  --version                   show wrapper and claude versions
  --init <ts|py|txt>          scaffold a project context source in .claude-context/
  --show-context [--watch]    print the assembled context and mode status
  --set-global <text>         persist a global context string
  --clear-global              remove the global context string
  --bypass                    toggle bypass mode (claude skips write confirmations)
  --container                 toggle container mode, capturing the cwd as root
  --history [n]               list recent invocations
  --doctor                    check wrapper readiness

Environment:
  CC_GLOBAL_CONTEXT           global context override (wins over the stored file)
  CC_DEBUG                    print soft-failure diagnostics to stderr
  CC_DISABLE_GIT              skip the git fragment
  CC_CONTEXT_TIMEOUT          project context script timeout in seconds
  CC_CLAUDE_PATH              path or name of the claude binary`

func runHelp() error {
	fmt.Println(helpText)
	return nil
}
