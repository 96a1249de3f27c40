// Package cli wires the wrapper's command surface. Flag parsing is
// disabled on the root command: the classifier decides whether argv is a
// wrapper command, a pass-through for the wrapped tool, or a free-text
// prompt, so unknown flags must reach it untouched.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BuildAppolis/claude-context-wrapper/internal/classify"
)

var rootCmd = &cobra.Command{
	Use:                "cc [prompt...]",
	Short:              "Context-injecting wrapper for the claude CLI",
	Long:               helpText,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runRoot,
}

// Execute runs the root command. Fatal errors print one line and exit 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cc: %v\n", err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.close()

	res := classify.Classify(args, classify.DefaultConfig())
	if res.Kind == classify.WrapperCommand {
		return app.runWrapper(res)
	}
	return app.dispatch(res)
}

func (a *app) runWrapper(res classify.Result) error {
	switch res.Command {
	case "help":
		return runHelp()
	case "version":
		return a.runVersion()
	case "init":
		return a.runInit(res.Args)
	case "show-context":
		return a.runShowContext(res.Args)
	case "set-global":
		return a.runSetGlobal(res.Args)
	case "clear-global":
		return a.runClearGlobal()
	case "bypass":
		return a.runBypass()
	case "container":
		return a.runContainer()
	case "history":
		return a.runHistory(res.Args)
	case "doctor":
		return a.runDoctor()
	}
	return fmt.Errorf("unknown wrapper command %q", res.Command)
}
