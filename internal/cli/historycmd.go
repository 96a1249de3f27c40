package cli

import (
	"fmt"
	"strconv"
)

// runHistory lists recent invocations, newest first. An optional
// numeric argument overrides the configured limit.
func (a *app) runHistory(args []string) error {
	if a.hist == nil {
		return fmt.Errorf("invocation history is unavailable")
	}

	limit := a.cfg.HistoryLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("--history takes a positive count, got %q", args[0])
		}
		limit = n
	}

	entries, err := a.hist.Recent(limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No invocations recorded yet")
		return nil
	}

	for _, e := range entries {
		status := fmt.Sprintf("exit %d", e.ExitCode)
		if e.ExitCode != 0 {
			status = colorize(ansiYellow, status)
		}
		fmt.Printf("%s  %-12s %s  %s (%s)\n",
			e.Time.Local().Format("2006-01-02 15:04"),
			e.Kind, e.Cwd, e.Command, status)
	}
	return nil
}
