package cli

import (
	"fmt"

	"github.com/BuildAppolis/claude-context-wrapper/internal/config"
	"github.com/BuildAppolis/claude-context-wrapper/internal/dispatch"
)

const version = "1.2.0"

// runVersion prints the wrapper version together with the wrapped
// tool's own version. A missing tool is reported, not fatal: version
// output should work on a half-installed machine.
func (a *app) runVersion() error {
	fmt.Printf("cc version %s\n", version)

	tool, err := dispatch.LocateTool(a.cfg.ClaudePath, config.DefaultToolName)
	if err != nil {
		fmt.Println("claude: not found")
		return nil
	}
	toolVersion, err := dispatch.ToolVersion(tool)
	if err != nil {
		fmt.Println("claude: version query failed")
		a.debugf("%v", err)
		return nil
	}
	fmt.Printf("claude %s\n", toolVersion)
	return nil
}
