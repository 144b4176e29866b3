package controller

import (
	"context"
	"os"
	"strings"

	"github.com/readmekit/projectinfo/ui"
)

// ReportPanic prints the diagnostic trace for an unexpected failure to
// stderr. The caller is expected to exit non-zero afterwards.
func (c *Controller) ReportPanic(ctx context.Context, recovered interface{}, stack string, cmd string, args []string) {
	ui.StopSpinner("")
	stderr := ui.NewConsole(os.Stderr)
	stderr.Printf("%s %v\n", stderr.Red("projectinfo stopped unexpectedly:"), recovered)
	stderr.Printf("command: %s\n\n%s", strings.TrimSpace(cmd+" "+strings.Join(args, " ")), stack)
}
