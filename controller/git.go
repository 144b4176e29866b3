package controller

import (
	"context"
	"strings"

	"github.com/readmekit/projectinfo/lib/git"
)

// CollectGitInfo never fails. Queries git could not answer are reported in a
// single warning and left empty.
func (c *Controller) CollectGitInfo(ctx context.Context, run git.Runner, root string) git.Metadata {
	md := git.GetAllMetadata(ctx, run, root)
	if unavailable := md.Unavailable(); len(unavailable) > 0 {
		c.console.Warn("Some git information couldn't be retrieved: %s", strings.Join(unavailable, "; "))
	}
	return md
}
