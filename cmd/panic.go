package cmd

import (
	"context"
)

func (h *Handler) Panic(ctx context.Context, recovered interface{}, stack string, cmd string, args []string) {
	h.ctrl.ReportPanic(ctx, recovered, stack, cmd, args)
}
