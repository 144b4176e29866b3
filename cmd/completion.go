package cmd

import (
	"context"
	"os"

	"github.com/readmekit/projectinfo/entity"
)

func (h *Handler) Completion(ctx context.Context, req *entity.CommandRequest) error {
	switch req.Args[0] {
	case "bash":
		return req.Cmd.Root().GenBashCompletion(os.Stdout)
	case "zsh":
		return req.Cmd.Root().GenZshCompletion(os.Stdout)
	case "fish":
		return req.Cmd.Root().GenFishCompletion(os.Stdout, true)
	case "powershell":
		return req.Cmd.Root().GenPowerShellCompletion(os.Stdout)
	}
	return nil
}
