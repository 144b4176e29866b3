package cmd

import (
	"context"
	"fmt"

	"github.com/readmekit/projectinfo/constants"
	"github.com/readmekit/projectinfo/entity"
)

func (h *Handler) Version(ctx context.Context, req *entity.CommandRequest) error {
	fmt.Println(fmt.Sprintf("projectinfo version %s", constants.Version))
	return nil
}
