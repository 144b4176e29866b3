package cmd

import (
	"context"

	"github.com/readmekit/projectinfo/configs"
	"github.com/readmekit/projectinfo/entity"
	"github.com/readmekit/projectinfo/errors"
	"github.com/readmekit/projectinfo/ui"
)

func (h *Handler) Generate(ctx context.Context, req *entity.CommandRequest) error {
	cfgs := configs.New(h.fs)
	if err := cfgs.BindFlags(req.Cmd.Flags()); err != nil {
		return err
	}
	cfg, err := cfgs.Load()
	if err != nil {
		return err
	}

	if info, err := h.fs.Stat(cfg.Root); err != nil || !info.IsDir() {
		return errors.RootNotFound
	}

	reportReq := &entity.ReportRequest{
		Config: *cfg,
		Fs:     h.fs,
		Git:    h.git,
	}

	ui.StartSpinner(&ui.SpinnerCfg{
		Message: "Collecting project information...",
	})
	report, err := h.ctrl.CollectReport(ctx, reportReq)
	ui.StopSpinner("")
	if err != nil {
		return err
	}

	return h.ctrl.SaveReport(h.fs, *cfg, report)
}
