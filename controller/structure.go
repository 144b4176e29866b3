package controller

import (
	"github.com/readmekit/projectinfo/entity"
	"github.com/readmekit/projectinfo/lib/scan"
	"github.com/spf13/afero"
)

func (c *Controller) ScanDirectory(fs afero.Fs, cfg entity.ReportConfig) (entity.Structure, error) {
	return scan.Directory(fs, cfg.Root, scan.Options{
		Exclude:          cfg.Exclude,
		Sort:             cfg.Sort,
		RespectGitignore: cfg.RespectGitignore,
	})
}
