package entity

import (
	"github.com/readmekit/projectinfo/lib/git"
	"github.com/spf13/afero"
)

type ReportRequest struct {
	Config ReportConfig
	Fs     afero.Fs
	Git    git.Runner
}
