package cmd

import (
	"os"

	"github.com/readmekit/projectinfo/controller"
	"github.com/readmekit/projectinfo/lib/git"
	"github.com/spf13/afero"
)

type Handler struct {
	ctrl *controller.Controller
	fs   afero.Fs
	git  git.Runner
}

func New() *Handler {
	return &Handler{
		ctrl: controller.New(os.Stdout),
		fs:   afero.NewOsFs(),
		git:  git.ExecGit,
	}
}
