package controller

import (
	"io"

	"github.com/readmekit/projectinfo/ui"
)

type Controller struct {
	console *ui.Console
}

// New returns a Controller that prints warnings and the summary to out.
func New(out io.Writer) *Controller {
	return &Controller{
		console: ui.NewConsole(out),
	}
}
