package controller

import (
	"github.com/readmekit/projectinfo/entity"
	"github.com/readmekit/projectinfo/lib/manifest"
	"github.com/spf13/afero"
)

func (c *Controller) CollectDependencies(fs afero.Fs, root string) (entity.Dependencies, error) {
	deps, warnings, err := manifest.Collect(fs, root)
	for _, w := range warnings {
		c.console.Warn("%s", w)
	}
	return deps, err
}
