package errors

import (
	"fmt"

	"github.com/readmekit/projectinfo/ui"
)

type ProjectInfoError error

var (
	OutputWriteFailed  ProjectInfoError = fmt.Errorf("%s", ui.RedText("Could not write the project report."))
	ScanFailed         ProjectInfoError = fmt.Errorf("%s", ui.RedText("Could not scan the directory tree."))
	ManifestReadFailed ProjectInfoError = fmt.Errorf("%s", ui.RedText("Could not read a dependency manifest."))
	ConfigReadFailed   ProjectInfoError = fmt.Errorf("%s\nCheck %s in the project root.", ui.RedText("Could not read configuration."), ui.Bold(".projectinfo.*"))
	RootNotFound       ProjectInfoError = fmt.Errorf("%s", ui.RedText("Project root does not exist or is not a directory."))
)
