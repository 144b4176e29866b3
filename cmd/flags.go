package cmd

import (
	"github.com/readmekit/projectinfo/constants"
	"github.com/spf13/pflag"
)

// RegisterReportFlags declares the report flags. Every default reproduces the
// flag-less behavior.
func RegisterReportFlags(flags *pflag.FlagSet) {
	flags.StringP("root", "r", ".", "Project root to inspect")
	flags.StringP("output", "o", constants.OutputFile, "Report file, relative to the root unless absolute")
	flags.StringSlice("exclude", nil, "Extra directory names to skip while scanning")
	flags.Bool("sort", false, "Sort the scanned paths instead of keeping walk order")
	flags.Bool("respect-gitignore", false, "Skip paths matched by the root .gitignore")
}
