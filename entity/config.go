package entity

// ReportConfig is the resolved configuration for one run. Zero values
// reproduce the plain, flag-less behavior.
type ReportConfig struct {
	Root             string   `mapstructure:"root"`
	Output           string   `mapstructure:"output"`
	Exclude          []string `mapstructure:"exclude"`
	Sort             bool     `mapstructure:"sort"`
	RespectGitignore bool     `mapstructure:"respect_gitignore"`
}
