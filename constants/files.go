package constants

const (
	OutputFile       = "project_info.json"
	RequirementsFile = "requirements.txt"
	PackageJSONFile  = "package.json"
	GitignoreFile    = ".gitignore"

	// ConfigName is looked up in the scan root with any extension viper reads.
	ConfigName = ".projectinfo"
	EnvPrefix  = "PROJECTINFO"
)
