package configs

import (
	goerrors "errors"
	"fmt"
	"strings"

	"github.com/readmekit/projectinfo/constants"
	"github.com/readmekit/projectinfo/entity"
	"github.com/readmekit/projectinfo/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyRoot             = "root"
	KeyOutput           = "output"
	KeyExclude          = "exclude"
	KeySort             = "sort"
	KeyRespectGitignore = "respect_gitignore"
)

// flagNames maps config keys to their command-line spelling.
var flagNames = map[string]string{
	KeyRoot:             "root",
	KeyOutput:           "output",
	KeyExclude:          "exclude",
	KeySort:             "sort",
	KeyRespectGitignore: "respect-gitignore",
}

type Configs struct {
	viper *viper.Viper
}

// New returns configuration with defaults and PROJECTINFO_* environment
// variables applied. Flags and the project config file are layered on by
// BindFlags and Load.
func New(fs afero.Fs) *Configs {
	v := viper.New()
	v.SetFs(fs)

	v.SetDefault(KeyRoot, ".")
	v.SetDefault(KeyOutput, constants.OutputFile)
	v.SetDefault(KeyExclude, []string{})
	v.SetDefault(KeySort, false)
	v.SetDefault(KeyRespectGitignore, false)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &Configs{
		viper: v,
	}
}

// BindFlags lets explicitly set flags override every other source.
func (c *Configs) BindFlags(flags *pflag.FlagSet) error {
	for key, name := range flagNames {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := c.viper.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

// Load reads <root>/.projectinfo.* when present and returns the merged
// configuration. The root itself can only come from a flag, the environment
// or the default.
func (c *Configs) Load() (*entity.ReportConfig, error) {
	root := c.viper.GetString(KeyRoot)

	c.viper.SetConfigName(constants.ConfigName)
	c.viper.AddConfigPath(root)
	if err := c.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !goerrors.As(err, &notFound) {
			return nil, fmt.Errorf("%w\n%v", errors.ConfigReadFailed, err)
		}
	}

	var cfg entity.ReportConfig
	if err := c.viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w\n%v", errors.ConfigReadFailed, err)
	}
	cfg.Root = root
	if cfg.Output == "" {
		cfg.Output = constants.OutputFile
	}
	return &cfg, nil
}

// ConfigFile is the file Load read, or "" when none was found.
func (c *Configs) ConfigFile() string {
	return c.viper.ConfigFileUsed()
}
