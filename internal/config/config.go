package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/gitstory/gitstory/internal/errors"
	"github.com/gitstory/gitstory/internal/paths"
)

// Keys understood by the configuration layer.
const (
	KeyJSON         = "json"
	KeyASCII        = "ascii"
	KeyLogLevel     = "log_level"
	KeyLogFormat    = "log_format"
	KeyLogFile      = "log_file"
	KeyValidatePath = "validate.path"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "GITSTORY"

// DebugEnv forces the default log level to debug when set to "1".
const DebugEnv = "GITSTORY_DEBUG"

// Config represents the resolved settings for one invocation.
type Config struct {
	JSON      bool           `mapstructure:"json" yaml:"json"`
	ASCII     bool           `mapstructure:"ascii" yaml:"ascii"`
	LogLevel  string         `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string         `mapstructure:"log_format" yaml:"log_format"`
	LogFile   string         `mapstructure:"log_file" yaml:"log_file"`
	Validate  ValidateConfig `mapstructure:"validate" yaml:"validate"`
}

// ValidateConfig holds settings for the validate command.
type ValidateConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// New returns a Viper instance with search paths, environment binding, and
// defaults configured. Flags are bound by the caller.
func New() *viper.Viper {
	v := viper.New()

	v.SetConfigName(paths.ConfigName)
	v.SetConfigType("yaml")

	// Search paths (in order of precedence)
	v.AddConfigPath(paths.ProjectDirName)
	v.AddConfigPath(paths.UserConfigDir())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	level := "warn"
	if os.Getenv(DebugEnv) == "1" {
		level = "debug"
	}

	v.SetDefault(KeyJSON, false)
	v.SetDefault(KeyASCII, false)
	v.SetDefault(KeyLogLevel, level)
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyValidatePath, paths.WorkflowPath(""))

	return v
}

// Load reads the configuration file into v and returns the merged settings.
// If path is provided, it reads from that specific file and a missing file is
// an error. If path is empty, the default locations are searched and a
// missing file falls back to defaults.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Mark(errors.Newf("config file not found at %s", path), errors.ErrNotFound)
			}
			return nil, errors.Wrapf(err, "checking config file %s", path)
		}
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}
