// Package config loads themekit host preferences from defaults, an optional
// YAML file, THEMEKIT_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/themekit/internal/validate"
)

const (
	configDirName  = "themekit"
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "THEMEKIT"
)

// Keys understood by Load.
const (
	KeyTheme    = "theme"
	KeyFormat   = "format"
	KeyLogLevel = "log_level"
)

// Output formats accepted for Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the preferences a host applies at start-up.
type Config struct {
	Theme    string `mapstructure:"theme" validate:"required,trimmed"`
	Format   string `mapstructure:"format" validate:"oneof=text json yaml"`
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`

	// Source is the config file that was read, empty when none was found.
	Source string `mapstructure:"-"`
}

// Default returns the preferences used when nothing overrides them.
func Default() Config {
	return Config{
		Theme:    "Default Dark",
		Format:   FormatText,
		LogLevel: "info",
	}
}

// Options controls where Load looks for settings.
type Options struct {
	// File names an explicit config file. A missing explicit file is an error.
	File string
	// Dirs replaces the default search path of the user config directory.
	Dirs []string
	// Flags are bound by name; "log-level" maps to log_level.
	Flags *pflag.FlagSet
}

// Load merges every source into a validated Config.
func Load(opts Options) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault(KeyTheme, defaults.Theme)
	v.SetDefault(KeyFormat, defaults.Format)
	v.SetDefault(KeyLogLevel, defaults.LogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for _, key := range []string{KeyTheme, KeyFormat, KeyLogLevel} {
			flag := opts.Flags.Lookup(strings.ReplaceAll(key, "_", "-"))
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
			}
		}
	}

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		dirs := opts.Dirs
		if dirs == nil {
			dirs = defaultDirs()
		}
		for _, dir := range dirs {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Source = v.ConfigFileUsed()

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func defaultDirs() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return nil
		}
		dir = filepath.Join(home, ".config")
	}
	return []string{filepath.Join(dir, configDirName)}
}
