// Package config resolves abordi settings from defaults, an optional
// config file, ABORDI_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/abordi-ai/abordi/internal/catalog"
)

// EnvPrefix is prepended to every environment variable, e.g. ABORDI_LOG_LEVEL.
const EnvPrefix = "ABORDI"

// Config holds all configuration for abordi.
type Config struct {
	Catalog      string    `mapstructure:"catalog"`       // Catalog file to use instead of the embedded one
	AssistantURL string    `mapstructure:"assistant_url"` // Chat assistant prompts are sent to
	Style        string    `mapstructure:"style"`         // glamour style for rendered output
	Log          LogConfig `mapstructure:"log"`
}

// LogConfig holds logging configuration. File "-" disables logging.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Disabled reports whether logging is switched off.
func (c LogConfig) Disabled() bool {
	switch strings.ToLower(strings.TrimSpace(c.File)) {
	case "-", "off", "none":
		return true
	}
	return false
}

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("catalog", "")
	v.SetDefault("assistant_url", catalog.DefaultAssistantURL)
	v.SetDefault("style", "auto")
	v.SetDefault("log.file", DefaultLogFile())
	v.SetDefault("log.level", "info")
}

// DefaultLogFile is abordi.log under the user's cache directory.
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "abordi", "abordi.log")
}

// Load reads the config file (path, or abordi.yaml in the usual places when
// path is empty) and decodes v into a Config. A missing default config file
// is not an error; a missing explicit one is.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("abordi")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "abordi"))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
