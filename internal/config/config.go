// Package config loads calcform settings from defaults, an optional YAML
// file, CALCFORM_* environment variables and command flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the resolved application configuration.
type Config struct {
	Server   ServerConfig `mapstructure:"server" yaml:"server"`
	Parsing  string       `mapstructure:"parsing" yaml:"parsing"`
	Language string       `mapstructure:"language" yaml:"language"`
	Theme    ThemeConfig  `mapstructure:"theme" yaml:"theme"`
	Log      LogConfig    `mapstructure:"log" yaml:"log"`
}

type ServerConfig struct {
	Addr     string `mapstructure:"addr" yaml:"addr"`
	BasePath string `mapstructure:"base_path" yaml:"base_path"`
}

type ThemeConfig struct {
	Variant string `mapstructure:"variant" yaml:"variant"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Defaults returns the values used when nothing else is configured.
func Defaults() map[string]any {
	return map[string]any{
		"server.addr":      ":8080",
		"server.base_path": "/",
		"parsing":          "lenient",
		"language":         "en",
		"theme.variant":    "light",
		"log.level":        "info",
	}
}

// flagKeys maps command flag names to configuration keys.
var flagKeys = map[string]string{
	"addr":      "server.addr",
	"base-path": "server.base_path",
	"parsing":   "parsing",
	"language":  "language",
	"theme":     "theme.variant",
	"log-level": "log.level",
}

// Load resolves a Config. An explicit path must exist; otherwise
// calcform.yaml is looked up in the working directory and the user config
// directory and its absence is not an error. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	var cfg Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigType("yaml")
	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("calcform")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "calcform"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("config: read: %w", err)
		}
	}

	v.SetEnvPrefix("calcform")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return cfg, fmt.Errorf("config: bind flag %q: %w", name, err)
				}
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}
