// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads tuikit settings from defaults, the tuikit.yaml file,
// TUIKIT_* environment variables and command flags, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/tuikit/internal/crew"
)

const (
	appName   = "tuikit"
	envPrefix = "TUIKIT"
)

type Config struct {
	Log   LogConfig   `mapstructure:"log" yaml:"log"`
	Demo  DemoConfig  `mapstructure:"demo" yaml:"demo"`
	TUI   TUIConfig   `mapstructure:"tui" yaml:"tui"`
	Serve ServeConfig `mapstructure:"serve" yaml:"serve"`
}

type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
}

type DemoConfig struct {
	FilterMode crew.FilterMode `mapstructure:"filter_mode" yaml:"filter_mode"`
	// EmptyText replaces the table's empty message; blank keeps the default.
	EmptyText string `mapstructure:"empty_text" yaml:"empty_text"`
	// StableSelection keys the table selection by crew name instead of
	// display position.
	StableSelection bool `mapstructure:"stable_selection" yaml:"stable_selection"`
}

type TUIConfig struct {
	AltScreen bool `mapstructure:"alt_screen" yaml:"alt_screen"`
}

type ServeConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// Defaults are the values used when neither file, environment nor flags set
// a key.
func Defaults() map[string]any {
	return map[string]any{
		"log.level":             "info",
		"log.file":              "",
		"log.max_size_mb":       10,
		"log.max_backups":       3,
		"demo.filter_mode":      crew.FilterSubstring.String(),
		"demo.empty_text":       "",
		"demo.stable_selection": false,
		"tui.alt_screen":        true,
		"serve.addr":            "127.0.0.1:8080",
	}
}

// GetConfigPath returns the full path of the user or system configuration
// file.
func GetConfigPath(system bool) (string, error) {
	var configDir string

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), appName)
		default:
			configDir = filepath.Join("/etc", appName)
		}
	} else {
		userDir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(userDir, appName)
	}

	return filepath.Join(configDir, appName+".yaml"), nil
}

// LoadConfig resolves T from defaults, the first tuikit.yaml found (or
// configFile when given), the environment and the flags of cmd. flagKeys
// maps config keys to flag names; unknown flags are skipped.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string, flagKeys map[string]string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")
	if configFile != nil && *configFile != "" {
		v.SetConfigFile(*configFile)
	} else {
		if userConfigPath, err := GetConfigPath(false); err == nil {
			v.AddConfigPath(filepath.Dir(userConfigPath))
		}
		if systemConfigPath, err := GetConfigPath(true); err == nil {
			v.AddConfigPath(filepath.Dir(systemConfigPath))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// a missing file is fine, a broken one is not
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for key, name := range flagKeys {
			flag := cmd.Flags().Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return c, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&c, hook); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}

	return c, nil
}

// WriteConfigFile stores c as YAML in the user or system location and
// returns the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}
	return path, WriteConfigFileTo(path, c)
}

func WriteConfigFileTo[T any](path string, c *T) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Load is LoadConfig for the tuikit Config.
func Load(cmd *cobra.Command, configFile *string, flagKeys map[string]string) (Config, error) {
	return LoadConfig[Config](cmd, Defaults(), configFile, flagKeys)
}
