// Package config handles the XDG configuration directory and config.toml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"todo/internal/filter"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigFile is the optional settings filename inside the config directory.
	ConfigFile = "config.toml"

	// DefaultPrompt is printed before each shell line.
	DefaultPrompt = "todo> "

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "warn"

	// DefaultLogFormat is used when no format is configured.
	DefaultLogFormat = "text"
)

// Environment overrides.
const (
	EnvDefaultFilter = "TODO_DEFAULT_FILTER"
	EnvPrompt        = "TODO_PROMPT"
	EnvQuiet         = "TODO_QUIET"
	EnvLogLevel      = "TODO_LOG_LEVEL"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// DefaultFilter is the filter selected when a session starts.
	DefaultFilter filter.Name

	// Prompt is printed before each shell line. Empty disables it.
	Prompt string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// LogFormat is one of text, json, logfmt.
	LogFormat string
}

// fileConfig mirrors config.toml. Pointer fields distinguish unset from zero.
type fileConfig struct {
	DefaultFilter string  `toml:"default_filter"`
	Prompt        *string `toml:"prompt"`
	Quiet         *bool   `toml:"quiet"`
	LogLevel      string  `toml:"log_level"`
	LogFormat     string  `toml:"log_format"`
}

// New creates a new Config with defaults and the default or specified
// config directory. If configDir is empty, uses XDG_CONFIG_HOME/todo or
// $HOME/.config/todo.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:           dir,
		DefaultFilter: filter.Default,
		Prompt:        DefaultPrompt,
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
	}, nil
}

// Load creates a Config and applies config.toml and environment overrides,
// in that order. A missing config.toml is not an error.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}
	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to config.toml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// HasConfigFile checks if config.toml exists.
func (c *Config) HasConfigFile() bool {
	_, err := os.Stat(c.ConfigPath())
	return err == nil
}

func (c *Config) loadFile() error {
	var fc fileConfig
	if _, err := toml.DecodeFile(c.ConfigPath(), &fc); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}

	if fc.DefaultFilter != "" {
		n, err := filter.Parse(fc.DefaultFilter)
		if err != nil {
			return fmt.Errorf("invalid %s: default_filter: %w", ConfigFile, err)
		}
		c.DefaultFilter = n
	}
	if fc.Prompt != nil {
		c.Prompt = *fc.Prompt
	}
	if fc.Quiet != nil {
		c.Quiet = *fc.Quiet
	}
	if fc.LogLevel != "" {
		c.LogLevel = strings.ToLower(fc.LogLevel)
	}
	if fc.LogFormat != "" {
		c.LogFormat = strings.ToLower(fc.LogFormat)
	}
	return nil
}

func (c *Config) loadEnv() error {
	if v := os.Getenv(EnvDefaultFilter); v != "" {
		n, err := filter.Parse(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDefaultFilter, err)
		}
		c.DefaultFilter = n
	}
	if v, ok := os.LookupEnv(EnvPrompt); ok {
		c.Prompt = v
	}
	if v := os.Getenv(EnvQuiet); v != "" {
		c.Quiet = boolFromString(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	return nil
}

// boolFromString parses a boolean from a string.
func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
