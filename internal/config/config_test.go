package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"todo/internal/config"
	"todo/internal/filter"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config.toml: %v", err)
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	want := filepath.Join("/tmp/xdg", "todo")
	if got := config.DefaultConfigDir(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dir != dir {
		t.Errorf("expected dir %q, got %q", dir, cfg.Dir)
	}
	if cfg.HasConfigFile() {
		t.Error("expected no config file")
	}
	if cfg.DefaultFilter != filter.All {
		t.Errorf("expected default filter All, got %v", cfg.DefaultFilter)
	}
	if cfg.Prompt != config.DefaultPrompt {
		t.Errorf("expected default prompt, got %q", cfg.Prompt)
	}
	if cfg.LogLevel != config.DefaultLogLevel || cfg.LogFormat != config.DefaultLogFormat {
		t.Errorf("unexpected log settings: %q %q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.Quiet {
		t.Error("expected quiet false")
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
default_filter = "active"
prompt = ""
quiet = true
log_level = "DEBUG"
log_format = "json"
`)

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultFilter != filter.Active {
		t.Errorf("expected Active, got %v", cfg.DefaultFilter)
	}
	if cfg.Prompt != "" {
		t.Errorf("expected empty prompt, got %q", cfg.Prompt)
	}
	if !cfg.Quiet {
		t.Error("expected quiet true")
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("unexpected log settings: %q %q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoad_UnknownDefaultFilter(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `default_filter = "Someday"`)

	_, err := config.Load(dir)
	if !errors.Is(err, filter.ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `default_filter = `)

	if _, err := config.Load(dir); err == nil {
		t.Fatal("expected error for malformed config.toml")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
default_filter = "Active"
prompt = "> "
`)
	t.Setenv(config.EnvDefaultFilter, "Completed")
	t.Setenv(config.EnvPrompt, "$ ")
	t.Setenv(config.EnvQuiet, "yes")
	t.Setenv(config.EnvLogLevel, "Info")

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultFilter != filter.Completed {
		t.Errorf("expected Completed, got %v", cfg.DefaultFilter)
	}
	if cfg.Prompt != "$ " {
		t.Errorf("expected '$ ', got %q", cfg.Prompt)
	}
	if !cfg.Quiet {
		t.Error("expected quiet true")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info, got %q", cfg.LogLevel)
	}
}

func TestLoad_EnvUnknownFilter(t *testing.T) {
	t.Setenv(config.EnvDefaultFilter, "nope")

	if _, err := config.Load(t.TempDir()); !errors.Is(err, filter.ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
}
