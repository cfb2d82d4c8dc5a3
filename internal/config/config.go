package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"tedit/internal/logger"
)

// Config is loaded once at startup and passed explicitly to the session.
// It is only replaced through an explicit reload.
type Config struct {
	Theme                 string            `yaml:"theme" json:"theme,omitempty" jsonschema_description:"Name of the active theme (built-in: default, light, mono)"`
	Wrap                  bool              `yaml:"wrap" json:"wrap,omitempty" jsonschema_description:"Soft-wrap long lines instead of scrolling horizontally"`
	LineNumbers           bool              `yaml:"line_numbers" json:"line_numbers,omitempty" jsonschema_description:"Show the line-number gutter"`
	Sidebar               bool              `yaml:"sidebar" json:"sidebar,omitempty" jsonschema_description:"Show the buffer list sidebar"`
	SidebarWidth          int               `yaml:"sidebar_width" json:"sidebar_width,omitempty" jsonschema_description:"Sidebar width in cells"`
	TabWidth              int               `yaml:"tab_width" json:"tab_width,omitempty" jsonschema_description:"Display width of a tab character"`
	AutosaveSeconds       int               `yaml:"autosave_seconds" json:"autosave_seconds,omitempty" jsonschema_description:"Autosave interval in seconds; 0 disables autosave"`
	SystemClipboard       bool              `yaml:"system_clipboard" json:"system_clipboard,omitempty" jsonschema_description:"Mirror yanked text to the system clipboard"`
	RestoreSession        bool              `yaml:"restore_session" json:"restore_session,omitempty" jsonschema_description:"Restore the last session when no files are given"`
	MaxLineLength         int               `yaml:"max_line_length" json:"max_line_length,omitempty" jsonschema_description:"Line length reported by the built-in linter"`
	CommandTimeoutSeconds int               `yaml:"command_timeout_seconds" json:"command_timeout_seconds,omitempty" jsonschema_description:"Timeout for shell and linter commands; 0 waits indefinitely"`
	Shell                 string            `yaml:"shell" json:"shell,omitempty" jsonschema_description:"Shell used to run :! commands"`
	Keys                  map[string]string `yaml:"keys" json:"keys,omitempty" jsonschema_description:"Action name to key overrides"`
	Linters               map[string]string `yaml:"linters" json:"linters,omitempty" jsonschema_description:"File extension to external linter command; the buffer is piped to stdin"`
	Themes                map[string]Theme  `yaml:"themes" json:"themes,omitempty" jsonschema_description:"Additional or overriding themes"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:                 "default",
		LineNumbers:           true,
		SidebarWidth:          24,
		TabWidth:              4,
		RestoreSession:        true,
		MaxLineLength:         120,
		CommandTimeoutSeconds: 30,
		Shell:                 "/bin/sh",
		Keys:                  map[string]string{},
		Linters:               map[string]string{},
		Themes:                builtinThemes(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/tedit/config.yaml.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.yaml"
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "tedit", "config.yaml")
}

// DataDir returns $XDG_DATA_HOME/tedit, falling back to
// ~/.local/share/tedit.
func DataDir() string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ".tedit"
		}
		dir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dir, "tedit")
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("config %s not found, using defaults", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Maps decode over the defaults; themes merge by name.
	cfg.Themes = builtinThemes()
	for name, th := range file.Themes {
		cfg.Themes[name] = th.withFallback(cfg.Themes["default"])
	}
	if cfg.Keys == nil {
		cfg.Keys = map[string]string{}
	}
	if cfg.Linters == nil {
		cfg.Linters = map[string]string{}
	}
	cfg.normalize()
	logger.Info("loaded config %s", path)
	return cfg, nil
}

func (c *Config) normalize() {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if c.SidebarWidth <= 0 {
		c.SidebarWidth = 24
	}
	if c.MaxLineLength <= 0 {
		c.MaxLineLength = 120
	}
	if c.Shell == "" {
		c.Shell = "/bin/sh"
	}
	if _, ok := c.Themes[c.Theme]; !ok {
		logger.Error("unknown theme %q, falling back to default", c.Theme)
		c.Theme = "default"
	}
}

// ThemeByName returns the named theme.
func (c *Config) ThemeByName(name string) (Theme, bool) {
	th, ok := c.Themes[name]
	return th, ok
}

// ActiveTheme returns the configured theme.
func (c *Config) ActiveTheme() Theme {
	if th, ok := c.Themes[c.Theme]; ok {
		return th
	}
	return builtinThemes()["default"]
}

// Keymap builds the key bindings from the defaults and the keys section.
func (c *Config) Keymap() *Keymap {
	return NewKeymap(c.Keys)
}
