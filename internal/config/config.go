package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "resetconfig"

// Keyboard default scopes.
const (
	KeyboardStandard = "standard"
	KeyboardFull     = "full"
)

type Config struct {
	PrefsPath      string `koanf:"prefs_path"`      // preference database; empty means XDG data home
	PluginRegistry string `koanf:"plugin_registry"` // file removed by the effects reset
	Debug          bool   `koanf:"debug"`

	// Initial state of the standard/full choice in the dialog
	KeyboardDefault string `koanf:"keyboard_default"` // "standard" or "full" (default: "standard")

	// Extra keys kept out of the standard shortcut set
	ExcludedKeys []string `koanf:"excluded_keys"`

	// Desktop notification on failed resets (default: true)
	Notifications *bool `koanf:"notifications"`
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths())
}

// LoadFrom loads the existing files among paths, later files overriding
// earlier ones.
func LoadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		KeyboardDefault: KeyboardStandard,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.PrefsPath = expandPath(cfg.PrefsPath)
	cfg.PluginRegistry = expandPath(cfg.PluginRegistry)
	if cfg.PluginRegistry == "" {
		cfg.PluginRegistry = defaultPluginRegistry()
	}

	cfg.KeyboardDefault = strings.ToLower(strings.TrimSpace(cfg.KeyboardDefault))
	switch cfg.KeyboardDefault {
	case KeyboardStandard, KeyboardFull:
	case "":
		cfg.KeyboardDefault = KeyboardStandard
	default:
		return nil, fmt.Errorf("keyboard_default: want %q or %q, got %q",
			KeyboardStandard, KeyboardFull, cfg.KeyboardDefault)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/resetconfig/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func defaultPluginRegistry() string {
	return filepath.Join(xdg.DataHome, appName, "pluginregistry.cfg")
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// UseFullKeys reports whether the dialog starts with the full shortcut set.
func (c *Config) UseFullKeys() bool {
	return c.KeyboardDefault == KeyboardFull
}

// NotificationsEnabled returns the notification setting with its default.
func (c *Config) NotificationsEnabled() bool {
	if c.Notifications == nil {
		return true
	}
	return *c.Notifications
}
