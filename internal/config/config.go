// ABOUTME: Tsumiage configuration with storage backend selection.
// ABOUTME: Handles cutoff hour, pomodoro auto-switch, and the storage factory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/skosaka/tsumiage/internal/daykey"
	"github.com/skosaka/tsumiage/internal/storage"
)

// Config stores tsumiage configuration.
type Config struct {
	// Backend selects the storage backend: "kv" (default) or "sqlite".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. The kv backend
	// puts its key-value files under <DataDir>/kv; sqlite puts
	// tsumiage.db there. Supports ~ expansion. Defaults to the XDG
	// data directory.
	DataDir string `json:"data_dir,omitempty"`

	// CutoffHour is the hour at which a new logical day begins.
	// Defaults to 6: activity before 06:00 counts toward the previous
	// day.
	CutoffHour *int `json:"cutoff_hour,omitempty"`

	// AutoSwitchBreak keeps the pomodoro countdown running into the
	// break after a work phase completes. Defaults to true.
	AutoSwitchBreak *bool `json:"auto_switch_break,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "kv".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "kv"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetCutoffHour returns the configured logical-day cutoff hour.
func (c *Config) GetCutoffHour() int {
	if c.CutoffHour == nil || *c.CutoffHour < 0 || *c.CutoffHour > 23 {
		return daykey.DefaultCutoffHour
	}
	return *c.CutoffHour
}

// GetAutoSwitchBreak returns the pomodoro auto-switch flag.
func (c *Config) GetAutoSwitchBreak() bool {
	if c.AutoSwitchBreak == nil {
		return true
	}
	return *c.AutoSwitchBreak
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tsumiage")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the
// configured backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	dataDir := c.GetDataDir()

	switch backend := c.GetBackend(); backend {
	case "kv":
		return storage.OpenKV(filepath.Join(dataDir, "kv"))
	case "sqlite":
		return storage.OpenSQLite(filepath.Join(dataDir, "tsumiage.db"))
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "tsumiage", "config.json")
}

// Load reads config from disk. A missing file yields defaults.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
