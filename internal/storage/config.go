package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds jumptree user configuration.
type Config struct {
	Theme       string `json:"theme"`
	PanelMillis int    `json:"panel_millis"` // how long the tree panel stays up after a jump
	PanelPinned bool   `json:"panel_pinned"` // keep the panel open instead of auto-dismissing
	path        string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:       "default",
		PanelMillis: 2000,
		PanelPinned: false,
	}
}

// LoadConfig loads configuration from the standard config directory.
func LoadConfig() (*Config, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, "config.json")
	cfg := DefaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.Save()
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.path = path
	return &cfg, nil
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	if c.path == "" {
		dir, err := configDir()
		if err != nil {
			return err
		}
		c.path = filepath.Join(dir, "config.json")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(c.path, data, 0o644)
}

// DataDir returns the data directory for persistent storage.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}

	var dir string
	switch runtime.GOOS {
	case "darwin":
		dir = filepath.Join(home, "Library", "Application Support", "jumptree")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			dir = filepath.Join(appData, "jumptree")
		} else {
			dir = filepath.Join(home, ".jumptree")
		}
	default: // Linux, BSD, etc.
		xdgData := os.Getenv("XDG_DATA_HOME")
		if xdgData != "" {
			dir = filepath.Join(xdgData, "jumptree")
		} else {
			dir = filepath.Join(home, ".local", "share", "jumptree")
		}
	}

	return dir, nil
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}

	var dir string
	switch runtime.GOOS {
	case "darwin":
		dir = filepath.Join(home, "Library", "Application Support", "jumptree")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			dir = filepath.Join(appData, "jumptree")
		} else {
			dir = filepath.Join(home, ".jumptree")
		}
	default:
		xdgConfig := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfig != "" {
			dir = filepath.Join(xdgConfig, "jumptree")
		} else {
			dir = filepath.Join(home, ".config", "jumptree")
		}
	}

	return dir, nil
}
