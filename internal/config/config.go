// Package config loads the editor's YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTabStop        = 8
	DefaultQuitTimes      = 3
	DefaultMessageTimeout = 5 * time.Second
	MaxTabStop            = 32
)

// Config holds user-tunable editor settings.
type Config struct {
	TabStop        int           `yaml:"tab_stop"`
	QuitTimes      int           `yaml:"quit_times"`
	MessageTimeout time.Duration `yaml:"message_timeout"`
	LogFile        string        `yaml:"log_file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TabStop:        DefaultTabStop,
		QuitTimes:      DefaultQuitTimes,
		MessageTimeout: DefaultMessageTimeout,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/kite/config.yaml (or the platform
// equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "kite", "config.yaml"), nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every setting is in range.
func (c Config) Validate() error {
	if c.TabStop < 1 || c.TabStop > MaxTabStop {
		return fmt.Errorf("tab_stop must be between 1 and %d, got %d", MaxTabStop, c.TabStop)
	}
	if c.QuitTimes < 0 {
		return fmt.Errorf("quit_times must not be negative, got %d", c.QuitTimes)
	}
	if c.MessageTimeout <= 0 {
		return fmt.Errorf("message_timeout must be positive, got %s", c.MessageTimeout)
	}
	return nil
}
