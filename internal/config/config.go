// Package config loads the YAML configuration, falling back to builtin
// defaults when the file or individual keys are absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration.
type Config struct {
	// LogFile is where the file log sink appends.
	LogFile string `yaml:"log_file"`
	// SnapThreshold is the edge-snap distance for window moves, in
	// pixels.
	SnapThreshold int `yaml:"snap_threshold"`
	// MinWindowSize is the smallest width and height a resize allows.
	MinWindowSize int `yaml:"min_window_size"`
	// Dialogs styles the builtin popup dialogs.
	Dialogs DialogStyle `yaml:"dialogs"`
}

// DialogStyle holds the colors and core font names used to paint the
// exit, runner and help dialogs. Colors are 24-bit RGB pixel values.
type DialogStyle struct {
	Background     uint32 `yaml:"background"`
	Foreground     uint32 `yaml:"foreground"`
	HelpBackground uint32 `yaml:"help_background"`
	Font           string `yaml:"font"`
	RunnerFont     string `yaml:"runner_font"`
}

// DefaultConfig returns the builtin configuration used when no file
// overrides it.
func DefaultConfig() Config {
	return Config{
		LogFile:       defaultLogPath(),
		SnapThreshold: 10,
		MinWindowSize: 50,
		Dialogs: DialogStyle{
			Background:     0x2E3440,
			Foreground:     0xFFFFFF,
			HelpBackground: 0x000000,
			Font:           "9x15",
			RunnerFont:     "10x20",
		},
	}
}

func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "lwm.log"
	}
	return filepath.Join(home, "lwm.log")
}

// Validate checks the configuration for values the manager cannot work
// with.
func (c Config) Validate() error {
	if c.LogFile == "" {
		return fmt.Errorf("log_file must not be empty")
	}
	if c.SnapThreshold < 0 {
		return fmt.Errorf("snap_threshold must not be negative, got %d", c.SnapThreshold)
	}
	if c.MinWindowSize < 1 {
		return fmt.Errorf("min_window_size must be at least 1, got %d", c.MinWindowSize)
	}
	if c.Dialogs.Font == "" {
		return fmt.Errorf("dialogs.font must not be empty")
	}
	if c.Dialogs.RunnerFont == "" {
		return fmt.Errorf("dialogs.runner_font must not be empty")
	}
	return nil
}
