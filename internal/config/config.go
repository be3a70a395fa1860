// Package config handles application configuration and command-line argument parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"

	"github.com/joe/magnify/internal/settings"
)

// Exported constants.
const (
	// DefaultDisplays is the number of simulated displays
	DefaultDisplays = 1
	// DefaultHeight is the default display height in pixels
	DefaultHeight = 2400
	// DefaultWidth is the default display width in pixels
	DefaultWidth = 1080
	// MaxDisplays is the largest number of simulated displays
	MaxDisplays = 8
)

// StartMode is the magnification each display shows when the simulator starts
type StartMode int

const (
	// StartNone - no magnifier active
	StartNone StartMode = iota
	// StartFullscreen - full-screen magnification active
	StartFullscreen
	// StartWindow - window magnifier shown
	StartWindow
)

// String returns the string representation of StartMode
func (m StartMode) String() string {
	switch m {
	case StartNone:
		return "none"
	case StartFullscreen:
		return "fullscreen"
	case StartWindow:
		return "window"
	default:
		return "unknown"
	}
}

// ParseStartMode parses a string into a StartMode
func ParseStartMode(s string) (StartMode, error) {
	s = strings.ToLower(s)
	switch s {
	case "none", "off":
		return StartNone, nil
	case "fullscreen", "full":
		return StartFullscreen, nil
	case "window", "win":
		return StartWindow, nil
	default:
		return StartNone, fmt.Errorf("invalid start mode: %s (valid: none, fullscreen, window)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for go-arg
func (m *StartMode) UnmarshalText(text []byte) error {
	parsed, err := ParseStartMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Config holds the application configuration
type Config struct {
	SettingsPath     string    `arg:"-s,--settings" help:"Settings source: .yaml/.yml file or .db database (empty = built-in defaults)"`
	WatchSettings    bool      `arg:"--watch" default:"true" help:"Reload a YAML settings file when it changes"`
	User             int       `arg:"-u,--user" default:"0" help:"User whose persisted scale is read"`
	Scale            float64   `arg:"--scale" default:"3" help:"Persisted scale seeded into the built-in defaults"`
	Displays         int       `arg:"-n,--displays" default:"1" help:"Number of simulated displays (1-8)"`
	Width            int       `arg:"--width" default:"1080" help:"Display width in pixels"`
	Height           int       `arg:"--height" default:"2400" help:"Display height in pixels"`
	StartMode        StartMode `arg:"--start" default:"fullscreen" help:"Magnification shown at start: none|fullscreen|window"`
	GestureHandlerID int       `arg:"--gesture-handler-id" default:"1" help:"Identifier passed to the full-screen magnifier"`
	LogFile          string    `arg:"-l,--log-file" help:"Write logs to this file"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "Simulates magnification mode transitions between the full-screen and window magnifiers"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "magnify 1.0.0"
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := &Config{
		WatchSettings:    true,
		Scale:            3,
		Displays:         DefaultDisplays,
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		StartMode:        StartFullscreen,
		GestureHandlerID: 1,
	}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// PostProcessConfig applies post-processing logic to a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	cfg.Scale = settings.ClampScale(cfg.Scale)

	if cfg.SettingsPath != "" {
		cfg.SettingsPath = filepath.Clean(cfg.SettingsPath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration describes a usable simulation
func (cfg *Config) Validate() error {
	if cfg.Displays < 1 || cfg.Displays > MaxDisplays {
		return fmt.Errorf("displays must be between 1 and %d, got %d", MaxDisplays, cfg.Displays)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}

	if cfg.User < 0 {
		return fmt.Errorf("user must not be negative, got %d", cfg.User)
	}

	return cfg.ValidateSettingsPath()
}

// ValidateSettingsPath validates that the settings source, when given, is a readable file
func (cfg *Config) ValidateSettingsPath() error {
	if cfg.SettingsPath == "" {
		return nil
	}

	switch strings.ToLower(filepath.Ext(cfg.SettingsPath)) {
	case ".yaml", ".yml", ".db", ".sqlite", ".sqlite3":
	default:
		return fmt.Errorf("unsupported settings format: %s (use .yaml, .yml or .db)", cfg.SettingsPath)
	}

	info, err := os.Stat(cfg.SettingsPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("settings path does not exist: %s", cfg.SettingsPath)
	}
	if err != nil {
		return fmt.Errorf("cannot access settings path: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("settings path is a directory: %s", cfg.SettingsPath)
	}

	return nil
}
