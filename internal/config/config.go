package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	tint "github.com/lrstanley/bubbletint"
	"github.com/xolan/pomo/internal/app"
	"github.com/xolan/pomo/internal/osutil"
)

const (
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// LogFile is the default name of the debug log file
	LogFile = "pomo.log"
)

// Ring radius bounds, in terminal rows
const (
	MinRingRadius     = 3
	MaxRingRadius     = 12
	DefaultRingRadius = 6
)

// Validation errors
var (
	ErrInvalidTheme      = errors.New("unknown theme")
	ErrInvalidLogLevel   = errors.New("invalid log level")
	ErrInvalidRingRadius = errors.New("ring radius out of range")
)

// ValidLogLevels lists the accepted log_level values
var ValidLogLevels = []string{"off", "debug", "info", "warn", "error"}

// Config represents the application configuration.
// Phase durations are fixed and deliberately absent.
type Config struct {
	// Theme is the bubbletint theme ID used by the TUI (empty means the default theme)
	Theme string `toml:"theme"`
	// LogLevel is the minimum level written to the log file ("off" disables logging)
	LogLevel string `toml:"log_level"`
	// LogFile overrides the log file location
	LogFile string `toml:"log_file"`
	// AltScreen runs the TUI in the terminal's alternate screen buffer
	AltScreen bool `toml:"alt_screen"`
	// RingRadius is the radius of the progress ring in rows
	RingRadius int `toml:"ring_radius"`
}

// DefaultConfig returns a Config with sensible defaults.
// - theme: "" (default theme)
// - log_level: "off"
// - log_file: "" (pomo.log next to the config file)
// - alt_screen: true
// - ring_radius: 6
func DefaultConfig() Config {
	return Config{
		Theme:      "",
		LogLevel:   "off",
		LogFile:    "",
		AltScreen:  true,
		RingRadius: DefaultRingRadius,
	}
}

// Normalize lowercases and trims string settings in place.
func (c *Config) Normalize() {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFile = strings.TrimSpace(c.LogFile)
	if c.LogLevel == "" {
		c.LogLevel = "off"
	}
}

// Validate checks that all settings hold acceptable values.
func (c Config) Validate() error {
	if c.Theme != "" && !themeExists(c.Theme) {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, c.Theme)
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if c.LogLevel == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidLogLevel, c.LogLevel, strings.Join(ValidLogLevels, ", "))
	}

	if c.RingRadius < MinRingRadius || c.RingRadius > MaxRingRadius {
		return fmt.Errorf("%w: %d (valid: %d-%d)", ErrInvalidRingRadius, c.RingRadius, MinRingRadius, MaxRingRadius)
	}

	return nil
}

func themeExists(id string) bool {
	for _, t := range tint.DefaultTints() {
		if t.ID() == id {
			return true
		}
	}
	return false
}

// Load reads and validates the config file at path.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadOrDefault loads the config file if it exists, otherwise returns DefaultConfig.
// Errors other than a missing file are returned.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return Load(path)
}

// Marshal encodes cfg as a TOML document with a short header.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# pomo configuration file\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var (
	themeKeyLine     = regexp.MustCompile(`^\s*theme\s*=`)
	themeCommentLine = regexp.MustCompile(`^\s*#\s*theme\s*=`)
	tableHeaderLine  = regexp.MustCompile(`^\s*\[`)
)

// SetThemeLine returns data with the top-level theme key set to theme.
// Every other line, comments included, is kept as is. A file without a
// theme key gets one below its commented example, or ahead of the first
// table, or at the end.
func SetThemeLine(data []byte, theme string) []byte {
	line := "theme = " + strconv.Quote(theme)
	lines := strings.Split(string(data), "\n")

	insertAt := -1
	for i, l := range lines {
		if tableHeaderLine.MatchString(l) {
			if insertAt < 0 {
				insertAt = i
			}
			break
		}
		if themeKeyLine.MatchString(l) {
			lines[i] = line
			return []byte(strings.Join(lines, "\n"))
		}
		if insertAt < 0 && themeCommentLine.MatchString(l) {
			insertAt = i + 1
		}
	}

	if insertAt < 0 {
		text := string(data)
		if text != "" && !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		return []byte(text + line + "\n")
	}

	lines = append(lines[:insertAt], append([]string{line}, lines[insertAt:]...)...)
	return []byte(strings.Join(lines, "\n"))
}

// GenerateSampleConfig returns a commented config file documenting every setting.
func GenerateSampleConfig() string {
	return `# pomo configuration file
#
# Work (25m) and break (5m) durations are fixed and cannot be configured.

# Theme ID for the terminal UI (see the Config tab for the full list).
# theme = "dracula"

# Log level for the debug log: off, debug, info, warn, error
# log_level = "off"

# Log file location (defaults to pomo.log next to this file)
# log_file = ""

# Use the terminal's alternate screen
# alt_screen = true

# Radius of the progress ring in rows (3-12)
# ring_radius = 6
`
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	appDir, err := appDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, ConfigFile), nil
}

// GetLogPath returns the log file path configured in cfg, or the default
// location next to the config file.
func GetLogPath(cfg Config) (string, error) {
	if cfg.LogFile != "" {
		return cfg.LogFile, nil
	}
	appDir, err := appDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, LogFile), nil
}

func appDir() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(configDir, app.Name)

	// Create config directory if it doesn't exist
	if err := osutil.Provider.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	return dir, nil
}
