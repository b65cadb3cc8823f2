package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xolan/pomo/internal/config"
)

// fail prints an Error/Details/Hint block to stderr and exits with status 1.
// Callers must return after fail: in tests Exit does not stop execution.
func fail(msg string, err error, hints ...string) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", msg)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	}
	for _, hint := range hints {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
	deps.Exit(1)
}

// configHint explains how to fix a configuration validation error
func configHint(err error) string {
	switch {
	case errors.Is(err, config.ErrInvalidTheme):
		return "Use tab completion on --theme, or the Config tab, to list available themes"
	case errors.Is(err, config.ErrInvalidLogLevel):
		return "Valid log levels: " + strings.Join(config.ValidLogLevels, ", ")
	case errors.Is(err, config.ErrInvalidRingRadius):
		return fmt.Sprintf("ring_radius must be between %d and %d", config.MinRingRadius, config.MaxRingRadius)
	}
	return "Check that your config file is valid TOML"
}
