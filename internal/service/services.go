// Package service provides the application layer shared by the CLI and the TUI.
package service

import (
	"github.com/xolan/pomo/internal/config"
	"github.com/xolan/pomo/internal/logging"
)

// Services holds all service instances used by the application
type Services struct {
	Config *ConfigService
	Log    *logging.Logger
}

// NewServicesWithPaths creates a new Services instance for the config file at
// configPath. A nil logger discards all records.
func NewServicesWithPaths(configPath string, cfg config.Config, logger *logging.Logger) *Services {
	if logger == nil {
		logger = logging.Discard()
	}

	return &Services{
		Config: NewConfigService(configPath, cfg),
		Log:    logger,
	}
}

// OpenLog opens the log file configured in cfg.
func OpenLog(cfg config.Config) (*logging.Logger, error) {
	if _, enabled := logging.ParseLevel(cfg.LogLevel); !enabled {
		return logging.Discard(), nil
	}

	logPath, err := config.GetLogPath(cfg)
	if err != nil {
		return nil, err
	}

	return logging.New(logPath, cfg.LogLevel)
}

// Close releases resources held by the services
func (s *Services) Close() error {
	return s.Log.Close()
}
