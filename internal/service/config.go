package service

import (
	"fmt"
	"os"
	"sync"

	"github.com/xolan/pomo/internal/config"
)

// ConfigService provides operations for managing configuration.
// It is safe for concurrent use: the TUI saves themes from tea.Cmd
// goroutines while views read the running config.
type ConfigService struct {
	configPath string

	mu     sync.RWMutex
	config config.Config
}

// NewConfigService creates a new ConfigService
func NewConfigService(configPath string, cfg config.Config) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		config:     cfg,
	}
}

// Get returns the current configuration
func (s *ConfigService) Get() config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// GetPath returns the path to the config file
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Exists checks if the config file exists
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// SetTheme persists a new theme. Only the theme line of the stored file
// changes, so its comments survive and command line overrides held in the
// running config are never written.
func (s *ConfigService) SetTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	stored.Theme = theme
	stored.Normalize()
	if err := stored.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var data []byte
	existing, err := os.ReadFile(s.configPath)
	switch {
	case err == nil:
		data = config.SetThemeLine(existing, stored.Theme)
	case os.IsNotExist(err):
		if data, err = config.Marshal(stored); err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
	default:
		return fmt.Errorf("failed to read config: %w", err)
	}

	if err := os.WriteFile(s.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	s.config.Theme = stored.Theme

	return nil
}

// Init creates a sample config file
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("config file already exists at %s", s.configPath)
	}

	sample := config.GenerateSampleConfig()
	if err := os.WriteFile(s.configPath, []byte(sample), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
