package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config file names searched by the loader.
const (
	userConfigFilename    = "config.toml"
	projectConfigFilename = ".todo.toml"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the user config file (~/.todo/config.toml)
// 3. Override with the project config file (.todo.toml)
// 4. Override with environment variables
// 5. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(l.config, path); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}

	if path := findProjectConfigFile(); path != "" {
		if err := loadConfigFile(l.config, path); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	l.finalize()

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	l.finalize()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize computes derived values: the storage filename default depends
// on the selected backend.
func (l *Loader) finalize() {
	if l.config.Storage.Filename == "" {
		switch l.config.Storage.Backend {
		case BackendSQLite:
			l.config.Storage.Filename = "tasks.db"
		default:
			l.config.Storage.Filename = "tasks.json"
		}
	}
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	Backend        *string
	DataDir        *string
	DataFilename   *string
	PriorityWidth  *int
	TaskNameMinLen *int
	TaskNameMaxLen *int
	Verbose        *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.Backend != nil {
		config.Storage.Backend = *overrides.Backend
		// The backend default filename no longer applies.
		if overrides.DataFilename == nil {
			config.Storage.Filename = ""
		}
	}
	if overrides.DataDir != nil {
		config.Storage.Dir = *overrides.DataDir
	}
	if overrides.DataFilename != nil {
		config.Storage.Filename = *overrides.DataFilename
	}
	if overrides.PriorityWidth != nil {
		config.Display.PriorityWidth = *overrides.PriorityWidth
	}
	if overrides.TaskNameMinLen != nil {
		config.Validation.TaskNameMinLength = *overrides.TaskNameMinLen
	}
	if overrides.TaskNameMaxLen != nil {
		config.Validation.TaskNameMaxLength = *overrides.TaskNameMaxLen
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}

// loadConfigFile decodes a TOML config file over the current config.
// Only keys present in the file are overridden.
func loadConfigFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	return nil
}

// findUserConfigFile returns the path to the user config file if it exists
func findUserConfigFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(homeDir, ".todo", userConfigFilename)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// findProjectConfigFile returns the path to a config file in the current
// directory if it exists
func findProjectConfigFile() string {
	if _, err := os.Stat(projectConfigFilename); err != nil {
		return ""
	}
	return projectConfigFilename
}
