package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Storage backend names accepted by the repository factory.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for the to-do list application
type Config struct {
	Storage     StorageConfig     `toml:"storage"`
	Display     DisplayConfig     `toml:"display"`
	Validation  ValidationConfig  `toml:"validation"`
	Application ApplicationConfig `toml:"application"`
}

// StorageConfig holds persistence-related configuration
type StorageConfig struct {
	Backend        string `toml:"backend" env:"TODO_BACKEND"`
	Dir            string `toml:"dir" env:"TODO_DATA_DIR"`
	Filename       string `toml:"filename" env:"TODO_DATA_FILENAME"`
	DirPermissions uint32 `toml:"dir_permissions" env:"TODO_DATA_DIR_PERMISSIONS"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	PriorityWidth int `toml:"priority_width" env:"TODO_DISPLAY_PRIORITY_WIDTH"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskNameMinLength int `toml:"task_name_min_length" env:"TODO_VALIDATION_TASK_NAME_MIN"`
	TaskNameMaxLength int `toml:"task_name_max_length" env:"TODO_VALIDATION_TASK_NAME_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool `toml:"verbose" env:"TODO_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults. The
// storage filename is left empty here; the loader fills in the
// backend-specific default once the backend is known.
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDataDir := filepath.Join(homeDir, ".todo")

	return &Config{
		Storage: StorageConfig{
			Backend:        BackendJSON,
			Dir:            defaultDataDir,
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			PriorityWidth: 6,
		},
		Validation: ValidationConfig{
			TaskNameMinLength: 1,
			TaskNameMaxLength: 255,
		},
		Application: ApplicationConfig{
			Verbose: false,
		},
	}
}

// GetDataFilePath returns the full path to the persisted task file
func (c *Config) GetDataFilePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if backend := os.Getenv("TODO_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if dir := os.Getenv("TODO_DATA_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TODO_DATA_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if perms := os.Getenv("TODO_DATA_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Storage.DirPermissions = uint32(p)
		}
	}

	if width := os.Getenv("TODO_DISPLAY_PRIORITY_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil {
			c.Display.PriorityWidth = w
		}
	}

	if minLen := os.Getenv("TODO_VALIDATION_TASK_NAME_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.TaskNameMinLength = n
		}
	}
	if maxLen := os.Getenv("TODO_VALIDATION_TASK_NAME_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TaskNameMaxLength = n
		}
	}

	if verbose := os.Getenv("TODO_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Backend != BackendJSON && c.Storage.Backend != BackendSQLite {
		return &ConfigError{Field: "storage.backend", Message: "backend must be json or sqlite"}
	}
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "data directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "data filename cannot be empty"}
	}

	if c.Display.PriorityWidth < 1 {
		return &ConfigError{Field: "display.priority_width", Message: "priority width must be at least 1"}
	}

	if c.Validation.TaskNameMinLength < 1 {
		return &ConfigError{Field: "validation.task_name_min_length", Message: "task name minimum length must be at least 1"}
	}
	if c.Validation.TaskNameMaxLength < c.Validation.TaskNameMinLength {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length must be greater than minimum length"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
