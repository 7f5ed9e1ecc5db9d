package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := NewConfig()

	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(home, ".todo"), cfg.Storage.Dir)
	assert.Empty(t, cfg.Storage.Filename)
	assert.Equal(t, uint32(0755), cfg.Storage.DirPermissions)
	assert.Equal(t, 6, cfg.Display.PriorityWidth)
	assert.Equal(t, 1, cfg.Validation.TaskNameMinLength)
	assert.Equal(t, 255, cfg.Validation.TaskNameMaxLength)
	assert.False(t, cfg.Application.Verbose)
}

func TestConfig_GetDataFilePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Dir = "/data/todo"
	cfg.Storage.Filename = "tasks.json"

	assert.Equal(t, filepath.Join("/data/todo", "tasks.json"), cfg.GetDataFilePath())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("TODO_BACKEND", "sqlite")
	t.Setenv("TODO_DATA_DIR", "/custom/dir")
	t.Setenv("TODO_DATA_FILENAME", "custom.db")
	t.Setenv("TODO_DATA_DIR_PERMISSIONS", "0700")
	t.Setenv("TODO_DISPLAY_PRIORITY_WIDTH", "8")
	t.Setenv("TODO_VALIDATION_TASK_NAME_MIN", "2")
	t.Setenv("TODO_VALIDATION_TASK_NAME_MAX", "100")
	t.Setenv("TODO_VERBOSE", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/custom/dir", cfg.Storage.Dir)
	assert.Equal(t, "custom.db", cfg.Storage.Filename)
	assert.Equal(t, uint32(0700), cfg.Storage.DirPermissions)
	assert.Equal(t, 8, cfg.Display.PriorityWidth)
	assert.Equal(t, 2, cfg.Validation.TaskNameMinLength)
	assert.Equal(t, 100, cfg.Validation.TaskNameMaxLength)
	assert.True(t, cfg.Application.Verbose)
}

func TestConfig_LoadFromEnvironment_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("TODO_DATA_DIR_PERMISSIONS", "not-octal")
	t.Setenv("TODO_DISPLAY_PRIORITY_WIDTH", "wide")
	t.Setenv("TODO_VERBOSE", "sometimes")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, uint32(0755), cfg.Storage.DirPermissions)
	assert.Equal(t, 6, cfg.Display.PriorityWidth)
	assert.False(t, cfg.Application.Verbose)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := NewConfig()
		cfg.Storage.Filename = "tasks.json"
		return cfg
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:   "should accept a complete valid configuration",
			mutate: func(c *Config) {},
		},
		{
			name:   "should accept the sqlite backend",
			mutate: func(c *Config) { c.Storage.Backend = BackendSQLite },
		},
		{
			name:      "should reject an unknown backend",
			mutate:    func(c *Config) { c.Storage.Backend = "postgres" },
			wantField: "storage.backend",
		},
		{
			name:      "should reject an empty data directory",
			mutate:    func(c *Config) { c.Storage.Dir = "" },
			wantField: "storage.dir",
		},
		{
			name:      "should reject an empty filename",
			mutate:    func(c *Config) { c.Storage.Filename = "" },
			wantField: "storage.filename",
		},
		{
			name:      "should reject a priority width below one",
			mutate:    func(c *Config) { c.Display.PriorityWidth = 0 },
			wantField: "display.priority_width",
		},
		{
			name:      "should reject a zero minimum name length",
			mutate:    func(c *Config) { c.Validation.TaskNameMinLength = 0 },
			wantField: "validation.task_name_min_length",
		},
		{
			name: "should reject a maximum name length below the minimum",
			mutate: func(c *Config) {
				c.Validation.TaskNameMinLength = 10
				c.Validation.TaskNameMaxLength = 5
			},
			wantField: "validation.task_name_max_length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{Field: "storage.backend", Message: "backend must be json or sqlite"}

	assert.Equal(t, "storage.backend: backend must be json or sqlite", err.Error())
}
