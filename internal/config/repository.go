package config

import (
	"fmt"
	"os"

	"todo-list/internal/repository"
	"todo-list/internal/repository/jsonfile"
	"todo-list/internal/repository/sqlite"
)

// CreateRepository creates a repository instance for the configured
// storage backend
func CreateRepository(config *Config) (repository.Repository, error) {
	if err := os.MkdirAll(config.Storage.Dir, os.FileMode(config.Storage.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	switch config.Storage.Backend {
	case BackendSQLite:
		repo, err := sqlite.New(config.GetDataFilePath())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite store: %w", err)
		}
		return repo, nil
	case BackendJSON:
		repo, err := jsonfile.New(config.GetDataFilePath())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize task file store: %w", err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", config.Storage.Backend)
	}
}
