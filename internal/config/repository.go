package config

import (
	"fmt"
	"os"
	"path/filepath"

	"task-tracker/internal/repository/sqlite"
)

// RepositoryOptions maps the configuration onto store options
func RepositoryOptions(config *Config) sqlite.Options {
	return sqlite.Options{
		QueryTimeout: config.GetQueryTimeout(),
		WriteTimeout: config.GetWriteTimeout(),
		StrictIDs:    config.Commands.StrictIDs,
	}
}

// CreateRepository opens the configured database, creating its directory if needed
func CreateRepository(config *Config) (sqlite.Repository, error) {
	dbPath := config.GetDatabasePath()

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), os.FileMode(config.Database.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	repo, err := sqlite.NewWithOptions(dbPath, RepositoryOptions(config))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
