package config

import (
	"fmt"
	"os"

	"duke/internal/repository/sqlite"

	"github.com/sirupsen/logrus"
)

// CreateRepository opens the repository at the configured path, creating the
// database directory when needed. logger may be nil.
func CreateRepository(config *Config, logger logrus.FieldLogger) (sqlite.Repository, error) {
	dbPath := config.GetDatabasePath()

	if dbPath != InMemoryDatabase {
		if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	repo, err := sqlite.NewWithOptions(dbPath, sqlite.Options{
		QueryTimeout: config.GetQueryTimeout(),
		WriteTimeout: config.GetWriteTimeout(),
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(InMemoryDatabase)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
