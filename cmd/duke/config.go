package main

import (
	"fmt"
	"os"

	"duke/internal/config"
	"duke/internal/repository/sqlite"

	"github.com/sirupsen/logrus"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env Environment
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment) *RepositoryFactory {
	return &RepositoryFactory{env: env}
}

// CreateRepository creates a repository instance based on the current environment
func (rf *RepositoryFactory) CreateRepository(cfg *config.Config, logger logrus.FieldLogger) (sqlite.Repository, error) {
	switch rf.env {
	case Development:
		return rf.createDevelopmentRepository(cfg, logger)
	case Testing:
		return rf.createTestingRepository(cfg, logger)
	default:
		return config.CreateRepository(cfg, logger)
	}
}

// createDevelopmentRepository uses duke.db in the working directory
func (rf *RepositoryFactory) createDevelopmentRepository(cfg *config.Config, logger logrus.FieldLogger) (sqlite.Repository, error) {
	repo, err := sqlite.NewWithOptions("duke.db", options(cfg, logger))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development database: %w", err)
	}
	return repo, nil
}

// createTestingRepository keeps the task list in memory
func (rf *RepositoryFactory) createTestingRepository(cfg *config.Config, logger logrus.FieldLogger) (sqlite.Repository, error) {
	repo, err := sqlite.NewWithOptions(config.InMemoryDatabase, options(cfg, logger))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize testing database: %w", err)
	}
	return repo, nil
}

func options(cfg *config.Config, logger logrus.FieldLogger) sqlite.Options {
	return sqlite.Options{
		QueryTimeout: cfg.GetQueryTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
		Logger:       logger,
	}
}

// getEnvironment reads DUKE_ENV, defaulting to production
func getEnvironment() Environment {
	switch os.Getenv("DUKE_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		return Production
	}
}
