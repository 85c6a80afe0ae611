package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// Find result numbering modes
const (
	FindNumberingOrdinal  = "ordinal"
	FindNumberingPosition = "position"
)

// InMemoryDatabase is the filename that keeps the task list in memory only
const InMemoryDatabase = ":memory:"

// Config holds all configuration options for duke
type Config struct {
	Database    DatabaseConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `mapstructure:"dir"`
	Filename       string        `mapstructure:"filename"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	DirPermissions uint32        `mapstructure:"dir_permissions"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	// FindNumbering selects how find results are numbered: "ordinal" counts
	// the matches from 1, "position" shows each task's list index.
	FindNumbering string `mapstructure:"find_numbering"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	LogLevel string `mapstructure:"log_level"`
	Verbose  bool   `mapstructure:"verbose"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".duke")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "duke.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			FindNumbering: FindNumberingOrdinal,
		},
		Application: ApplicationConfig{
			LogLevel: "info",
			Verbose:  false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	if c.Database.Filename == InMemoryDatabase {
		return InMemoryDatabase
	}
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	switch c.Display.FindNumbering {
	case FindNumberingOrdinal, FindNumberingPosition:
	default:
		return &ConfigError{Field: "display.find_numbering", Message: "find numbering must be \"ordinal\" or \"position\""}
	}

	if _, err := logrus.ParseLevel(c.Application.LogLevel); err != nil {
		return &ConfigError{Field: "application.log_level", Message: err.Error()}
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
