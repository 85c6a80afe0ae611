package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the loader,
// e.g. DUKE_DATABASE_DIR for database.dir.
const EnvPrefix = "DUKE"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	envFile    string
	configName string
	configDirs []string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config:     NewConfig(),
		envFile:    ".env",
		configName: "duke",
		configDirs: []string{"."},
	}
}

// WithEnvFile sets the dotenv file read before the environment. An empty
// path disables it.
func (l *Loader) WithEnvFile(path string) *Loader {
	l.envFile = path
	return l
}

// WithConfigDirs sets the directories searched for duke.yaml, in addition to
// the database directory.
func (l *Loader) WithConfigDirs(dirs ...string) *Loader {
	l.configDirs = dirs
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Export variables from the dotenv file, keeping ones already set
// 3. Read duke.yaml if one is found
// 4. Override with DUKE_ environment variables
// 5. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if l.envFile != "" {
		if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", l.envFile, err)
		}
	}

	v := viper.New()
	l.setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(l.configName)
	v.SetConfigType("yaml")
	for _, dir := range l.configDirs {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(v.GetString("database.dir"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	l.config.Database.Dir = v.GetString("database.dir")
	l.config.Database.Filename = v.GetString("database.filename")
	l.config.Database.QueryTimeout = v.GetDuration("database.query_timeout")
	l.config.Database.WriteTimeout = v.GetDuration("database.write_timeout")
	l.config.Database.DirPermissions = v.GetUint32("database.dir_permissions")
	l.config.Display.FindNumbering = strings.ToLower(v.GetString("display.find_numbering"))
	l.config.Application.LogLevel = v.GetString("application.log_level")
	l.config.Application.Verbose = v.GetBool("application.verbose")

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

func (l *Loader) setDefaults(v *viper.Viper) {
	d := l.config
	v.SetDefault("database.dir", d.Database.Dir)
	v.SetDefault("database.filename", d.Database.Filename)
	v.SetDefault("database.query_timeout", d.Database.QueryTimeout)
	v.SetDefault("database.write_timeout", d.Database.WriteTimeout)
	v.SetDefault("database.dir_permissions", d.Database.DirPermissions)
	v.SetDefault("display.find_numbering", d.Display.FindNumbering)
	v.SetDefault("application.log_level", d.Application.LogLevel)
	v.SetDefault("application.verbose", d.Application.Verbose)
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

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	DBDir          *string
	DBFilename     *string
	DBQueryTimeout *time.Duration
	DBWriteTimeout *time.Duration

	FindNumbering *string

	LogLevel *string
	Verbose  *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.DBQueryTimeout != nil {
		config.Database.QueryTimeout = *overrides.DBQueryTimeout
	}
	if overrides.DBWriteTimeout != nil {
		config.Database.WriteTimeout = *overrides.DBWriteTimeout
	}
	if overrides.FindNumbering != nil {
		config.Display.FindNumbering = strings.ToLower(*overrides.FindNumbering)
	}
	if overrides.LogLevel != nil {
		config.Application.LogLevel = *overrides.LogLevel
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
