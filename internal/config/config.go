package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the task application
type Config struct {
	Database    DatabaseConfig    `mapstructure:"database"`
	Validation  ValidationConfig  `mapstructure:"validation"`
	Application ApplicationConfig `mapstructure:"application"`
	Commands    CommandsConfig    `mapstructure:"commands"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	// Path, when set, is used verbatim and wins over Dir/Filename.
	Path           string        `mapstructure:"path" env:"TASK_DB"`
	Dir            string        `mapstructure:"dir" env:"TASK_DB_DIR"`
	Filename       string        `mapstructure:"filename" env:"TASK_DB_FILENAME"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout" env:"TASK_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout" env:"TASK_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `mapstructure:"dir_permissions" env:"TASK_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskNameMinLength int `mapstructure:"task_name_min_length" env:"TASK_VALIDATION_TASK_NAME_MIN"`
	TaskNameMaxLength int `mapstructure:"task_name_max_length" env:"TASK_VALIDATION_TASK_NAME_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `mapstructure:"timeout" env:"TASK_APP_TIMEOUT"`
	Verbose bool          `mapstructure:"verbose" env:"TASK_APP_VERBOSE"`
}

// CommandsConfig holds command behaviour switches
type CommandsConfig struct {
	// StrictIDs makes del/do/undo fail on ids that match no task.
	StrictIDs bool `mapstructure:"strict_ids" env:"TASK_STRICT_IDS"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".task")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "task.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TaskNameMinLength: 1,
			TaskNameMaxLength: 255,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
		Commands: CommandsConfig{
			StrictIDs: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	if c.Database.Path != "" {
		return c.Database.Path
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

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values are ignored and the previous value is kept.
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if path := os.Getenv("TASK_DB"); path != "" {
		c.Database.Path = path
	}
	if dir := os.Getenv("TASK_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TASK_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	c.Database.QueryTimeout = ParseDurationWithFallback(os.Getenv("TASK_DB_QUERY_TIMEOUT"), c.Database.QueryTimeout)
	c.Database.WriteTimeout = ParseDurationWithFallback(os.Getenv("TASK_DB_WRITE_TIMEOUT"), c.Database.WriteTimeout)
	c.Database.DirPermissions = ParseUint32WithFallback(os.Getenv("TASK_DB_DIR_PERMISSIONS"), 8, c.Database.DirPermissions)

	// Validation configuration
	c.Validation.TaskNameMinLength = ParseIntWithFallback(os.Getenv("TASK_VALIDATION_TASK_NAME_MIN"), c.Validation.TaskNameMinLength)
	c.Validation.TaskNameMaxLength = ParseIntWithFallback(os.Getenv("TASK_VALIDATION_TASK_NAME_MAX"), c.Validation.TaskNameMaxLength)

	// Application configuration
	c.Application.Timeout = ParseDurationWithFallback(os.Getenv("TASK_APP_TIMEOUT"), c.Application.Timeout)
	c.Application.Verbose = ParseBoolWithFallback(os.Getenv("TASK_APP_VERBOSE"), c.Application.Verbose)

	// Commands configuration
	c.Commands.StrictIDs = ParseBoolWithFallback(os.Getenv("TASK_STRICT_IDS"), c.Commands.StrictIDs)

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		if c.Database.Dir == "" {
			return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
		}
		if c.Database.Filename == "" {
			return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
		}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Validation.TaskNameMinLength < 1 {
		return &ConfigError{Field: "validation.task_name_min_length", Message: "task name minimum length must be at least 1"}
	}
	if c.Validation.TaskNameMaxLength < c.Validation.TaskNameMinLength {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length must be greater than minimum length"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
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

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
