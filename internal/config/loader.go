package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ConfigFileEnv names the environment variable pointing at a config file
const ConfigFileEnv = "TASK_CONFIG"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	configFile string
	envFiles   []string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config:   NewConfig(),
		envFiles: []string{".env"},
	}
}

// WithConfigFile sets an explicit YAML config file. A missing explicit file is an error.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// WithEnvFiles replaces the dotenv files read before the environment
func (l *Loader) WithEnvFiles(paths ...string) *Loader {
	l.envFiles = paths
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file, if any
// 3. Override with environment variables (.env files fill unset variables)
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.loadConfigFile(); err != nil {
		return nil, err
	}

	if err := l.loadEnvFiles(); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

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
		overrides.Apply(config)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// resolveConfigFile picks the explicit file, then $TASK_CONFIG, then
// ~/.task/config.yaml. explicit reports whether the file must exist.
func (l *Loader) resolveConfigFile() (path string, explicit bool) {
	if l.configFile != "" {
		return l.configFile, true
	}
	if env := os.Getenv(ConfigFileEnv); env != "" {
		return env, true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, ".task", "config.yaml"), false
}

func (l *Loader) loadConfigFile() error {
	path, explicit := l.resolveConfigFile()
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("config file %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := v.Unmarshal(l.config); err != nil {
		return fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	return nil
}

// loadEnvFiles reads dotenv files without overriding variables already set
func (l *Loader) loadEnvFiles() error {
	for _, path := range l.envFiles {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Database overrides
	DBPath         *string
	DBDir          *string
	DBFilename     *string
	DBQueryTimeout *time.Duration
	DBWriteTimeout *time.Duration

	// Validation overrides
	TaskNameMaxLength *int

	// Application overrides
	Timeout *time.Duration
	Verbose *bool

	// Commands overrides
	StrictIDs *bool
}

// Apply copies every set override onto config
func (o *ConfigOverrides) Apply(config *Config) {
	if o.DBPath != nil {
		config.Database.Path = *o.DBPath
	}
	if o.DBDir != nil {
		config.Database.Dir = *o.DBDir
	}
	if o.DBFilename != nil {
		config.Database.Filename = *o.DBFilename
	}
	if o.DBQueryTimeout != nil {
		config.Database.QueryTimeout = *o.DBQueryTimeout
	}
	if o.DBWriteTimeout != nil {
		config.Database.WriteTimeout = *o.DBWriteTimeout
	}

	if o.TaskNameMaxLength != nil {
		config.Validation.TaskNameMaxLength = *o.TaskNameMaxLength
	}

	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}

	if o.StrictIDs != nil {
		config.Commands.StrictIDs = *o.StrictIDs
	}
}
