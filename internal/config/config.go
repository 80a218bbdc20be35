package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/thenoetrevino/circleback/internal/config/colors"
	"github.com/thenoetrevino/circleback/internal/dataset"
	"github.com/thenoetrevino/circleback/internal/database"
	"gopkg.in/yaml.v3"
)

// Defaults for zero-valued fields
const (
	DefaultListenAddr     = "127.0.0.1:8080"
	DefaultTopOwners      = 8
	DefaultStaleAfterDays = 14
	DefaultLogLevel       = "info"
)

// Environment overrides, applied after the config file
const (
	EnvDatasetURL     = "CIRCLEBACK_DATASET_URL"
	EnvListenAddr     = "CIRCLEBACK_LISTEN_ADDR"
	EnvCORSOrigins    = "CIRCLEBACK_CORS_ALLOWED_ORIGINS"
	EnvLogLevel       = "CIRCLEBACK_LOG_LEVEL"
	EnvCommentsDSN    = "CIRCLEBACK_COMMENTS_DSN"
	EnvTopOwners      = "CIRCLEBACK_TOP_OWNERS"
	EnvThemeFile      = "CIRCLEBACK_THEME_FILE"
	EnvConfigFilePath = "CIRCLEBACK_CONFIG"
)

// Config represents the application configuration
type Config struct {
	DatasetURL         string        `yaml:"dataset_url"`
	FetchTimeout       time.Duration `yaml:"fetch_timeout"`
	ListenAddr         string        `yaml:"listen_addr"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
	TopOwners          int           `yaml:"top_owners"`
	StaleAfterDays     int           `yaml:"stale_after_days"`
	CommentsDSN        string        `yaml:"comments_dsn"`
	LogLevel           string        `yaml:"log_level"`

	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// Default returns a fully populated default config
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads config from the user's config directory.
// A .env file in the working directory is read first; a missing .env or
// config file is not an error.
func Load() (*Config, error) {
	loadDotEnv()

	configPath, err := Path()
	if err != nil {
		slog.Warn("cannot determine config path, using defaults", "error", err)
		config := Default()
		loadThemeFile(config)
		config.applyEnv()
		return config, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the config file at path, falling back to defaults when it does not exist
func LoadFrom(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, err
		}
	}

	config.applyDefaults()
	loadThemeFile(&config)
	config.applyEnv()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config as YAML to path, creating parent directories
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Path returns the path to the config file.
// $CIRCLEBACK_CONFIG wins, then $XDG_CONFIG_HOME, then ~/.config.
func Path() (string, error) {
	if path := os.Getenv(EnvConfigFilePath); path != "" {
		return path, nil
	}

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "circleback", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "circleback", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DatasetURL == "" {
		c.DatasetURL = dataset.DefaultURL
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = dataset.DefaultFetchTimeout
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.TopOwners <= 0 {
		c.TopOwners = DefaultTopOwners
	}
	if c.StaleAfterDays <= 0 {
		c.StaleAfterDays = DefaultStaleAfterDays
	}
	if c.CommentsDSN == "" {
		c.CommentsDSN = database.MemoryDSN
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

// applyEnv overrides fields from CIRCLEBACK_* environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDatasetURL); v != "" {
		c.DatasetURL = v
	}
	if v := os.Getenv(EnvListenAddr); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv(EnvCORSOrigins); v != "" {
		c.CORSAllowedOrigins = splitList(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvCommentsDSN); v != "" {
		c.CommentsDSN = v
	}
	if v := os.Getenv(EnvTopOwners); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.TopOwners = n
		} else {
			slog.Warn("ignoring invalid env override", "var", EnvTopOwners, "value", v)
		}
	}
}

// loadThemeFile merges the theme from $CIRCLEBACK_THEME_FILE over the current scheme
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("failed to read theme file", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("failed to parse theme file", "path", themeFile, "error", err)
		return
	}
	config.ColorScheme.MergeFrom(themeConfig.Theme, true)
}

// loadDotEnv reads .env into the process environment without overriding set variables
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
