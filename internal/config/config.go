package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for appforge.
// Configuration can come from a YAML file or environment variables;
// environment variables override YAML values. The API key must only
// come from the environment.
type Config struct {
	// AI holds the generative endpoint configuration.
	AI AIConfig `yaml:"ai"`

	// DataDir is where the history database and logs live.
	// Defaults to ~/.appforge.
	DataDir string `yaml:"data_dir" env:"APPFORGE_DATA_DIR" env-default:""`

	// LogPath is the log file location. The TUI owns the terminal, so
	// logs never go to stdout. Defaults to <DataDir>/appforge.log.
	LogPath string `yaml:"log_path" env:"APPFORGE_LOG_PATH" env-default:""`
}

// AIConfig holds configuration for the generative-AI boundary.
type AIConfig struct {
	Endpoint    string  `yaml:"endpoint" env:"APPFORGE_AI_ENDPOINT" env-default:"https://api.openai.com/v1"`
	Model       string  `yaml:"model" env:"APPFORGE_AI_MODEL" env-default:"gpt-4o"`
	Temperature float64 `yaml:"temperature" env:"APPFORGE_AI_TEMPERATURE" env-default:"0.2"`

	// APIKey is a secret and is never read from YAML.
	APIKey string `yaml:"-" env:"OPENAI_API_KEY"`
}

// Load reads configuration from the optional config file and the
// environment, then fills in derived defaults and ensures the data
// directory exists.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("APPFORGE_CONFIG")
	if path == "" {
		path = "config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env config: %w", err)
		}
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".appforge")
	}
	if cfg.LogPath == "" {
		cfg.LogPath = filepath.Join(cfg.DataDir, "appforge.log")
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	return &cfg, nil
}

// DatabasePath returns the location of the history database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "history.db")
}
