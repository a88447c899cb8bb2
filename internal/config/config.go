// Package config loads service configuration from a YAML file with
// environment overrides.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool `yaml:"enabled"`
		Port    int  `yaml:"port"`
	} `yaml:"metrics"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	LogLevel string `yaml:"log_level"`
}

// Defaults used when the config file or individual keys are absent.
func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Metrics.Enabled = true
	cfg.Metrics.Port = 9090
	cfg.Database.Path = "data/saison.db"
	cfg.LogLevel = "info"
	return cfg
}

// Load reads the YAML config at path, then applies overrides from the
// environment (a .env file is honored when present). A missing config file
// is not an error; the defaults apply.
func Load(path string) (*Config, error) {
	// .env is optional; ignore the error when the file is absent.
	_ = godotenv.Load()

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SAISON_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("SAISON_METRICS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Metrics.Port = port
		}
	}
	if v := os.Getenv("SAISON_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("SAISON_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
