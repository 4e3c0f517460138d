package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const defaultConfigPath = "config/config.yaml"

type Config struct {
	Server struct {
		Host            string        `yaml:"host"`
		Port            int           `yaml:"port"`
		Env             string        `yaml:"env"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`

	Database struct {
		URL     string        `yaml:"url"`
		Name    string        `yaml:"name"`
		Timeout time.Duration `yaml:"timeout"` // per store call
	} `yaml:"database"`

	Workers struct {
		// ReviewCleanupInterval is how often unreferenced reviews are swept; 0 disables the sweep.
		ReviewCleanupInterval time.Duration `yaml:"review_cleanup_interval"`
		// ReviewCleanupGrace protects reviews still being attached to their listing.
		ReviewCleanupGrace time.Duration `yaml:"review_cleanup_grace"`
	} `yaml:"workers"`

	Validation struct {
		// AllowUnknown makes request decoding drop unknown fields instead of rejecting them.
		AllowUnknown bool `yaml:"allow_unknown"`
	} `yaml:"validation"`
}

// Default returns the configuration used when no file or environment overrides exist.
func Default() *Config {
	var cfg Config
	cfg.Server.Host = ""
	cfg.Server.Port = 8080
	cfg.Server.Env = "development"
	cfg.Server.ShutdownTimeout = 10 * time.Second
	cfg.Database.URL = "mongodb://127.0.0.1:27017"
	cfg.Database.Name = "staynest"
	cfg.Database.Timeout = 10 * time.Second
	cfg.Workers.ReviewCleanupInterval = time.Hour
	cfg.Workers.ReviewCleanupGrace = 10 * time.Minute
	return &cfg
}

// LoadConfig reads .env, then the yaml file at CONFIG_PATH (optional), then environment overrides.
func LoadConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Default()

	configPath := os.Getenv("CONFIG_PATH")
	explicit := configPath != ""
	if !explicit {
		configPath = defaultConfigPath
	}

	if err := loadFile(cfg, configPath); err != nil {
		if !errors.Is(err, os.ErrNotExist) || explicit {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file %s: %w", path, err)
	}
	defer f.Close()

	// an empty file keeps the defaults
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SERVER_PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("DATABASE_NAME"); v != "" {
		cfg.Database.Name = v
	}
	return nil
}

// Address is the listen address for the HTTP server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}
