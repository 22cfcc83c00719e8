package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	NATS          NATSConfig          `yaml:"nats"`
	Observability ObservabilityConfig `yaml:"observability"`
	Recalculation RecalculationConfig `yaml:"recalculation"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration.
type NATSConfig struct {
	URL string `yaml:"url"`
}

// ObservabilityConfig holds configuration for observability components.
type ObservabilityConfig struct {
	MetricsAddress string `yaml:"metrics_address"`
	Environment    string `yaml:"environment"`
}

// RecalculationConfig controls season-wide statistics recalculation.
type RecalculationConfig struct {
	// ScheduleInterval is how often the river scheduler enqueues a full
	// recalculation for each active season. Zero disables scheduling.
	ScheduleInterval time.Duration `yaml:"schedule_interval"`
	// TriggerRatePerMinute bounds how many manual season recalculations a
	// caller may trigger per minute.
	TriggerRatePerMinute int `yaml:"trigger_rate_per_minute"`
}

// LoadConfig loads the configuration from a YAML file, overriding with
// environment variables where present. If the file is missing, the
// configuration comes from the environment alone.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Observability.MetricsAddress = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	if v := os.Getenv("RECALC_SCHEDULE_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Recalculation.ScheduleInterval = d
		}
	}
	if v := os.Getenv("RECALC_TRIGGER_RATE_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Recalculation.TriggerRatePerMinute = n
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Observability.MetricsAddress == "" {
		cfg.Observability.MetricsAddress = ":9090"
	}
	if cfg.Observability.Environment == "" {
		cfg.Observability.Environment = "development"
	}
	if cfg.Recalculation.TriggerRatePerMinute == 0 {
		cfg.Recalculation.TriggerRatePerMinute = 6
	}
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	var cfg Config

	cfg.Postgres.DSN = os.Getenv("DATABASE_URL")
	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	cfg.NATS.URL = os.Getenv("NATS_URL")
	if cfg.NATS.URL == "" {
		return nil, fmt.Errorf("NATS_URL environment variable not set")
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}
