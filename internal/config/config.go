package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
	Events    EventsConfig    `yaml:"events"`
	Simulator SimulatorConfig `yaml:"simulator"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Share     ShareConfig     `yaml:"share"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port        int `yaml:"port"`
	MetricsPort int `yaml:"metrics_port"`
}

type StorageConfig struct {
	// Backend selects the scenario store: "file" or "postgres".
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type EventsConfig struct {
	URL string `yaml:"url"`
}

type SimulatorConfig struct {
	FetchDelayMs int `yaml:"fetch_delay_ms"`
}

type ScoringConfig struct {
	Baseline BaselineWeights `yaml:"baseline"`
}

// BaselineWeights mirrors scoring.Weights for yaml decoding.
type BaselineWeights struct {
	Infrastructure int `yaml:"infrastructure"`
	Energy         int `yaml:"energy"`
	Risk           int `yaml:"risk"`
	Socioeconomic  int `yaml:"socioeconomic"`
	Connectivity   int `yaml:"connectivity"`
}

type ShareConfig struct {
	// BaseURL is the public scenario-studio page share links point at.
	BaseURL string `yaml:"base_url"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) FetchDelay() time.Duration {
	return time.Duration(c.Simulator.FetchDelayMs) * time.Millisecond
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8620,
			MetricsPort: 8621,
		},
		Storage: StorageConfig{
			Backend: "file",
			Path:    "skadix-scenarios.json",
		},
		Events: EventsConfig{
			URL: "nats://localhost:4222",
		},
		Simulator: SimulatorConfig{
			FetchDelayMs: 500,
		},
		Scoring: ScoringConfig{
			Baseline: BaselineWeights{
				Infrastructure: 30,
				Energy:         25,
				Risk:           20,
				Socioeconomic:  15,
				Connectivity:   10,
			},
		},
		Share: ShareConfig{
			BaseURL: "http://localhost:3000/scenario-studio",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SKADIX_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("SKADIX_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("SKADIX_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("SKADIX_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("SKADIX_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("SKADIX_EVENTS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("SKADIX_FETCH_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Simulator.FetchDelayMs = n
		}
	}
	if v := os.Getenv("SKADIX_SHARE_BASE_URL"); v != "" {
		cfg.Share.BaseURL = v
	}
	if v := os.Getenv("SKADIX_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
