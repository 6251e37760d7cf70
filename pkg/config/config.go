// Package config loads and validates the server configuration from a YAML
// file with environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ServerConfig configures the HTTP serving shell.
type ServerConfig struct {
	Port            int `yaml:"port" validate:"min=1,max=65535"`
	ShutdownTimeout int `yaml:"shutdown_timeout_seconds" validate:"min=1,max=300"`
}

// CatalogConfig locates the catalog inputs.
type CatalogConfig struct {
	// GalaxyPath is the analysis pipeline's exported JSON document.
	GalaxyPath string `yaml:"galaxy_path"`
	// StorePath is the bbolt snapshot database. When the galaxy file is
	// absent the server falls back to the snapshot.
	StorePath string `yaml:"store_path"`
}

// DiscoveryConfig tunes the journey search.
type DiscoveryConfig struct {
	TargetPathLength int `yaml:"target_path_length" validate:"min=1,max=100"`
	MaxPathLength    int `yaml:"max_path_length" validate:"min=1,max=500"`
}

// FlowPathConfig tunes the cosmetic playlist curve.
type FlowPathConfig struct {
	Segments   int     `yaml:"segments" validate:"min=1,max=200"`
	LiftAmount float64 `yaml:"lift_amount" validate:"min=0"`
}

// Config is the full server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Discovery DiscoveryConfig `yaml:"discovery" validate:"required"`
	FlowPath  FlowPathConfig  `yaml:"flow_path"`
	LogLevel  string          `yaml:"log_level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

var validate = validator.New()

// Default returns the configuration used when no file is provided.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 30,
		},
		Catalog: CatalogConfig{
			StorePath: "./data/catalog.db",
		},
		Discovery: DiscoveryConfig{
			TargetPathLength: 10,
			MaxPathLength:    25,
		},
		FlowPath: FlowPathConfig{
			Segments:   20,
			LiftAmount: 2.0,
		},
		LogLevel: "info",
	}
}

// Load reads a YAML config file on top of the defaults, applies environment
// overrides, and validates the result. An empty path skips the file and
// uses defaults plus environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := validate.Struct(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Discovery.TargetPathLength > cfg.Discovery.MaxPathLength {
		return cfg, fmt.Errorf("invalid config: target_path_length %d exceeds max_path_length %d",
			cfg.Discovery.TargetPathLength, cfg.Discovery.MaxPathLength)
	}

	return cfg, nil
}

// applyEnv layers environment variables over the file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("RESONANCE_GALAXY_PATH"); v != "" {
		cfg.Catalog.GalaxyPath = v
	}
	if v := os.Getenv("RESONANCE_STORE_PATH"); v != "" {
		cfg.Catalog.StorePath = v
	}
}
