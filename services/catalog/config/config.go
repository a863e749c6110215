// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config loads the catalog service configuration from a YAML
// file with environment-variable overrides for deployment.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// MaxConfigFileSize caps the config file at 1MB before parsing.
const MaxConfigFileSize = 1024 * 1024

// Config is the catalog service configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port int `yaml:"port" validate:"required,gt=0,lte=65535"`

	// DataPath is the catalog JSON document location.
	DataPath string `yaml:"data_path" validate:"required"`

	// CacheCatalog keeps the parsed catalog in memory and reloads it
	// via the file watcher instead of re-reading per request.
	CacheCatalog bool `yaml:"cache_catalog"`

	// LogLevel is debug, info, warn, or error.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`

	// LogDir enables file logging when set.
	LogDir string `yaml:"log_dir"`

	// RateLimit tunes the per-client API limiter.
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig mirrors middleware.RateLimitConfig in YAML form.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" validate:"gte=0"`
	Burst             int     `yaml:"burst" validate:"gte=0"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Port:     8600,
		DataPath: "data/litigation_database.json",
		LogLevel: "info",
	}
}

// Load reads configuration in precedence order: defaults, then the
// YAML file at path (if path is non-empty), then environment-variable
// overrides. The result is validated before returning.
//
// Environment overrides: CATALOG_PORT, CATALOG_DATA_PATH.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return Config{}, fmt.Errorf("config file: %w", err)
		}
		if info.Size() > MaxConfigFileSize {
			return Config{}, fmt.Errorf("config file %s exceeds %d bytes", path, MaxConfigFileSize)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies deployment-time overrides, matching the
// container convention of env vars over config files.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CATALOG_PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("CATALOG_DATA_PATH"); v != "" {
		cfg.DataPath = v
	}
}
