// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists config file locations in priority order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/reelmatch/config.yaml",
	"/etc/reelmatch/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Placeholder images returned when no poster can be resolved.
const (
	DefaultNoImageURL    = "https://via.placeholder.com/500x750?text=No+Image"
	DefaultErrorImageURL = "https://via.placeholder.com/500x750?text=Error"
)

// defaultConfig returns the built-in defaults applied before file and env layers.
func defaultConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			APIKey:        "",
			BaseURL:       "https://api.themoviedb.org/3",
			ImageBaseURL:  "https://image.tmdb.org/t/p/w500/",
			Language:      "en-US",
			Timeout:       5 * time.Second,
			MaxAttempts:   3,
			BackoffMin:    400 * time.Millisecond,
			BackoffMax:    1200 * time.Millisecond,
			NoImageURL:    DefaultNoImageURL,
			ErrorImageURL: DefaultErrorImageURL,
		},
		Catalog: CatalogConfig{
			MoviesPath:     "data/movies.json",
			SimilarityPath: "data/similarity.json",
		},
		Recommend: RecommendConfig{
			TopK:          5,
			FetchInterval: 200 * time.Millisecond,
			Workers:       1, // sequential lookups
		},
		Cache: CacheConfig{
			RecommendationSize: 1024,
			RecommendationTTL:  6 * time.Hour,
			PosterSize:         8192,
			PosterTTL:          24 * time.Hour,
			PosterErrorTTL:     time.Minute,
			CleanupInterval:    5 * time.Minute,
		},
		Breaker: BreakerConfig{
			Enabled:          false, // opt-in; see BreakerConfig
			MaxRequests:      1,
			Interval:         time.Minute,
			Timeout:          30 * time.Second,
			FailureThreshold: 5,
		},
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8501,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      60 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Default returns the built-in configuration without reading any source.
func Default() *Config {
	return defaultConfig()
}

// LoadWithKoanf loads configuration with layered sources:
//  1. Defaults
//  2. Config file: configPath, or CONFIG_PATH, or the first of DefaultConfigPaths
//  3. Environment variables (highest priority)
func LoadWithKoanf(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// TMDB_API_KEY -> tmdb.api_key, HTTP_PORT -> server.port
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated strings when set via env.
var sliceConfigPaths = []string{
	"server.cors_origins",
}

// processSliceFields converts comma-separated env values to slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	"tmdb_api_key":         "tmdb.api_key",
	"tmdb_base_url":        "tmdb.base_url",
	"tmdb_image_base_url":  "tmdb.image_base_url",
	"tmdb_language":        "tmdb.language",
	"tmdb_timeout":         "tmdb.timeout",
	"tmdb_max_attempts":    "tmdb.max_attempts",
	"tmdb_backoff_min":     "tmdb.backoff_min",
	"tmdb_backoff_max":     "tmdb.backoff_max",
	"tmdb_no_image_url":    "tmdb.no_image_url",
	"tmdb_error_image_url": "tmdb.error_image_url",

	"movies_path":     "catalog.movies_path",
	"similarity_path": "catalog.similarity_path",

	"recommend_top_k":          "recommend.top_k",
	"recommend_fetch_interval": "recommend.fetch_interval",
	"recommend_workers":        "recommend.workers",

	"cache_recommendation_size": "cache.recommendation_size",
	"cache_recommendation_ttl":  "cache.recommendation_ttl",
	"cache_poster_size":         "cache.poster_size",
	"cache_poster_ttl":          "cache.poster_ttl",
	"cache_poster_error_ttl":    "cache.poster_error_ttl",
	"cache_cleanup_interval":    "cache.cleanup_interval",

	"breaker_enabled":           "breaker.enabled",
	"breaker_max_requests":      "breaker.max_requests",
	"breaker_interval":          "breaker.interval",
	"breaker_timeout":           "breaker.timeout",
	"breaker_failure_threshold": "breaker.failure_threshold",

	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"cors_origins":          "server.cors_origins",
	"rate_limit_requests":   "server.rate_limit_requests",
	"rate_limit_window":     "server.rate_limit_window",
	"rate_limit_disabled":   "server.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to a koanf path.
// Unmapped variables return "" and are skipped so unrelated environment
// does not leak into the config.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
