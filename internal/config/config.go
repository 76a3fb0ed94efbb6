// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in defaults for every setting
//  2. Config File: optional YAML file (config.yaml)
//  3. Environment Variables: override any mapped setting
//
// Config is immutable after loading and safe for concurrent reads.
type Config struct {
	TMDB      TMDBConfig      `koanf:"tmdb"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Cache     CacheConfig     `koanf:"cache"`
	Breaker   BreakerConfig   `koanf:"breaker"`
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// TMDBConfig holds poster lookup settings.
//
// Environment Variables:
//   - TMDB_API_KEY: API credential sent as the api_key query parameter
//   - TMDB_BASE_URL: API root (default: https://api.themoviedb.org/3)
//   - TMDB_IMAGE_BASE_URL: prefix joined with poster_path
//   - TMDB_LANGUAGE: language for detail lookups (default: en-US)
//   - TMDB_TIMEOUT: per-request timeout (default: 5s)
//   - TMDB_MAX_ATTEMPTS: lookup attempts before the error placeholder (default: 3)
//   - TMDB_BACKOFF_MIN / TMDB_BACKOFF_MAX: jittered sleep bounds (default: 400ms / 1.2s)
//   - TMDB_NO_IMAGE_URL / TMDB_ERROR_IMAGE_URL: placeholder images
type TMDBConfig struct {
	APIKey        string        `koanf:"api_key"`
	BaseURL       string        `koanf:"base_url" validate:"required,http_url"`
	ImageBaseURL  string        `koanf:"image_base_url" validate:"required,http_url"`
	Language      string        `koanf:"language" validate:"required"`
	Timeout       time.Duration `koanf:"timeout" validate:"gt=0"`
	MaxAttempts   int           `koanf:"max_attempts" validate:"min=1,max=10"`
	BackoffMin    time.Duration `koanf:"backoff_min" validate:"gte=0,ltefield=BackoffMax"`
	BackoffMax    time.Duration `koanf:"backoff_max" validate:"gte=0"`
	NoImageURL    string        `koanf:"no_image_url" validate:"required,url"`
	ErrorImageURL string        `koanf:"error_image_url" validate:"required,url"`
}

// CatalogConfig locates the precomputed catalog and similarity matrix.
//
// Environment Variables:
//   - MOVIES_PATH: JSON movie records (default: data/movies.json)
//   - SIMILARITY_PATH: JSON similarity matrix (default: data/similarity.json)
type CatalogConfig struct {
	MoviesPath     string `koanf:"movies_path" validate:"required"`
	SimilarityPath string `koanf:"similarity_path" validate:"required"`
}

// RecommendConfig controls ranking and poster resolution pacing.
//
// Environment Variables:
//   - RECOMMEND_TOP_K: number of recommendations (default: 5)
//   - RECOMMEND_FETCH_INTERVAL: minimum gap between poster lookups (default: 200ms)
//   - RECOMMEND_WORKERS: concurrent poster lookups per request (default: 1)
type RecommendConfig struct {
	TopK          int           `koanf:"top_k" validate:"min=1,max=100"`
	FetchInterval time.Duration `koanf:"fetch_interval" validate:"gte=0"`
	Workers       int           `koanf:"workers" validate:"min=1,max=32"`
}

// CacheConfig bounds the memo caches.
// A zero TTL keeps entries until evicted by capacity.
//
// Environment Variables:
//   - CACHE_RECOMMENDATION_SIZE / CACHE_RECOMMENDATION_TTL
//   - CACHE_POSTER_SIZE / CACHE_POSTER_TTL
//   - CACHE_POSTER_ERROR_TTL: lifetime of cached error placeholders
//   - CACHE_CLEANUP_INTERVAL: how often expired entries are swept (0 disables)
type CacheConfig struct {
	RecommendationSize int           `koanf:"recommendation_size" validate:"min=1"`
	RecommendationTTL  time.Duration `koanf:"recommendation_ttl" validate:"gte=0"`
	PosterSize         int           `koanf:"poster_size" validate:"min=1"`
	PosterTTL          time.Duration `koanf:"poster_ttl" validate:"gte=0"`
	PosterErrorTTL     time.Duration `koanf:"poster_error_ttl" validate:"gte=0"`
	CleanupInterval    time.Duration `koanf:"cleanup_interval" validate:"gte=0"`
}

// BreakerConfig configures the optional circuit breaker in front of TMDB.
//
// The breaker is off by default. While it is open, lookups fail without a
// request and count as failed attempts, so titles resolved during that window
// get the error placeholder (cached for cache.poster_error_ttl) even if TMDB
// has already recovered.
//
// Environment Variables:
//   - BREAKER_ENABLED (default: false)
//   - BREAKER_MAX_REQUESTS: probes allowed while half-open (default: 1)
//   - BREAKER_INTERVAL: closed-state counter reset interval (default: 1m)
//   - BREAKER_TIMEOUT: open-state duration (default: 30s)
//   - BREAKER_FAILURE_THRESHOLD: consecutive failures that open the circuit (default: 5)
type BreakerConfig struct {
	Enabled          bool          `koanf:"enabled"`
	MaxRequests      uint32        `koanf:"max_requests" validate:"min=1"`
	Interval         time.Duration `koanf:"interval" validate:"gte=0"`
	Timeout          time.Duration `koanf:"timeout" validate:"gt=0"`
	FailureThreshold uint32        `koanf:"failure_threshold" validate:"min=1"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST (default: 0.0.0.0)
//   - HTTP_PORT (default: 8501)
//   - HTTP_READ_TIMEOUT / HTTP_WRITE_TIMEOUT / HTTP_SHUTDOWN_TIMEOUT
//   - CORS_ORIGINS: comma-separated allowed origins (default: *)
//   - RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW: per-IP request budget
//   - RATE_LIMIT_DISABLED
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout       time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout      time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}
