// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.TMDB.Timeout != 5*time.Second {
		t.Errorf("TMDB.Timeout = %v, want 5s", cfg.TMDB.Timeout)
	}
	if cfg.TMDB.MaxAttempts != 3 {
		t.Errorf("TMDB.MaxAttempts = %d, want 3", cfg.TMDB.MaxAttempts)
	}
	if cfg.TMDB.BackoffMin != 400*time.Millisecond || cfg.TMDB.BackoffMax != 1200*time.Millisecond {
		t.Errorf("backoff = [%v, %v], want [400ms, 1.2s]", cfg.TMDB.BackoffMin, cfg.TMDB.BackoffMax)
	}
	if cfg.TMDB.ImageBaseURL != "https://image.tmdb.org/t/p/w500/" {
		t.Errorf("TMDB.ImageBaseURL = %q", cfg.TMDB.ImageBaseURL)
	}
	if cfg.TMDB.NoImageURL != "https://via.placeholder.com/500x750?text=No+Image" {
		t.Errorf("TMDB.NoImageURL = %q", cfg.TMDB.NoImageURL)
	}
	if cfg.TMDB.ErrorImageURL != "https://via.placeholder.com/500x750?text=Error" {
		t.Errorf("TMDB.ErrorImageURL = %q", cfg.TMDB.ErrorImageURL)
	}
	if cfg.Recommend.TopK != 5 {
		t.Errorf("Recommend.TopK = %d, want 5", cfg.Recommend.TopK)
	}
	if cfg.Recommend.FetchInterval != 200*time.Millisecond {
		t.Errorf("Recommend.FetchInterval = %v, want 200ms", cfg.Recommend.FetchInterval)
	}
	if cfg.Recommend.Workers != 1 {
		t.Errorf("Recommend.Workers = %d, want 1", cfg.Recommend.Workers)
	}
	if cfg.Breaker.Enabled {
		t.Error("Breaker.Enabled = true, want the breaker off unless configured")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "backoff min above max",
			mutate:  func(c *Config) { c.TMDB.BackoffMin = 2 * time.Second },
			wantErr: "BackoffMin",
		},
		{
			name:    "zero attempts",
			mutate:  func(c *Config) { c.TMDB.MaxAttempts = 0 },
			wantErr: "MaxAttempts",
		},
		{
			name:    "zero top k",
			mutate:  func(c *Config) { c.Recommend.TopK = 0 },
			wantErr: "TopK",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "Level",
		},
		{
			name:    "bad base url",
			mutate:  func(c *Config) { c.TMDB.BaseURL = "not a url" },
			wantErr: "BaseURL",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "Port",
		},
		{
			name:    "error ttl above poster ttl",
			mutate:  func(c *Config) { c.Cache.PosterErrorTTL = 48 * time.Hour },
			wantErr: "CACHE_POSTER_ERROR_TTL",
		},
		{
			name:    "bad cors origin",
			mutate:  func(c *Config) { c.Server.CORSOrigins = []string{"example.com"} },
			wantErr: "CORS_ORIGINS",
		},
		{
			name:   "equal backoff bounds",
			mutate: func(c *Config) { c.TMDB.BackoffMin, c.TMDB.BackoffMax = time.Second, time.Second },
		},
		{
			name:   "missing api key is allowed",
			mutate: func(c *Config) { c.TMDB.APIKey = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestHasTMDBCredentials(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if cfg.HasTMDBCredentials() {
		t.Error("default config should not carry credentials")
	}
	cfg.TMDB.APIKey = "  "
	if cfg.HasTMDBCredentials() {
		t.Error("blank key should not count as credentials")
	}
	cfg.TMDB.APIKey = "abc123"
	if !cfg.HasTMDBCredentials() {
		t.Error("expected credentials")
	}
}

func TestServerAddr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 9000}
	if got := s.Addr(); got != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q", got)
	}
}
