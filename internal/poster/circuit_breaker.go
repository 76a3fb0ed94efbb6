// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package poster

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// CircuitBreakerClient wraps a Lookup with the circuit breaker pattern so a
// failing TMDB is not hammered by every poster attempt.
//
// Transport failures and undecodable bodies count against the breaker.
//
// While open, calls fail fast with gobreaker.ErrOpenState, which the
// Resolver treats like any other transport failure.
type CircuitBreakerClient struct {
	client Lookup
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
	logger zerolog.Logger
}

// NewCircuitBreakerClient wraps client with a breaker configured from cfg.
// The circuit opens after cfg.FailureThreshold consecutive transport failures.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCircuitBreakerClient(client Lookup, cfg config.BreakerConfig, logger zerolog.Logger) *CircuitBreakerClient {
	cbName := "tmdb-api"
	cbLogger := logger.With().Str("component", "circuit-breaker").Str("breaker", cbName).Logger()

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(0)

	threshold := cfg.FailureThreshold
	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			shouldTrip := counts.ConsecutiveFailures >= threshold
			if shouldTrip {
				cbLogger.Warn().
					Uint32("consecutive_failures", counts.ConsecutiveFailures).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			cbLogger.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{
		client: client,
		cb:     cb,
		name:   cbName,
		logger: cbLogger,
	}
}

// execute runs fn under the breaker and records the outcome.
func (cbc *CircuitBreakerClient) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := cbc.cb.Execute(fn)

	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
		cbc.logger.Debug().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
		counts := cbc.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
	}
	return result, err
}

// castResult type-asserts a breaker result.
func castResult[T any](result interface{}, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	typed, ok := result.(*T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// State returns the current breaker state.
func (cbc *CircuitBreakerClient) State() gobreaker.State {
	return cbc.cb.State()
}

// MovieDetails fetches movie details with circuit breaker protection.
func (cbc *CircuitBreakerClient) MovieDetails(ctx context.Context, movieID int) (*MovieDetails, error) {
	return castResult[MovieDetails](cbc.execute(func() (interface{}, error) {
		return cbc.client.MovieDetails(ctx, movieID)
	}))
}

// SearchMovies searches by title with circuit breaker protection.
func (cbc *CircuitBreakerClient) SearchMovies(ctx context.Context, title string) (*SearchResults, error) {
	return castResult[SearchResults](cbc.execute(func() (interface{}, error) {
		return cbc.client.SearchMovies(ctx, title)
	}))
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// NewLookup builds the TMDB lookup chain from configuration: the resty client,
// wrapped in a circuit breaker when enabled.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewLookup(tmdb config.TMDBConfig, breaker config.BreakerConfig, logger zerolog.Logger) Lookup {
	client := NewTMDBClient(tmdb, logger)
	if !breaker.Enabled {
		return client
	}
	return NewCircuitBreakerClient(client, breaker, logger)
}
