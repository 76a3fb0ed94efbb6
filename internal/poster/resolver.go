// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package poster

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// Outcome classifies how a poster URL was produced.
type Outcome string

const (
	// OutcomePoster is a real poster image URL.
	OutcomePoster Outcome = "poster"
	// OutcomeNoImage means TMDB answered but had no poster path.
	OutcomeNoImage Outcome = "no_image"
	// OutcomeError means every attempt failed at the transport level or
	// returned a body that could not be decoded.
	OutcomeError Outcome = "error"
)

// Result is a resolved poster.
type Result struct {
	URL     string  `json:"url"`
	Outcome Outcome `json:"outcome"`
	Cached  bool    `json:"cached"`
}

// Options configures a Resolver.
type Options struct {
	ImageBaseURL  string
	NoImageURL    string
	ErrorImageURL string

	MaxAttempts int
	BackoffMin  time.Duration
	BackoffMax  time.Duration

	CacheSize int
	CacheTTL  time.Duration
	ErrorTTL  time.Duration // lifetime of memoized error placeholders

	// Seed seeds the backoff jitter; zero uses the current time.
	Seed int64
}

// OptionsFromConfig maps configuration onto resolver options.
func OptionsFromConfig(tmdb config.TMDBConfig, c config.CacheConfig) Options {
	return Options{
		ImageBaseURL:  tmdb.ImageBaseURL,
		NoImageURL:    tmdb.NoImageURL,
		ErrorImageURL: tmdb.ErrorImageURL,
		MaxAttempts:   tmdb.MaxAttempts,
		BackoffMin:    tmdb.BackoffMin,
		BackoffMax:    tmdb.BackoffMax,
		CacheSize:     c.PosterSize,
		CacheTTL:      c.PosterTTL,
		ErrorTTL:      c.PosterErrorTTL,
	}
}

// Resolver turns TMDB movie IDs into poster URLs. It is safe for concurrent use.
type Resolver struct {
	lookup Lookup
	opts   Options
	memo   *cache.Memo[Result]
	logger zerolog.Logger

	rngMu sync.Mutex
	rng   *rand.Rand

	// sleep waits between attempts; replaced in tests.
	sleep func(ctx context.Context, d time.Duration)
}

// NewResolver creates a resolver over lookup.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewResolver(lookup Lookup, opts Options, logger zerolog.Logger) *Resolver {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.BackoffMax < opts.BackoffMin {
		opts.BackoffMax = opts.BackoffMin
	}
	if opts.NoImageURL == "" {
		opts.NoImageURL = config.DefaultNoImageURL
	}
	if opts.ErrorImageURL == "" {
		opts.ErrorImageURL = config.DefaultErrorImageURL
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Resolver{
		lookup: lookup,
		opts:   opts,
		memo:   cache.NewMemo[Result]("posters", opts.CacheSize, opts.CacheTTL),
		logger: logger.With().Str("component", "poster-resolver").Logger(),
		rng:    rand.New(rand.NewSource(seed)), //nolint:gosec // jitter, not security sensitive
		sleep:  sleepContext,
	}
}

// Fetch returns the poster for movieID. title, when non-empty, is used for
// the search fallback. Results are memoized per (movieID, title); concurrent
// calls for the same pair share one resolution.
//
// Fetch always returns a usable URL. Cancellation of ctx does not abort a
// resolution in progress; each request is bounded by the TMDB timeout.
func (r *Resolver) Fetch(ctx context.Context, movieID int, title string) Result {
	key := memoKey(movieID, title)
	ctx = context.WithoutCancel(ctx)

	result, hit, err := r.memo.Do(key, func() (Result, time.Duration, error) {
		res := r.Resolve(ctx, movieID, title)
		if res.Outcome == OutcomeError {
			return res, r.opts.ErrorTTL, nil
		}
		return res, cache.UseDefaultTTL, nil
	})
	if err != nil {
		// The fill never fails; keep the "always a URL" contract regardless.
		return Result{URL: r.opts.ErrorImageURL, Outcome: OutcomeError}
	}
	result.Cached = hit
	return result
}

// Resolve performs an uncached resolution.
func (r *Resolver) Resolve(ctx context.Context, movieID int, title string) Result {
	start := time.Now()
	lc := r.logger.With().Int("movie_id", movieID).Str("title", title)
	if requestID := logging.RequestIDFromContext(ctx); requestID != "" {
		lc = lc.Str("request_id", requestID)
	}
	logger := lc.Logger()

	for attempt := 1; attempt <= r.opts.MaxAttempts; attempt++ {
		path, err := r.attempt(ctx, movieID, title)
		if err == nil {
			res := r.result(path)
			metrics.RecordPosterResolution(string(res.Outcome), time.Since(start))
			logger.Debug().Str("outcome", string(res.Outcome)).Int("attempt", attempt).Msg("Poster resolved")
			return res
		}

		metrics.PosterAttemptFailures.WithLabelValues(failureReason(err)).Inc()
		logger.Warn().Err(err).
			Int("attempt", attempt).
			Int("max_attempts", r.opts.MaxAttempts).
			Msg("Poster lookup attempt failed")

		if attempt < r.opts.MaxAttempts {
			r.sleep(ctx, r.backoff())
		}
	}

	metrics.RecordPosterResolution(string(OutcomeError), time.Since(start))
	logger.Error().Int("attempts", r.opts.MaxAttempts).Msg("Poster lookup failed, using error placeholder")
	return Result{URL: r.opts.ErrorImageURL, Outcome: OutcomeError}
}

// attempt runs one detail lookup with the optional title fallback.
// It returns the poster path ("" when none was found) or an error. An
// undecodable body fails the attempt like a transport error does.
func (r *Resolver) attempt(ctx context.Context, movieID int, title string) (string, error) {
	details, err := r.lookup.MovieDetails(ctx, movieID)
	if err != nil {
		return "", err
	}
	if path := details.posterPath(); path != "" {
		return path, nil
	}
	if title == "" {
		return "", nil
	}

	metrics.PosterTitleFallbacks.Inc()
	results, err := r.lookup.SearchMovies(ctx, title)
	if err != nil {
		return "", err
	}
	return results.firstPosterPath(), nil
}

func (r *Resolver) result(path string) Result {
	if path == "" {
		return Result{URL: r.opts.NoImageURL, Outcome: OutcomeNoImage}
	}
	return Result{URL: r.opts.ImageBaseURL + path, Outcome: OutcomePoster}
}

// backoff returns a uniformly random delay in [BackoffMin, BackoffMax].
func (r *Resolver) backoff() time.Duration {
	span := r.opts.BackoffMax - r.opts.BackoffMin
	if span <= 0 {
		return r.opts.BackoffMin
	}
	r.rngMu.Lock()
	defer r.rngMu.Unlock()
	return r.opts.BackoffMin + time.Duration(r.rng.Int63n(int64(span)+1))
}

// CacheStats returns the poster memo counters.
func (r *Resolver) CacheStats() cache.Stats {
	return r.memo.Stats()
}

// CleanupExpired drops expired memoized posters.
func (r *Resolver) CleanupExpired() int {
	return r.memo.CleanupExpired()
}

func memoKey(movieID int, title string) string {
	return strconv.Itoa(movieID) + "\x00" + title
}

// failureReason labels a failed attempt for metrics.
func failureReason(err error) string {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "circuit_open"
	}
	if errors.Is(err, ErrMalformedPayload) {
		return "malformed"
	}
	var te *TransportError
	if errors.As(err, &te) {
		switch {
		case te.StatusCode != 0:
			return "status"
		case te.Timeout():
			return "timeout"
		}
	}
	return "network"
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
