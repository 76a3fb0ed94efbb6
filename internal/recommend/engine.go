// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// Engine ranks a selected title against the catalog and attaches posters.
// It is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	ranker  *Ranker
	posters PosterFetcher
	opts    Options
	logger  zerolog.Logger

	// limiter spaces poster lookup starts across all requests.
	limiter *rate.Limiter

	// memo caches whole responses per selected title.
	memo *cache.Memo[*Response]
}

// NewEngine creates a recommendation engine over an immutable catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, ranker *Ranker, posters PosterFetcher, opts Options, logger zerolog.Logger) *Engine {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}

	limit := rate.Inf
	if opts.FetchInterval > 0 {
		limit = rate.Every(opts.FetchInterval)
	}

	metrics.CatalogItems.Set(float64(cat.Len()))

	return &Engine{
		catalog: cat,
		ranker:  ranker,
		posters: posters,
		opts:    opts,
		logger:  logger.With().Str("component", "recommend").Logger(),
		limiter: rate.NewLimiter(limit, 1),
		memo:    cache.NewMemo[*Response]("recommendations", opts.CacheSize, opts.CacheTTL),
	}
}

// Catalog returns the catalog the engine ranks against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// K returns the number of recommendations produced for a known title.
func (e *Engine) K() int {
	return e.ranker.K()
}

// Recommend returns up to K movies similar to title, each with a poster URL.
// Unknown titles return a *catalog.NotFoundError. The only other failure is
// ctx ending before the response is ready.
//
// Concurrent calls for one title share a single build. The build runs
// detached from every caller's ctx, so a caller that goes away only stops
// its own wait and the finished response is still memoized for the others.
func (e *Engine) Recommend(ctx context.Context, title string) (*Response, error) {
	start := time.Now()

	requestID := logging.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = logging.GenerateRequestID()
		ctx = logging.ContextWithRequestID(ctx, requestID)
	}
	logger := e.logger.With().Str("request_id", requestID).Str("title", title).Logger()

	if err := ctx.Err(); err != nil {
		metrics.RecordRecommendation("error", time.Since(start))
		logger.Debug().Err(err).Msg("Request ended before recommendation started")
		return nil, err
	}

	type shared struct {
		resp *Response
		hit  bool
		err  error
	}
	buildCtx := context.WithoutCancel(ctx)
	done := make(chan shared, 1)
	go func() {
		resp, hit, err := e.memo.Do(title, func() (*Response, time.Duration, error) {
			resp, buildErr := e.build(buildCtx, title)
			if buildErr != nil {
				return nil, 0, buildErr
			}
			if resp.hasErrorPoster() {
				return resp, e.opts.ErrorTTL, nil
			}
			return resp, cache.UseDefaultTTL, nil
		})
		done <- shared{resp: resp, hit: hit, err: err}
	}()

	var out shared
	select {
	case out = <-done:
	case <-ctx.Done():
		metrics.RecordRecommendation("error", time.Since(start))
		logger.Debug().Err(ctx.Err()).Msg("Request ended while recommendation was building")
		return nil, ctx.Err()
	}

	cached, hit, err := out.resp, out.hit, out.err
	if err != nil {
		var notFound *catalog.NotFoundError
		if errors.As(err, &notFound) {
			metrics.RecordRecommendation("not_found", time.Since(start))
			logger.Debug().Msg("Title not in catalog")
			return nil, err
		}
		metrics.RecordRecommendation("error", time.Since(start))
		logger.Error().Err(err).Msg("Recommendation failed")
		return nil, err
	}

	resp := cached.clone()
	resp.Metadata = ResponseMetadata{
		RequestID: requestID,
		K:         e.ranker.K(),
		LatencyMS: time.Since(start).Milliseconds(),
		CacheHit:  hit,
		Timestamp: time.Now(),
	}

	metrics.RecordRecommendation("success", time.Since(start))
	logger.Info().
		Int("items", len(resp.Items)).
		Bool("cache_hit", hit).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("Recommendations served")

	return resp, nil
}

// Search returns catalog items whose title contains query.
func (e *Engine) Search(query string, limit int) []catalog.Item {
	return e.catalog.Search(query, limit)
}

// CacheStats returns the response memo counters.
func (e *Engine) CacheStats() cache.Stats {
	return e.memo.Stats()
}

// CleanupExpired drops expired memoized responses.
func (e *Engine) CleanupExpired() int {
	return e.memo.CleanupExpired()
}

// build ranks title and resolves posters for every ranked item.
func (e *Engine) build(ctx context.Context, title string) (*Response, error) {
	selected, ranked, err := e.ranker.Rank(e.catalog, title)
	if err != nil {
		return nil, err
	}

	items, err := e.resolvePosters(ctx, ranked)
	if err != nil {
		return nil, err
	}
	return &Response{Selected: selected, Items: items}, nil
}

// resolvePosters fetches posters with opts.Workers workers. Jobs are handed
// out in rank order and results are written by index, so output order never
// depends on completion order.
func (e *Engine) resolvePosters(ctx context.Context, ranked []ScoredItem) ([]Recommendation, error) {
	items := make([]Recommendation, len(ranked))
	errs := make([]error, len(ranked))

	jobs := make(chan int)
	workers := min(e.opts.Workers, len(ranked))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				items[idx], errs[idx] = e.resolveOne(ctx, idx, ranked[idx])
			}
		}()
	}

	for idx := range ranked {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return items, nil
}

//nolint:gocritic // hugeParam: item passed by value for immutability
func (e *Engine) resolveOne(ctx context.Context, idx int, item ScoredItem) (Recommendation, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return Recommendation{}, fmt.Errorf("wait for poster lookup slot: %w", err)
	}

	res := e.posters.Fetch(ctx, item.Item.ID, item.Item.Title)
	return Recommendation{
		Rank:          idx + 1,
		Title:         item.Item.Title,
		MovieID:       item.Item.ID,
		Score:         item.Score,
		PosterURL:     res.URL,
		PosterOutcome: res.Outcome,
	}, nil
}
