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
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/poster"
)

// fakeFetcher returns a deterministic poster per movie and records calls.
type fakeFetcher struct {
	mu      sync.Mutex
	calls   []int
	delay   func(movieID int) time.Duration
	outcome func(movieID int) poster.Outcome
}

func (f *fakeFetcher) Fetch(_ context.Context, movieID int, _ string) poster.Result {
	f.mu.Lock()
	f.calls = append(f.calls, movieID)
	f.mu.Unlock()

	if f.delay != nil {
		time.Sleep(f.delay(movieID))
	}
	outcome := poster.OutcomePoster
	if f.outcome != nil {
		outcome = f.outcome(movieID)
	}
	return poster.Result{URL: fmt.Sprintf("https://img.test/%d.jpg", movieID), Outcome: outcome}
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func testEngineOptions() Options {
	return Options{
		Workers:   1,
		CacheSize: 16,
		CacheTTL:  time.Hour,
		ErrorTTL:  time.Minute,
	}
}

func newTestEngine(t *testing.T, n int, fetcher PosterFetcher, opts Options) *Engine {
	t.Helper()
	return NewEngine(letterCatalog(t, descendingMatrix(n)), NewRanker(DefaultK, logging.Nop()), fetcher, opts, logging.Nop())
}

func TestEngine_Recommend(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{}
	e := newTestEngine(t, 6, fetcher, testEngineOptions())

	resp, err := e.Recommend(context.Background(), "A")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if resp.Selected.Title != "A" {
		t.Errorf("Selected = %+v", resp.Selected)
	}
	if len(resp.Items) != 5 {
		t.Fatalf("len(Items) = %d, want 5", len(resp.Items))
	}
	for i, item := range resp.Items {
		wantTitle := string(rune('B' + i))
		if item.Rank != i+1 || item.Title != wantTitle || item.MovieID != i+2 {
			t.Errorf("item %d = %+v, want rank %d %s", i, item, i+1, wantTitle)
		}
		if item.PosterURL != fmt.Sprintf("https://img.test/%d.jpg", item.MovieID) {
			t.Errorf("item %d PosterURL = %q", i, item.PosterURL)
		}
	}
	if resp.Metadata.RequestID == "" || resp.Metadata.K != 5 || resp.Metadata.CacheHit {
		t.Errorf("Metadata = %+v", resp.Metadata)
	}
}

func TestEngine_UsesRequestIDFromContext(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 6, &fakeFetcher{}, testEngineOptions())
	ctx := logging.ContextWithRequestID(context.Background(), "req-123")

	resp, err := e.Recommend(ctx, "B")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.Metadata.RequestID != "req-123" {
		t.Errorf("RequestID = %q, want req-123", resp.Metadata.RequestID)
	}
}

func TestEngine_NotFound(t *testing.T) {
	fetcher := &fakeFetcher{}
	e := newTestEngine(t, 6, fetcher, testEngineOptions())

	before := testutil.ToFloat64(metrics.RecommendationRequests.WithLabelValues("not_found"))
	_, err := e.Recommend(context.Background(), "Nope")

	var nf *catalog.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want *catalog.NotFoundError", err)
	}
	if fetcher.callCount() != 0 {
		t.Error("unknown titles must not trigger poster lookups")
	}
	if delta := testutil.ToFloat64(metrics.RecommendationRequests.WithLabelValues("not_found")) - before; delta != 1 {
		t.Errorf("not_found counter delta = %v, want 1", delta)
	}
}

func TestEngine_MemoizesPerTitle(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{}
	e := newTestEngine(t, 6, fetcher, testEngineOptions())
	ctx := context.Background()

	first, err := e.Recommend(ctx, "C")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	second, err := e.Recommend(ctx, "C")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if fetcher.callCount() != 5 {
		t.Errorf("poster fetches = %d, want 5", fetcher.callCount())
	}
	if first.Metadata.CacheHit || !second.Metadata.CacheHit {
		t.Errorf("CacheHit = (%v, %v), want (false, true)", first.Metadata.CacheHit, second.Metadata.CacheHit)
	}
	if first.Metadata.RequestID == second.Metadata.RequestID {
		t.Error("each call should get its own request ID")
	}
	for i := range first.Items {
		if first.Items[i] != second.Items[i] {
			t.Errorf("item %d differs: %+v vs %+v", i, first.Items[i], second.Items[i])
		}
	}

	// Mutating a returned response must not leak into the cache.
	second.Items[0].Title = "mutated"
	third, _ := e.Recommend(ctx, "C")
	if third.Items[0].Title == "mutated" {
		t.Error("cached response was mutated through a returned value")
	}
}

func TestEngine_ErrorPlaceholderShortensCacheLifetime(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{
		outcome: func(movieID int) poster.Outcome {
			if movieID == 3 {
				return poster.OutcomeError
			}
			return poster.OutcomePoster
		},
	}
	opts := testEngineOptions()
	opts.ErrorTTL = time.Nanosecond
	e := newTestEngine(t, 6, fetcher, opts)

	if _, err := e.Recommend(context.Background(), "A"); err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	time.Sleep(time.Millisecond)
	resp, err := e.Recommend(context.Background(), "A")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if resp.Metadata.CacheHit {
		t.Error("response with an error placeholder should have expired")
	}
	if fetcher.callCount() != 10 {
		t.Errorf("poster fetches = %d, want 10", fetcher.callCount())
	}
}

func TestEngine_WorkersPreserveRankOrder(t *testing.T) {
	t.Parallel()

	// Higher-ranked movies are slower, so completion order is reversed.
	fetcher := &fakeFetcher{
		delay: func(movieID int) time.Duration {
			return time.Duration(10-movieID) * 5 * time.Millisecond
		},
	}
	opts := testEngineOptions()
	opts.Workers = 5
	e := newTestEngine(t, 6, fetcher, opts)

	resp, err := e.Recommend(context.Background(), "A")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	for i, item := range resp.Items {
		if item.Rank != i+1 || item.MovieID != i+2 {
			t.Errorf("slot %d = %+v, want movie %d", i, item, i+2)
		}
	}
}

func TestEngine_PacesPosterLookups(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{}
	opts := testEngineOptions()
	opts.FetchInterval = 20 * time.Millisecond
	opts.Workers = 5
	e := newTestEngine(t, 6, fetcher, opts)

	start := time.Now()
	if _, err := e.Recommend(context.Background(), "A"); err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	// Five lookups with burst 1 need at least four intervals.
	if elapsed := time.Since(start); elapsed < 75*time.Millisecond {
		t.Errorf("elapsed = %v, want >= 4 fetch intervals", elapsed)
	}
}

func TestEngine_CancelledContext(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{}
	e := newTestEngine(t, 6, fetcher, testEngineOptions())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Recommend(ctx, "D"); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if fetcher.callCount() != 0 {
		t.Errorf("poster fetches = %d, want 0", fetcher.callCount())
	}

	// Failures are not memoized.
	resp, err := e.Recommend(context.Background(), "D")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.Metadata.CacheHit || len(resp.Items) != 5 {
		t.Errorf("resp = %+v", resp.Metadata)
	}
}

func TestEngine_ConcurrentRequestsShareOneBuild(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{
		delay: func(int) time.Duration { return 10 * time.Millisecond },
	}
	e := newTestEngine(t, 6, fetcher, testEngineOptions())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := e.Recommend(context.Background(), "E"); err != nil {
				t.Errorf("Recommend() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if fetcher.callCount() != 5 {
		t.Errorf("poster fetches = %d, want 5", fetcher.callCount())
	}
}

func TestEngine_CallerCancelDoesNotFailSharedBuild(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{
		delay: func(int) time.Duration { return 20 * time.Millisecond },
	}
	e := newTestEngine(t, 6, fetcher, testEngineOptions())

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := e.Recommend(ctx, "F")
		firstErr <- err
	}()

	// Join the build once it has started.
	deadline := time.Now().Add(time.Second)
	for fetcher.callCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("build never started")
		}
		time.Sleep(time.Millisecond)
	}

	type result struct {
		resp *Response
		err  error
	}
	second := make(chan result, 1)
	go func() {
		resp, err := e.Recommend(context.Background(), "F")
		second <- result{resp, err}
	}()

	cancel()
	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled caller err = %v, want context.Canceled", err)
	}

	got := <-second
	if got.err != nil {
		t.Fatalf("waiting caller err = %v, want a response", got.err)
	}
	if len(got.resp.Items) != 5 {
		t.Errorf("items = %d, want 5", len(got.resp.Items))
	}

	resp, err := e.Recommend(context.Background(), "F")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !resp.Metadata.CacheHit {
		t.Error("build finished after the first caller left, want it memoized")
	}
	if fetcher.callCount() != 5 {
		t.Errorf("poster fetches = %d, want 5 from one build", fetcher.callCount())
	}
}

func TestEngine_Search(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 6, &fakeFetcher{}, testEngineOptions())
	got := e.Search("c", 10)
	if len(got) != 1 || got[0].Title != "C" {
		t.Errorf("Search(c) = %+v", got)
	}
	if e.K() != DefaultK || e.Catalog().Len() != 6 {
		t.Errorf("K() = %d, Catalog().Len() = %d", e.K(), e.Catalog().Len())
	}
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	if opts.FetchInterval != 200*time.Millisecond {
		t.Errorf("FetchInterval = %v, want 200ms", opts.FetchInterval)
	}
	if opts.Workers != 1 || opts.CacheSize <= 0 || opts.CacheTTL <= 0 || opts.ErrorTTL <= 0 {
		t.Errorf("options = %+v", opts)
	}
}
