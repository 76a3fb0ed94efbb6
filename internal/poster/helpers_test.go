// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package poster

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
)

func strPtr(s string) *string { return &s }

var errConnRefused = &TransportError{Endpoint: "movie", Err: errors.New("connection refused")}

// fakeLookup is a scripted Lookup that counts calls.
type fakeLookup struct {
	mu          sync.Mutex
	detailCalls int
	searchCalls int
	searchTerms []string

	details func(call, movieID int) (*MovieDetails, error)
	search  func(call int, title string) (*SearchResults, error)
}

func (f *fakeLookup) MovieDetails(_ context.Context, movieID int) (*MovieDetails, error) {
	f.mu.Lock()
	f.detailCalls++
	call := f.detailCalls
	f.mu.Unlock()

	if f.details == nil {
		return &MovieDetails{ID: movieID}, nil
	}
	return f.details(call, movieID)
}

func (f *fakeLookup) SearchMovies(_ context.Context, title string) (*SearchResults, error) {
	f.mu.Lock()
	f.searchCalls++
	call := f.searchCalls
	f.searchTerms = append(f.searchTerms, title)
	f.mu.Unlock()

	if f.search == nil {
		return &SearchResults{}, nil
	}
	return f.search(call, title)
}

func (f *fakeLookup) calls() (detail, search int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.detailCalls, f.searchCalls
}

// sleepRecorder replaces Resolver.sleep so tests never wait.
type sleepRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (s *sleepRecorder) sleep(_ context.Context, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays = append(s.delays, d)
}

func (s *sleepRecorder) recorded() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.delays...)
}

func testOptions() Options {
	return Options{
		ImageBaseURL:  "https://image.tmdb.org/t/p/w500/",
		NoImageURL:    config.DefaultNoImageURL,
		ErrorImageURL: config.DefaultErrorImageURL,
		MaxAttempts:   3,
		BackoffMin:    400 * time.Millisecond,
		BackoffMax:    1200 * time.Millisecond,
		CacheSize:     64,
		CacheTTL:      time.Hour,
		ErrorTTL:      time.Minute,
		Seed:          42,
	}
}

func newTestResolver(lookup Lookup) (*Resolver, *sleepRecorder) {
	r := NewResolver(lookup, testOptions(), logging.Nop())
	rec := &sleepRecorder{}
	r.sleep = rec.sleep
	return r, rec
}
