// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/poster"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// fakePosters returns a deterministic URL per movie and counts calls.
type fakePosters struct {
	mu    sync.Mutex
	calls int
}

func (f *fakePosters) Fetch(_ context.Context, movieID int, _ string) poster.Result {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return poster.Result{URL: fmt.Sprintf("https://img.test/%d.jpg", movieID), Outcome: poster.OutcomePoster}
}

func (f *fakePosters) CacheStats() cache.Stats {
	return cache.Stats{Size: 1, Hits: 3, Misses: 1}
}

func (f *fakePosters) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// testCatalog holds movies A..H where closer letters are more similar.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	const n = 8
	items := make([]catalog.Item, n)
	matrix := make([][]float64, n)
	for i := range items {
		items[i] = catalog.Item{ID: 100 + i, Title: string(rune('A' + i))}
		matrix[i] = make([]float64, n)
		for j := range matrix[i] {
			d := i - j
			if d < 0 {
				d = -d
			}
			matrix[i][j] = 1.0 - 0.1*float64(d)
		}
	}
	cat, err := catalog.New(items, matrix)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return cat
}

type testServer struct {
	handler http.Handler
	posters *fakePosters
}

func newTestServer(t *testing.T, cfg *config.Config, mw *ChiMiddlewareConfig) *testServer {
	t.Helper()

	posters := &fakePosters{}
	engine := recommend.NewEngine(
		testCatalog(t),
		recommend.NewRanker(recommend.DefaultK, logging.Nop()),
		posters,
		recommend.Options{Workers: 2, CacheSize: 16, CacheTTL: time.Hour, ErrorTTL: time.Minute},
		logging.Nop(),
	)
	if mw == nil {
		mw = DefaultChiMiddlewareConfig()
		mw.RateLimitDisabled = true
	}
	router := NewRouter(NewHandler(engine, posters, cfg, "test"), NewChiMiddleware(mw))
	return &testServer{handler: router.Setup(), posters: posters}
}

func (s *testServer) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// decodeEnvelope decodes the response envelope, decoding Data into data when non-nil.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) models.APIResponse {
	t.Helper()
	var raw struct {
		Status   string           `json:"status"`
		Data     json.RawMessage  `json:"data"`
		Metadata models.Metadata  `json:"metadata"`
		Error    *models.APIError `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	if data != nil {
		if err := json.Unmarshal(raw.Data, data); err != nil {
			t.Fatalf("decode data %s: %v", raw.Data, err)
		}
	}
	return models.APIResponse{Status: raw.Status, Metadata: raw.Metadata, Error: raw.Error}
}
