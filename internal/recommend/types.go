// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"time"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/poster"
)

// ScoredItem is a ranked catalog item.
type ScoredItem struct {
	// Item is the recommended movie.
	Item catalog.Item `json:"item"`

	// Score is the raw similarity to the selected movie.
	Score float64 `json:"score"`
}

// Recommendation is one rendered slot: a ranked movie and its poster.
type Recommendation struct {
	// Rank is the 1-based position in the result.
	Rank int `json:"rank"`

	// Title is the recommended movie's title.
	Title string `json:"title"`

	// MovieID is the TMDB identifier of the movie.
	MovieID int `json:"movie_id"`

	// Score is the similarity to the selected movie.
	Score float64 `json:"score"`

	// PosterURL is always set; it may be a placeholder image.
	PosterURL string `json:"poster_url"`

	// PosterOutcome tells whether PosterURL is a real poster or a placeholder.
	PosterOutcome poster.Outcome `json:"poster_outcome"`
}

// Response is the result of a recommendation request.
type Response struct {
	// Selected is the catalog item the recommendations are for.
	Selected catalog.Item `json:"selected"`

	// Items is the ordered list of recommendations, best first.
	Items []Recommendation `json:"items"`

	// Metadata contains timing and diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains timing and diagnostic information.
type ResponseMetadata struct {
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id"`

	// K is the maximum number of items requested.
	K int `json:"k"`

	// LatencyMS is the total recommendation latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// CacheHit indicates whether the result was served from cache.
	CacheHit bool `json:"cache_hit"`

	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp"`
}

// PosterFetcher resolves a movie to a poster. Fetch never fails; an
// unresolvable poster yields a placeholder Result.
type PosterFetcher interface {
	Fetch(ctx context.Context, movieID int, title string) poster.Result
}

// hasErrorPoster reports whether any slot fell back to the error placeholder.
func (r *Response) hasErrorPoster() bool {
	for i := range r.Items {
		if r.Items[i].PosterOutcome == poster.OutcomeError {
			return true
		}
	}
	return false
}

// clone returns a copy that can be annotated without touching the cached value.
func (r *Response) clone() *Response {
	out := *r
	out.Items = append([]Recommendation(nil), r.Items...)
	return &out
}
