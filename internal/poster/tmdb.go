// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package poster

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// MovieDetails is the subset of the TMDB movie detail payload used here.
type MovieDetails struct {
	ID         int     `json:"id"`
	Title      string  `json:"title"`
	PosterPath *string `json:"poster_path"`
}

// SearchResult is one entry of a TMDB movie search.
type SearchResult struct {
	ID         int     `json:"id"`
	Title      string  `json:"title"`
	PosterPath *string `json:"poster_path"`
}

// SearchResults is the TMDB movie search payload.
type SearchResults struct {
	Page         int            `json:"page"`
	Results      []SearchResult `json:"results"`
	TotalResults int            `json:"total_results"`
}

// posterPath returns the poster path or "" when absent or null.
func (d *MovieDetails) posterPath() string {
	if d == nil || d.PosterPath == nil {
		return ""
	}
	return *d.PosterPath
}

// firstPosterPath returns the first result's poster path, or "".
func (s *SearchResults) firstPosterPath() string {
	if s == nil || len(s.Results) == 0 || s.Results[0].PosterPath == nil {
		return ""
	}
	return *s.Results[0].PosterPath
}

// Lookup is the poster lookup service.
//
// Implementations return *TransportError for network failures, timeouts and
// non-2xx responses, and an error wrapping ErrMalformedPayload when a 2xx body
// cannot be decoded.
type Lookup interface {
	MovieDetails(ctx context.Context, movieID int) (*MovieDetails, error)
	SearchMovies(ctx context.Context, title string) (*SearchResults, error)
}

// ErrMalformedPayload marks a successful response whose body could not be decoded.
var ErrMalformedPayload = errors.New("malformed TMDB payload")

// TransportError is a failed request: no response, a timeout or a non-2xx status.
type TransportError struct {
	Endpoint   string
	StatusCode int // 0 when no response was received
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("tmdb %s request failed with status %d: %s", e.Endpoint, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("tmdb %s request failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request timed out.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}
