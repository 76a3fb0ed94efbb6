// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// HTTP request validation structs with go-playground/validator tags.
// Handlers fill them from query and path parameters and call validateRequest
// before doing any work.

package api

// Default and maximum page sizes for the title search.
const (
	defaultMovieSearchLimit = 20
	maxMovieSearchLimit     = 100
)

// MoviesRequest represents the validated query parameters for /api/v1/movies.
//
// Fields:
//   - Query: Case-insensitive title substring (empty lists the catalog)
//   - Limit: Maximum results (1-100, default 20)
type MoviesRequest struct {
	Query string `validate:"max=200"`
	Limit int    `validate:"min=1,max=100"`
}

// RecommendationsRequest represents the validated query parameters for
// /api/v1/recommendations. Title must match a catalog title exactly.
type RecommendationsRequest struct {
	Title string `validate:"required,notblank,max=500"`
}

// PosterRequest represents the validated parameters for /api/v1/posters/{movieID}.
//
// Fields:
//   - MovieID: TMDB movie identifier from the path (positive)
//   - Title: Optional title used for the search fallback
type PosterRequest struct {
	MovieID int    `validate:"min=1"`
	Title   string `validate:"max=500"`
}
