// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package models

// HealthStatus is the payload of GET /health.
//
// Status is "healthy" when TMDB credentials are configured and "degraded"
// otherwise; in degraded mode every poster resolves to a placeholder but
// recommendations are still served.
type HealthStatus struct {
	Status         string           `json:"status"`
	Version        string           `json:"version"`
	CatalogItems   int              `json:"catalog_items"`
	K              int              `json:"k"`
	TMDBConfigured bool             `json:"tmdb_configured"`
	Uptime         float64          `json:"uptime_seconds"`
	Caches         map[string]Cache `json:"caches,omitempty"`
}

// Cache summarizes a memo cache.
type Cache struct {
	Size      int     `json:"size"`
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	Evictions int64   `json:"evictions"`
	HitRate   float64 `json:"hit_rate"`
}

// Movie is a catalog entry as exposed by the title search.
type Movie struct {
	MovieID int    `json:"movie_id"`
	Title   string `json:"title"`
}

// MovieList is the payload of GET /api/v1/movies.
type MovieList struct {
	Query  string  `json:"query"`
	Count  int     `json:"count"`
	Movies []Movie `json:"movies"`
}

// PosterResponse is the payload of GET /api/v1/posters/{movieID}.
type PosterResponse struct {
	MovieID int    `json:"movie_id"`
	Title   string `json:"title,omitempty"`
	URL     string `json:"url"`
	Outcome string `json:"outcome"`
}
