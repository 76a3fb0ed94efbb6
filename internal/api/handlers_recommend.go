// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/models"
)

// Movies searches catalog titles for the movie picker.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, ok := getIntParam(r, "limit", defaultMovieSearchLimit)
	if !ok {
		respondErrorDetails(w, r, http.StatusBadRequest, invalidParam("limit", "limit must be an integer"), nil)
		return
	}
	req := MoviesRequest{
		Query: r.URL.Query().Get("q"),
		Limit: limit,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	items := h.engine.Search(req.Query, req.Limit)
	movies := make([]models.Movie, len(items))
	for i, item := range items {
		movies[i] = models.Movie{MovieID: item.ID, Title: item.Title}
	}

	respondSuccess(w, r, start, models.MovieList{
		Query:  req.Query,
		Count:  len(movies),
		Movies: movies,
	}, false)
}

// Recommendations returns the movies most similar to ?title=, with posters.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := RecommendationsRequest{Title: r.URL.Query().Get("title")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	resp, err := h.engine.Recommend(r.Context(), req.Title)
	if err != nil {
		var notFound *catalog.NotFoundError
		switch {
		case errors.As(err, &notFound):
			respondErrorDetails(w, r, http.StatusNotFound, &models.APIError{
				Code:    ErrCodeTitleNotFound,
				Message: notFound.Error(),
				Details: map[string]interface{}{"title": notFound.Title},
			}, nil)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Request cancelled before posters were resolved", err)
		default:
			respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Failed to build recommendations", err)
		}
		return
	}

	respondSuccess(w, r, start, resp, resp.Metadata.CacheHit)
}

// Poster resolves a single movie's poster.
func (h *Handler) Poster(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	movieID, err := strconv.Atoi(chi.URLParam(r, "movieID"))
	if err != nil {
		respondErrorDetails(w, r, http.StatusBadRequest, invalidParam("movieID", "movieID must be an integer"), nil)
		return
	}
	req := PosterRequest{
		MovieID: movieID,
		Title:   r.URL.Query().Get("title"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	res := h.posters.Fetch(r.Context(), req.MovieID, req.Title)
	respondSuccess(w, r, start, models.PosterResponse{
		MovieID: req.MovieID,
		Title:   req.Title,
		URL:     res.URL,
		Outcome: string(res.Outcome),
	}, res.Cached)
}
