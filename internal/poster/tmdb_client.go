// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package poster

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// maxErrorBodySize limits how much of an error response is kept for diagnostics.
const maxErrorBodySize = 4 * 1024

// TMDBClient calls the TMDB v3 API.
//
// Each request carries the api_key query parameter and is bounded by the
// configured timeout. The client performs no retries of its own.
type TMDBClient struct {
	client   *resty.Client
	apiKey   string
	language string
}

// NewTMDBClient creates a TMDB client from configuration.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewTMDBClient(cfg config.TMDBConfig, logger zerolog.Logger) *TMDBClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{logger: logger.With().Str("component", "tmdb-client").Logger()})

	return &TMDBClient{
		client:   client,
		apiKey:   cfg.APIKey,
		language: cfg.Language,
	}
}

// MovieDetails fetches /movie/{id}.
func (c *TMDBClient) MovieDetails(ctx context.Context, movieID int) (*MovieDetails, error) {
	resp, err := c.get(ctx, "movie", "/movie/{id}", map[string]string{
		"api_key":  c.apiKey,
		"language": c.language,
	}, map[string]string{"id": strconv.Itoa(movieID)})
	if err != nil {
		return nil, err
	}

	var details MovieDetails
	if err := json.Unmarshal(resp.Body(), &details); err != nil {
		return nil, fmt.Errorf("%w: movie %d: %v", ErrMalformedPayload, movieID, err)
	}
	return &details, nil
}

// SearchMovies fetches /search/movie?query={title}.
func (c *TMDBClient) SearchMovies(ctx context.Context, title string) (*SearchResults, error) {
	resp, err := c.get(ctx, "search", "/search/movie", map[string]string{
		"api_key": c.apiKey,
		"query":   title,
	}, nil)
	if err != nil {
		return nil, err
	}

	var results SearchResults
	if err := json.Unmarshal(resp.Body(), &results); err != nil {
		return nil, fmt.Errorf("%w: search %q: %v", ErrMalformedPayload, title, err)
	}
	return &results, nil
}

// get performs a GET and converts failures into *TransportError.
func (c *TMDBClient) get(ctx context.Context, endpoint, path string, query, pathParams map[string]string) (*resty.Response, error) {
	start := time.Now()
	req := c.client.R().
		SetContext(ctx).
		SetQueryParams(query)
	if pathParams != nil {
		req.SetPathParams(pathParams)
	}

	resp, err := req.Get(path)
	metrics.TMDBRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: redactError(err)}
	}
	if !resp.IsSuccess() {
		body := resp.Body()
		if len(body) > maxErrorBodySize {
			body = body[:maxErrorBodySize]
		}
		return nil, &TransportError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode(),
			Body:       string(body),
		}
	}
	return resp, nil
}

// redactError hides the api_key query parameter in *url.Error messages.
func redactError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	u, parseErr := url.Parse(urlErr.URL)
	if parseErr != nil {
		return err
	}
	q := u.Query()
	if q.Has("api_key") {
		q.Set("api_key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return &url.Error{Op: urlErr.Op, URL: u.String(), Err: urlErr.Err}
}

// restyLogger routes resty's internal logging through zerolog.
type restyLogger struct {
	logger zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...) // request errors are reported by the resolver
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...)
}
