// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/reelmatch/internal/logging"
)

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "The Matrix", "The Matrix"},
		{"newline", "a\nb", "a\\x0ab"},
		{"carriage return", "a\rb", "a\\x0db"},
		{"delete", "a\x7fb", "a\\x7fb"},
		{"unicode kept", "Amélie", "Amélie"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := sanitizeLogValue(tt.input); got != tt.want {
				t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGetIntParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		query  string
		want   int
		wantOK bool
	}{
		{"absent", "", 20, true},
		{"valid", "limit=5", 5, true},
		{"padded", "limit=%205", 5, true},
		{"negative", "limit=-1", -1, true},
		{"not a number", "limit=ten", 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			got, ok := getIntParam(req, "limit", 20)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("getIntParam() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	if apiErr := validateRequest(&RecommendationsRequest{Title: "Heat"}); apiErr != nil {
		t.Errorf("valid request rejected: %+v", apiErr)
	}

	apiErr := validateRequest(&MoviesRequest{Limit: 500})
	if apiErr == nil {
		t.Fatal("limit 500 accepted")
	}
	if apiErr.Code != ErrCodeValidation || apiErr.Message == "" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestRespondError_IncludesRequestID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(logging.ContextWithRequestID(req.Context(), "abc"))
	rec := httptest.NewRecorder()

	respondError(rec, req, http.StatusInternalServerError, ErrCodeInternal, "boom", errors.New("cause\ninjected"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decodeEnvelope(t, rec, nil)
	if env.Status != "error" || env.Metadata.RequestID != "abc" {
		t.Errorf("envelope = %+v", env)
	}
	if env.Error.Message != "boom" {
		t.Errorf("message = %q, internal cause must not leak", env.Error.Message)
	}
}
