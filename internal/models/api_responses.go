// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"selected": {...}, "items": [...]},
//	  "metadata": {
//	    "timestamp": "2026-01-12T12:00:00Z",
//	    "query_time_ms": 812,
//	    "request_id": "5f0c..."
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {
//	    "code": "TITLE_NOT_FOUND",
//	    "message": "title \"Nope\" not found in catalog"
//	  },
//	  "metadata": {"timestamp": "2026-01-12T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - QueryTimeMS: Handler processing time in milliseconds
//   - Cached: Whether the payload was served from a memo cache (omitted if false)
//   - RequestID: The X-Request-ID of the request (omitted if unknown)
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid query parameters
//   - TITLE_NOT_FOUND: Selected title is not in the catalog
//   - NOT_FOUND: No such route
//   - METHOD_NOT_ALLOWED: Route exists for another method
//   - TOO_MANY_REQUESTS: Per-IP rate limit exceeded
//   - SERVICE_UNAVAILABLE: Request cancelled while waiting for a lookup slot
//   - INTERNAL_ERROR: Unexpected failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
