// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metrics provides Prometheus collectors for Reelmatch.

Collectors are registered with the default registry through promauto and
exposed at /metrics:

	curl http://localhost:8501/metrics

# Available Metrics

Recommendations:
  - recommendation_requests_total{result}
  - recommendation_duration_seconds
  - ranker_self_similarity_anomalies_total
  - catalog_items

Posters:
  - poster_resolutions_total{outcome}: poster, no_image, error
  - poster_resolve_duration_seconds
  - poster_attempt_failures_total{reason}
  - poster_title_fallbacks_total
  - tmdb_request_duration_seconds{endpoint}

Memo caches:
  - memo_cache_hits_total{cache}, memo_cache_misses_total{cache}
  - memo_cache_entries{cache}

Circuit breaker:
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}
*/
package metrics
