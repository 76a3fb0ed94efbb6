// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/models"
)

// Health reports service status. It always answers 200 so that a missing TMDB
// key, which only degrades posters, does not fail liveness probes.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	tmdbConfigured := h.config != nil && h.config.HasTMDBCredentials()
	status := "healthy"
	if !tmdbConfigured {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:         status,
		Version:        h.version,
		CatalogItems:   h.engine.Catalog().Len(),
		K:              h.engine.K(),
		TMDBConfigured: tmdbConfigured,
		Uptime:         time.Since(h.startTime).Seconds(),
		Caches: map[string]models.Cache{
			"recommendations": cacheSummary(h.engine.CacheStats()),
			"posters":         cacheSummary(h.posters.CacheStats()),
		},
	}

	respondSuccess(w, r, start, health, false)
}

func cacheSummary(s cache.Stats) models.Cache {
	return models.Cache{
		Size:      s.Size,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
		HitRate:   s.HitRate(),
	}
}
