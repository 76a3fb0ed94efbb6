// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/reelmatch/internal/validation"
)

// Validate checks struct tag constraints and cross-section rules.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if c.Cache.PosterTTL > 0 && c.Cache.PosterErrorTTL > c.Cache.PosterTTL {
		return fmt.Errorf("CACHE_POSTER_ERROR_TTL (%s) must not exceed CACHE_POSTER_TTL (%s)",
			c.Cache.PosterErrorTTL, c.Cache.PosterTTL)
	}

	for _, origin := range c.Server.CORSOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS_ORIGINS entry %q must be * or an http(s) origin", origin)
		}
	}

	return nil
}

// HasTMDBCredentials reports whether poster lookups can authenticate.
// Without a key every lookup fails and resolves to the error placeholder.
func (c *Config) HasTMDBCredentials() bool {
	return strings.TrimSpace(c.TMDB.APIKey) != ""
}
