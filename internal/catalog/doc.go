// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package catalog holds the static movie catalog and its precomputed similarity
matrix.

A Catalog is constructed once at startup, validated, and then shared
read-only by the ranker, the HTTP API and the CLI. Nothing mutates it after
New returns, so it needs no locking.

# Data Files

Load reads two JSON documents:

  - movies: either a list of records

    [{"movie_id": 19995, "title": "Avatar"}, ...]

    or the column form produced by exporting a pandas DataFrame with
    to_dict(), keyed by row index:

    {"movie_id": {"0": 19995, ...}, "title": {"0": "Avatar", ...}}

  - similarity: a square array of arrays of numbers, row i aligned with the
    i-th movie.

# Errors

  - NotFoundError: a title lookup matched no item
  - ErrDataShape: the inputs are empty, misaligned or malformed
*/
package catalog
