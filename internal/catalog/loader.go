// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/goccy/go-json"
)

// Load reads the movie records and similarity matrix from JSON files.
func Load(moviesPath, similarityPath string) (*Catalog, error) {
	movies, err := os.Open(moviesPath)
	if err != nil {
		return nil, fmt.Errorf("open movies file: %w", err)
	}
	defer movies.Close()

	similarity, err := os.Open(similarityPath)
	if err != nil {
		return nil, fmt.Errorf("open similarity file: %w", err)
	}
	defer similarity.Close()

	return LoadReaders(movies, similarity)
}

// LoadReaders is Load over arbitrary readers.
func LoadReaders(movies, similarity io.Reader) (*Catalog, error) {
	items, err := decodeMovies(movies)
	if err != nil {
		return nil, err
	}

	var matrix [][]float64
	if err := json.NewDecoder(similarity).Decode(&matrix); err != nil {
		return nil, fmt.Errorf("%w: decode similarity matrix: %v", ErrDataShape, err)
	}

	return New(items, matrix)
}

// movieRecord accepts both movie_id and id for the external identifier.
type movieRecord struct {
	MovieID *int   `json:"movie_id"`
	ID      *int   `json:"id"`
	Title   string `json:"title"`
}

func (r movieRecord) item() (Item, bool) {
	switch {
	case r.MovieID != nil:
		return Item{ID: *r.MovieID, Title: r.Title}, true
	case r.ID != nil:
		return Item{ID: *r.ID, Title: r.Title}, true
	default:
		return Item{}, false
	}
}

// decodeMovies accepts a record list or a column-oriented object.
func decodeMovies(r io.Reader) ([]Item, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read movies: %w", err)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: movies document is empty", ErrDataShape)
	}

	if trimmed[0] == '[' {
		return decodeMovieRecords(trimmed)
	}
	return decodeMovieColumns(trimmed)
}

func decodeMovieRecords(data []byte) ([]Item, error) {
	var records []movieRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode movie records: %v", ErrDataShape, err)
	}

	items := make([]Item, 0, len(records))
	for i, rec := range records {
		item, ok := rec.item()
		if !ok {
			return nil, fmt.Errorf("%w: movie record %d has no movie_id", ErrDataShape, i)
		}
		items = append(items, item)
	}
	return items, nil
}

// decodeMovieColumns decodes {"movie_id": {"0": ..}, "title": {"0": ..}}.
// Rows are ordered by their integer index key.
func decodeMovieColumns(data []byte) ([]Item, error) {
	var columns struct {
		MovieID map[string]int    `json:"movie_id"`
		Title   map[string]string `json:"title"`
	}
	if err := json.Unmarshal(data, &columns); err != nil {
		return nil, fmt.Errorf("%w: decode movie columns: %v", ErrDataShape, err)
	}
	if len(columns.MovieID) != len(columns.Title) {
		return nil, fmt.Errorf("%w: %d movie_id values for %d titles",
			ErrDataShape, len(columns.MovieID), len(columns.Title))
	}

	type row struct {
		index int
		key   string
	}
	rows := make([]row, 0, len(columns.MovieID))
	seen := make(map[int]string, len(columns.MovieID))
	for key := range columns.MovieID {
		idx, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: row key %q is not an integer", ErrDataShape, key)
		}
		if prev, dup := seen[idx]; dup {
			return nil, fmt.Errorf("%w: row keys %q and %q both name row %d", ErrDataShape, prev, key, idx)
		}
		seen[idx] = key
		if _, ok := columns.Title[key]; !ok {
			return nil, fmt.Errorf("%w: row %q has no title", ErrDataShape, key)
		}
		rows = append(rows, row{index: idx, key: key})
	}
	sort.Slice(rows, func(a, b int) bool { return rows[a].index < rows[b].index })

	items := make([]Item, len(rows))
	for i, r := range rows {
		items[i] = Item{ID: columns.MovieID[r.key], Title: columns.Title[r.key]}
	}
	return items, nil
}
