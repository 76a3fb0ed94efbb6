// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDataShape reports empty, misaligned or malformed catalog inputs.
var ErrDataShape = errors.New("catalog data shape mismatch")

// NotFoundError is returned when no catalog item has the requested title.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("title %q not found in catalog", e.Title)
}

// Item is a recommendable movie.
type Item struct {
	ID       int    `json:"movie_id"`
	Title    string `json:"title"`
	Position int    `json:"position"` // row index in the similarity matrix
}

// Catalog is the immutable pairing of ordered items and their similarity matrix.
type Catalog struct {
	items   []Item
	matrix  [][]float64
	byTitle map[string]int
}

// New validates items and matrix and builds a catalog.
// The matrix must be square with one row per item. Item positions are
// assigned from slice order. When titles repeat, lookups resolve to the
// first occurrence.
func New(items []Item, matrix [][]float64) (*Catalog, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrDataShape)
	}
	if len(matrix) != len(items) {
		return nil, fmt.Errorf("%w: matrix has %d rows for %d items", ErrDataShape, len(matrix), len(items))
	}
	for i, row := range matrix {
		if len(row) != len(items) {
			return nil, fmt.Errorf("%w: matrix row %d has %d columns, want %d", ErrDataShape, i, len(row), len(items))
		}
	}

	c := &Catalog{
		items:   make([]Item, len(items)),
		matrix:  make([][]float64, len(matrix)),
		byTitle: make(map[string]int, len(items)),
	}
	for i, item := range items {
		item.Position = i
		c.items[i] = item
		if _, dup := c.byTitle[item.Title]; !dup {
			c.byTitle[item.Title] = i
		}
		c.matrix[i] = append([]float64(nil), matrix[i]...)
	}
	return c, nil
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Item returns the item at position.
func (c *Catalog) Item(position int) (Item, bool) {
	if position < 0 || position >= len(c.items) {
		return Item{}, false
	}
	return c.items[position], true
}

// Items returns a copy of all items in catalog order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Lookup returns the first item whose title equals title exactly.
func (c *Catalog) Lookup(title string) (Item, error) {
	pos, ok := c.byTitle[title]
	if !ok {
		return Item{}, &NotFoundError{Title: title}
	}
	return c.items[pos], nil
}

// Row returns the similarity scores of the item at position against every
// catalog position. The returned slice is shared and must not be modified.
func (c *Catalog) Row(position int) ([]float64, bool) {
	if position < 0 || position >= len(c.matrix) {
		return nil, false
	}
	return c.matrix[position], true
}

// Search returns items whose title contains query, case-insensitively, in
// catalog order. An empty query matches every item. limit <= 0 means no limit.
func (c *Catalog) Search(query string, limit int) []Item {
	needle := strings.ToLower(strings.TrimSpace(query))

	var out []Item
	for _, item := range c.items {
		if needle != "" && !strings.Contains(strings.ToLower(item.Title), needle) {
			continue
		}
		out = append(out, item)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
