// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"errors"
	"testing"
)

func sampleItems() []Item {
	return []Item{
		{ID: 1, Title: "A"},
		{ID: 2, Title: "B"},
		{ID: 3, Title: "C"},
	}
}

func identity(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}
	return m
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		items   []Item
		matrix  [][]float64
		wantErr bool
	}{
		{"valid", sampleItems(), identity(3), false},
		{"empty catalog", nil, nil, true},
		{"too few rows", sampleItems(), identity(2), true},
		{"ragged row", sampleItems(), [][]float64{{1, 0, 0}, {0, 1}, {0, 0, 1}}, true},
		{"too many columns", sampleItems(), [][]float64{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := New(tt.items, tt.matrix)
			if tt.wantErr {
				if !errors.Is(err, ErrDataShape) {
					t.Fatalf("New() error = %v, want ErrDataShape", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if c.Len() != len(tt.items) {
				t.Errorf("Len() = %d, want %d", c.Len(), len(tt.items))
			}
		})
	}
}

func TestNew_AssignsPositions(t *testing.T) {
	t.Parallel()

	items := []Item{{ID: 10, Title: "X", Position: 99}, {ID: 20, Title: "Y", Position: 99}}
	c, err := New(items, identity(2))
	if err != nil {
		t.Fatal(err)
	}
	for i, item := range c.Items() {
		if item.Position != i {
			t.Errorf("item %d Position = %d, want %d", i, item.Position, i)
		}
	}
}

func TestNew_CopiesInputs(t *testing.T) {
	t.Parallel()

	items := sampleItems()
	matrix := identity(3)
	c, err := New(items, matrix)
	if err != nil {
		t.Fatal(err)
	}

	items[0].Title = "mutated"
	matrix[0][0] = -1

	if got, _ := c.Item(0); got.Title != "A" {
		t.Errorf("catalog item changed after caller mutation: %q", got.Title)
	}
	if row, _ := c.Row(0); row[0] != 1 {
		t.Errorf("catalog matrix changed after caller mutation: %v", row[0])
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	items := []Item{
		{ID: 1, Title: "Heat"},
		{ID: 2, Title: "Heat"},
		{ID: 3, Title: "Alien"},
	}
	c, err := New(items, identity(3))
	if err != nil {
		t.Fatal(err)
	}

	item, err := c.Lookup("Heat")
	if err != nil {
		t.Fatalf("Lookup(Heat) error = %v", err)
	}
	if item.ID != 1 || item.Position != 0 {
		t.Errorf("duplicate titles should resolve to the first item, got %+v", item)
	}

	_, err = c.Lookup("heat")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Lookup(heat) error = %v, want NotFoundError (exact match)", err)
	}
	if nf.Title != "heat" {
		t.Errorf("NotFoundError.Title = %q", nf.Title)
	}
}

func TestItemAndRowBounds(t *testing.T) {
	t.Parallel()

	c, err := New(sampleItems(), identity(3))
	if err != nil {
		t.Fatal(err)
	}

	for _, pos := range []int{-1, 3} {
		if _, ok := c.Item(pos); ok {
			t.Errorf("Item(%d) should be out of range", pos)
		}
		if _, ok := c.Row(pos); ok {
			t.Errorf("Row(%d) should be out of range", pos)
		}
	}
	if row, ok := c.Row(2); !ok || len(row) != 3 || row[2] != 1 {
		t.Errorf("Row(2) = %v, %v", row, ok)
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	items := []Item{
		{ID: 1, Title: "The Dark Knight"},
		{ID: 2, Title: "Avatar"},
		{ID: 3, Title: "The Dark Knight Rises"},
		{ID: 4, Title: "Batman Begins"},
	}
	c, err := New(items, identity(4))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		query string
		limit int
		want  []int
	}{
		{"dark", 0, []int{1, 3}},
		{"  DARK knight ", 1, []int{1}},
		{"", 2, []int{1, 2}},
		{"", 0, []int{1, 2, 3, 4}},
		{"zzz", 0, nil},
	}

	for _, tt := range tests {
		got := c.Search(tt.query, tt.limit)
		if len(got) != len(tt.want) {
			t.Errorf("Search(%q, %d) returned %d items, want %d", tt.query, tt.limit, len(got), len(tt.want))
			continue
		}
		for i, id := range tt.want {
			if got[i].ID != id {
				t.Errorf("Search(%q, %d)[%d].ID = %d, want %d", tt.query, tt.limit, i, got[i].ID, id)
			}
		}
	}
}
