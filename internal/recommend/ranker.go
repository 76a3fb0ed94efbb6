// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// DefaultK is the number of recommendations returned for a title.
const DefaultK = 5

// Ranker selects the most similar catalog items for a title.
// It holds no mutable state and is safe for concurrent use.
type Ranker struct {
	k      int
	logger zerolog.Logger
}

// NewRanker creates a ranker returning up to k items. k <= 0 selects DefaultK.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewRanker(k int, logger zerolog.Logger) *Ranker {
	if k <= 0 {
		k = DefaultK
	}
	return &Ranker{
		k:      k,
		logger: logger.With().Str("component", "ranker").Logger(),
	}
}

// K returns the maximum number of items Rank returns.
func (r *Ranker) K() int {
	return r.k
}

// Rank returns up to K items most similar to the first catalog item titled
// title, best first. The selected item itself is never included. It returns
// the selected item alongside the ranking, or a *catalog.NotFoundError.
func (r *Ranker) Rank(cat *catalog.Catalog, title string) (catalog.Item, []ScoredItem, error) {
	selected, err := cat.Lookup(title)
	if err != nil {
		return catalog.Item{}, nil, err
	}

	row, ok := cat.Row(selected.Position)
	if !ok {
		return selected, nil, fmt.Errorf("%w: no similarity row for position %d", catalog.ErrDataShape, selected.Position)
	}

	if j, anomalous := selfSimilarityAnomaly(row, selected.Position); anomalous {
		metrics.SelfSimilarityAnomalies.Inc()
		r.logger.Warn().
			Str("title", selected.Title).
			Int("position", selected.Position).
			Float64("self_score", row[selected.Position]).
			Int("rival_position", j).
			Float64("rival_score", row[j]).
			Msg("Self-similarity is not the unique row maximum")
	}

	top := TopK(row, selected.Position, r.k)
	out := make([]ScoredItem, 0, len(top))
	for _, c := range top {
		item, ok := cat.Item(c.Position)
		if !ok {
			return selected, nil, fmt.Errorf("%w: ranked position %d outside catalog", catalog.ErrDataShape, c.Position)
		}
		out = append(out, ScoredItem{Item: item, Score: c.Score})
	}
	return selected, out, nil
}

// Candidate is a scored matrix position.
type Candidate struct {
	Position int
	Score    float64
}

// TopK returns the k highest-scoring positions of row, excluding self.
// Ordering is by descending score; equal scores keep ascending position.
// NaN scores rank below every number.
func TopK(row []float64, self, k int) []Candidate {
	if k <= 0 {
		return nil
	}

	candidates := make([]Candidate, 0, len(row))
	for pos, score := range row {
		if pos == self {
			continue
		}
		candidates = append(candidates, Candidate{Position: pos, Score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return rankKey(candidates[i].Score) > rankKey(candidates[j].Score)
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}

func rankKey(score float64) float64 {
	if math.IsNaN(score) {
		return math.Inf(-1)
	}
	return score
}

// selfSimilarityAnomaly reports whether some other position scores at least
// as high as self, returning the first such position.
func selfSimilarityAnomaly(row []float64, self int) (int, bool) {
	selfScore := row[self]
	for j, score := range row {
		if j == self {
			continue
		}
		if math.IsNaN(selfScore) || score >= selfScore {
			return j, true
		}
	}
	return 0, false
}
