// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

func newTitlesCmd(opts *globalOptions) *cobra.Command {
	var (
		query string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "titles",
		Short: "List or search catalog titles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Listing titles needs only the catalog, not TMDB.
			cat, err := catalog.Load(opts.cfg.Catalog.MoviesPath, opts.cfg.Catalog.SimilarityPath)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE")
			for _, item := range cat.Search(query, limit) {
				fmt.Fprintf(tw, "%d\t%s\n", item.ID, item.Title)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive title substring")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum titles to print (0 for all)")
	return cmd
}
