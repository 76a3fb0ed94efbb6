// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

func newRecommendCmd(opts *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "recommend <title>",
		Short: "Print movies similar to a title, with poster URLs",
		Long:  "Print the top recommendations for an exact catalog title. Quote titles that contain spaces.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts.cfg)
			if err != nil {
				return err
			}

			resp, err := a.engine.Recommend(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			return printRecommendations(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full response as JSON")
	return cmd
}

// printRecommendations writes one row per recommendation: rank, title, poster URL.
func printRecommendations(w io.Writer, resp *recommend.Response) error {
	if _, err := fmt.Fprintf(w, "Recommendations for %q (movie %d)\n\n", resp.Selected.Title, resp.Selected.ID); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tTITLE\tPOSTER")
	for _, item := range resp.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", item.Rank, item.Title, item.PosterURL)
	}
	return tw.Flush()
}
