// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scrape-lab/internal/fetcher"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [urls...]",
	Short: "Download URLs one after another through the rate-limited fetcher",
	Long: `Fetch requests each URL in order, waiting at least fetcher.min_interval
between requests. A failed URL is reported and the batch continues.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	f := newFetcher(cfg, log)
	result := fetcher.Batch(cmd.Context(), f, args, cmd.OutOrStdout())
	if result.HasFailures() {
		return fmt.Errorf("%d URL(s) failed", result.Failed)
	}
	return nil
}
