// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scrape-lab/internal/report"
	"github.com/pdiddy/scrape-lab/internal/steps"
	"github.com/pdiddy/scrape-lab/pkg/types"
)

var basicsCmd = &cobra.Command{
	Use:   "basics",
	Short: "Step 1: basic HTTP GET requests, custom headers, and query parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLessons(cmd, nil, steps.Basics)
	},
}

var apisCmd = &cobra.Command{
	Use:   "apis",
	Short: "Step 2: JSON and XML APIs, retries, and pacing between sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLessons(cmd, nil, steps.APIs)
	},
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Step 3: parse an HTML page with CSS selectors",
	Long: `Scrape parses the built-in weather page, or the page at --url when given.
The download goes through the rate-limited fetcher.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("url")
		return runLessons(cmd, func(d *steps.Deps) { d.WeatherPageURL = url }, steps.Scraping)
	},
}

var advancedCmd = &cobra.Command{
	Use:   "advanced",
	Short: "Step 4: session headers, the rate-limited fetcher, and table extraction",
	RunE: func(cmd *cobra.Command, args []string) error {
		schedule, _ := cmd.Flags().GetString("schedule-url")
		demo, _ := cmd.Flags().GetStringSlice("demo-url")
		return runLessons(cmd, func(d *steps.Deps) {
			d.SchedulePageURL = schedule
			if len(demo) > 0 {
				d.DemoURLs = demo
			}
		}, steps.Advanced)
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every step in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLessons(cmd, nil, steps.All()...)
	},
}

func init() {
	scrapeCmd.Flags().String("url", "", "weather page to download instead of the built-in sample")
	advancedCmd.Flags().String("schedule-url", "", "schedule page to download instead of the built-in sample")
	advancedCmd.Flags().StringSlice("demo-url", nil, "URLs fetched back to back to show the rate limiter (default: the echo endpoint, 3 times)")

	rootCmd.AddCommand(basicsCmd, apisCmd, scrapeCmd, advancedCmd, allCmd)
}

// runLessons executes runners in order and renders their reports to stdout.
// Section failures are reported, not returned: a lesson that cannot reach a
// source still teaches the rest.
func runLessons(cmd *cobra.Command, customize func(*steps.Deps), runners ...steps.Runner) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	d := newDeps(cfg, loadedSecrets, log)
	if customize != nil {
		customize(&d)
	}

	reports := make([]types.StepReport, 0, len(runners))
	failed := 0
	for _, run := range runners {
		r := run(cmd.Context(), d)
		failed += r.Failed()
		reports = append(reports, r)
	}

	if err := report.Render(cmd.OutOrStdout(), reports, cfg.Output); err != nil {
		return err
	}
	if failed > 0 {
		log.WithField("failed_sections", failed).Warn("some sections did not complete")
	}
	if err := cmd.Context().Err(); err != nil {
		return fmt.Errorf("interrupted: %w", err)
	}
	return nil
}
