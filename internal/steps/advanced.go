// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package steps

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/pdiddy/scrape-lab/internal/fixtures"
	"github.com/pdiddy/scrape-lab/internal/scrape"
	"github.com/pdiddy/scrape-lab/pkg/types"
)

// Advanced runs step 4: browser-like session headers, the rate-limited
// fetcher, and structured extraction of a train schedule.
func Advanced(ctx context.Context, d Deps) types.StepReport {
	log := d.logger().WithField("step", 4)
	report := types.StepReport{
		Step:      4,
		Title:     "Advanced scraping techniques",
		Objective: "Scrape transport data politely: sessions, rate limiting, structured extraction",
	}

	s := newSection("4.1", "Session with realistic headers")
	headers := fixtures.SessionHeaders()
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	s.table("Header", "Value")
	for _, k := range keys {
		s.row(k, headers[k])
	}
	report.Sections = append(report.Sections, s.Section)

	s = newSection("4.2", "Rate limiting")
	switch {
	case d.Fetcher == nil:
		s.fail(log, errors.New("no fetcher configured"))
	case len(d.DemoURLs) == 0:
		s.note("Fetcher ready with a %s minimum interval; no demo URLs configured", d.Fetcher.Interval())
	default:
		s.note("Minimum interval between requests: %s", d.Fetcher.Interval())
		s.table("#", "URL", "Result", "Took (incl. wait)")
		failed := 0
		for i, u := range d.DemoURLs {
			start := d.now()
			res := d.Fetcher.Fetch(ctx, u)
			took := d.now().Sub(start).Round(10 * time.Millisecond)

			result := "no result"
			if res != nil {
				result = fmt.Sprintf("HTTP %d", res.StatusCode())
			} else {
				failed++
			}
			s.row(i+1, u, result, took)
		}
		if failed == len(d.DemoURLs) {
			s.fail(log, fmt.Errorf("all %d demo requests failed", failed))
		}
	}
	report.Sections = append(report.Sections, s.Section)

	s = newSection("4.3", "Parsing the train schedule")
	if body, origin, err := loadPage(ctx, d, d.SchedulePageURL, fixtures.SchedulePageHTML); err != nil {
		s.fail(log, err)
	} else if trips, err := scrape.ParseSchedule(body); err != nil {
		s.fail(log, err)
	} else {
		s.note("Source: %s", origin)
		s.note("Extracted %d train entries", len(trips))
		s.table("Train", "Departure", "Arrival", "From", "To")
		for _, t := range trips {
			s.row(t.Train, t.Departure, t.Arrival, t.From, t.To)
		}
	}
	report.Sections = append(report.Sections, s.Section)

	report.Learnings = []string{
		"Send realistic headers and keep a session to behave like a real user",
		"Always wait between requests to avoid bans",
		"Structure scraping functions to be reusable",
		"Sample pages are a safe way to test logic before scraping real sites",
	}
	return report
}
