// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package steps

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/scrape-lab/internal/fixtures"
	"github.com/pdiddy/scrape-lab/internal/scrape"
	"github.com/pdiddy/scrape-lab/pkg/types"
)

// Scraping runs step 3: parse a weather page, query it with CSS selectors,
// and show a simulated scraping result.
func Scraping(ctx context.Context, d Deps) types.StepReport {
	log := d.logger().WithField("step", 3)
	report := types.StepReport{
		Step:      3,
		Title:     "Introduction to web scraping",
		Objective: "Extract weather data from web pages with HTML parsing and CSS selectors",
	}

	var html string

	s := newSection("3.1", "Simple HTML parsing")
	if body, origin, err := loadPage(ctx, d, d.WeatherPageURL, fixtures.WeatherPageHTML); err != nil {
		s.fail(log, err)
	} else {
		var sb strings.Builder
		page, err := scrape.ParseWeatherPage(io.TeeReader(body, &sb))
		html = sb.String()
		if err != nil {
			s.fail(log, err)
		} else {
			s.note("Source: %s", origin)
			s.note("Page title: %s", page.Title)
			s.note("Found %d city weather reports", len(page.Reports))
			weatherTable(s, page.Reports)
		}
	}
	report.Sections = append(report.Sections, s.Section)

	s = newSection("3.2", "Using CSS selectors")
	if html == "" {
		s.fail(log, errNoPage)
	} else if doc, err := scrape.Parse(strings.NewReader(html)); err != nil {
		s.fail(log, err)
	} else {
		s.table("Selector", "Matches")
		for _, sel := range []string{".temp", "span.status"} {
			s.row(sel, strings.Join(scrape.SelectText(doc, sel), ", "))
		}
	}
	report.Sections = append(report.Sections, s.Section)

	s = newSection("3.3", "Web scraping simulation")
	reports := fixtures.WeatherReports()
	s.note("Successfully scraped %d weather entries", len(reports))
	weatherTable(s, reports)
	report.Sections = append(report.Sections, s.Section)

	report.Learnings = []string{
		"goquery turns HTML into a document you can query",
		"Find with a tag and class locates specific elements",
		"CSS selectors allow flexible element targeting",
		"Simulated data can be used for offline practice",
	}
	return report
}

// weatherTable renders reports with the page text and the parsed Celsius
// value side by side.
func weatherTable(s *section, reports []types.WeatherReport) {
	s.table("#", "City", "Temperature", "°C", "Status")
	for i, r := range reports {
		celsius := "-"
		if v, ok := scrape.ParseTemperature(r.Temperature); ok {
			celsius = strconv.FormatFloat(v, 'f', 1, 64)
		}
		s.row(i+1, r.City, r.Temperature, celsius, r.Status)
	}
}
