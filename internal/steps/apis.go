// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/pdiddy/scrape-lab/internal/fixtures"
	"github.com/pdiddy/scrape-lab/internal/httputil"
	"github.com/pdiddy/scrape-lab/pkg/types"
)

// APIs runs step 2: region data, a simulated weather API, a retried call,
// BMKG earthquakes (XML), an exchange rate, store products, and COVID-19
// statistics. Network sections are spaced by d.Pacer.
func APIs(ctx context.Context, d Deps) types.StepReport {
	log := d.logger().WithField("step", 2)
	report := types.StepReport{
		Step:      2,
		Title:     "Working with APIs",
		Objective: "Access real-time data through REST (JSON) and XML APIs",
	}

	// paced runs fn after waiting for the pacer; a cancelled context fails
	// the section without calling fn.
	paced := func(s *section, fn func() error) {
		if err := d.pace(ctx); err != nil {
			s.fail(log, fmt.Errorf("waiting for pacer: %w", err))
		} else if err := fn(); err != nil {
			s.fail(log, err)
		}
		report.Sections = append(report.Sections, s.Section)
	}

	s := newSection("2.1", "Indonesian region API")
	paced(s, func() error {
		provinces, err := d.Sources.Provinces(ctx, map[string]string{"User-Agent": "LatihanAPI/1.0"})
		if err != nil {
			return err
		}
		s.note("Retrieved %d provinces", len(provinces))
		s.table("#", "Province")
		for i, p := range first(provinces, 5) {
			s.row(i+1, p.Name)
		}
		return nil
	})

	s = newSection("2.2", "Jakarta weather API simulation")
	w := fixtures.Weather("Jakarta", d.now())
	s.table("City", "Temperature", "Condition", "Humidity", "Wind")
	s.row(w.City, fmt.Sprintf("%.1f°C", w.Temperature), w.Condition, fmt.Sprintf("%d%%", w.Humidity), fmt.Sprintf("%.1f km/h", w.WindSpeed))
	s.note("Reading time: %s", w.Timestamp.Format(time.RFC3339))
	report.Sections = append(report.Sections, s.Section)

	s = newSection("2.3", "Error handling with retries")
	paced(s, func() error {
		res, err := httputil.GetWithRetry(ctx, d.Sources.HTTP, d.Sources.Endpoints.Delay, d.Retry, log)
		if err != nil {
			return fmt.Errorf("safe API call failed: %w", err)
		}
		s.note("Safe API call successful (HTTP %d, %d bytes)", res.StatusCode(), len(res.Body()))
		return nil
	})

	s = newSection("2.4", "BMKG earthquake data (XML)")
	paced(s, func() error {
		quakes, err := d.Sources.Earthquakes(ctx)
		if err != nil {
			return fmt.Errorf("fetching BMKG earthquake data: %w", err)
		}
		s.note("Retrieved %d recent earthquakes", len(quakes))
		s.table("#", "Date", "Region", "Magnitude", "Depth")
		for i, q := range first(quakes, 3) {
			s.row(i+1, q.Date, q.Region, fmt.Sprintf("M%.1f", q.Magnitude), q.Depth)
		}
		return nil
	})

	s = newSection("2.5", "Currency exchange rate (USD to IDR)")
	paced(s, func() error {
		r, err := d.Sources.ExchangeRate(ctx, "USD", "IDR", d.ExchangeAccessKey)
		if err != nil {
			return fmt.Errorf("fetching exchange rate: %w", err)
		}
		s.note("USD to IDR exchange rate: %.2f", r)
		return nil
	})

	s = newSection("2.6", "Product data (Fake Store API)")
	paced(s, func() error {
		products, err := d.Sources.Products(ctx)
		if err != nil {
			return fmt.Errorf("fetching product data: %w", err)
		}
		s.note("Retrieved %d products", len(products))
		s.table("Title", "Price")
		for _, p := range first(products, 3) {
			s.row(p.Title, fmt.Sprintf("$%.2f", p.Price))
		}
		return nil
	})

	s = newSection("2.7", "COVID-19 Indonesia historical data")
	paced(s, func() error {
		c, err := d.Sources.CovidSummary(ctx)
		if err != nil {
			return fmt.Errorf("fetching COVID data: %w", err)
		}
		s.table("Positive", "Recovered", "Deaths")
		s.row(c.Positive, c.Recovered, c.Deaths)
		return nil
	})

	report.Learnings = []string{
		"APIs return data in JSON or XML format",
		"Always check the status code before processing data",
		"Retry with backoff for reliability",
		"Use timeouts to avoid hanging requests",
		"XML APIs need a decoder that maps elements to fields",
		"Real-time data from trusted sources like BMKG can support public alerts",
	}
	return report
}
