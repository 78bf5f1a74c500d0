// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package steps

import (
	"context"
	"sort"

	"github.com/pdiddy/scrape-lab/pkg/types"
)

// Basics runs step 1: a plain GET, a GET with custom headers, and a GET with
// query parameters.
func Basics(ctx context.Context, d Deps) types.StepReport {
	log := d.logger().WithField("step", 1)
	report := types.StepReport{
		Step:      1,
		Title:     "Basic HTTP requests",
		Objective: "Understand GET requests, headers, and query parameters",
	}

	s := newSection("1.1", "Simple GET request: Indonesian provinces")
	if provinces, err := d.Sources.Provinces(ctx, nil); err != nil {
		s.fail(log, err)
	} else {
		s.note("Total provinces: %d", len(provinces))
		s.table("#", "Province")
		for i, p := range first(provinces, 3) {
			s.row(i+1, p.Name)
		}
	}
	report.Sections = append(report.Sections, s.Section)

	s = newSection("1.2", "Request with custom headers")
	headers := map[string]string{
		"User-Agent": "Mozilla/5.0 (LatihanAPI/1.0)",
		"Accept":     "application/json",
	}
	if provinces, err := d.Sources.Provinces(ctx, headers); err != nil {
		s.fail(log, err)
	} else {
		s.note("Headers sent successfully")
		if len(provinces) > 0 {
			s.note("Sample province: %s", provinces[0].Name)
		}
	}
	report.Sections = append(report.Sections, s.Section)

	s = newSection("1.3", "Request with query parameters")
	params := map[string]string{
		"province_id": "32",
		"include":     "cities",
	}
	if echo, err := d.Sources.Echo(ctx, params, nil); err != nil {
		s.fail(log, err)
	} else {
		s.note("Final URL: %s", echo.URL)
		s.table("Parameter", "Value")
		keys := make([]string, 0, len(echo.Args))
		for k := range echo.Args {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			s.row(k, echo.Args[k])
		}
	}
	report.Sections = append(report.Sections, s.Section)

	report.Learnings = []string{
		"HTTP status codes: 200 (OK), 404 (Not Found), 500 (Server Error)",
		"Headers provide additional information about the request",
		"Query parameters are used to send data in the URL",
		"Always handle errors from every request",
	}
	return report
}
