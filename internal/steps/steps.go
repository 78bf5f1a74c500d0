// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package steps runs the four lessons: basic HTTP requests, working with
// APIs, introductory scraping, and advanced scraping. Each runner performs
// its sections in order, records what every section produced, and keeps going
// when a section fails.
package steps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/pdiddy/scrape-lab/internal/fetcher"
	"github.com/pdiddy/scrape-lab/internal/fixtures"
	"github.com/pdiddy/scrape-lab/internal/sources"
	"github.com/pdiddy/scrape-lab/pkg/types"
)

var errNoPage = errors.New("no page available to parse")

// Deps holds the collaborators shared by the runners.
type Deps struct {
	// Sources queries the REST and XML APIs.
	Sources *sources.Client

	// Fetcher is the rate-limited client used for page downloads.
	Fetcher *fetcher.Fetcher

	// Retry configures the safe API call in step 2.
	Retry types.RetryConfig

	// Pacer spaces consecutive network sections of step 2. Nil disables pacing.
	Pacer *rate.Limiter

	// ExchangeAccessKey is passed to the exchange rate source.
	ExchangeAccessKey string

	// WeatherPageURL and SchedulePageURL, when set, are downloaded through
	// Fetcher instead of using the built-in sample pages.
	WeatherPageURL  string
	SchedulePageURL string

	// DemoURLs are fetched back to back in step 4 to show the rate limiter.
	DemoURLs []string

	Log logrus.FieldLogger
	Now func() time.Time
}

// NewPacer returns a limiter that allows one section per interval. A
// non-positive interval returns nil (no pacing).
func NewPacer(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// NewFetcher returns the rate-limited scraper used for page downloads and the
// step 4 demo. It announces itself with fixtures.BotUserAgent unless headers
// set another User-Agent.
func NewFetcher(interval time.Duration, headers map[string]string, opts ...fetcher.Option) *fetcher.Fetcher {
	h := map[string]string{"User-Agent": fixtures.BotUserAgent}
	for k, v := range headers {
		h[http.CanonicalHeaderKey(k)] = v
	}
	return fetcher.New(interval, h, opts...)
}

// Runner executes one step.
type Runner func(ctx context.Context, d Deps) types.StepReport

// All returns the runners in lesson order.
func All() []Runner {
	return []Runner{Basics, APIs, Scraping, Advanced}
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d Deps) logger() logrus.FieldLogger {
	if d.Log != nil {
		return d.Log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// pace blocks until the pacer allows the next section.
func (d Deps) pace(ctx context.Context) error {
	if d.Pacer == nil {
		return nil
	}
	return d.Pacer.Wait(ctx)
}

// section records one numbered part of a step.
type section struct {
	types.Section
}

func newSection(id, title string) *section {
	return &section{types.Section{ID: id, Title: title, Status: types.StatusOK}}
}

func (s *section) note(format string, args ...any) {
	s.Notes = append(s.Notes, fmt.Sprintf(format, args...))
}

func (s *section) table(columns ...string) {
	s.Columns = columns
}

func (s *section) row(cells ...any) {
	r := make([]string, len(cells))
	for i, c := range cells {
		r[i] = fmt.Sprint(c)
	}
	s.Rows = append(s.Rows, r)
}

// fail marks the section failed and logs err against it.
func (s *section) fail(log logrus.FieldLogger, err error) {
	s.Status = types.StatusFailed
	s.Error = err.Error()
	log.WithFields(logrus.Fields{
		"section": s.ID,
		"title":   s.Title,
	}).WithError(err).Warn("section failed")
}

// loadPage returns the body of url fetched through the rate-limited fetcher,
// or fallback when url is empty.
func loadPage(ctx context.Context, d Deps, url, fallback string) (io.Reader, string, error) {
	if url == "" {
		return strings.NewReader(fallback), "built-in sample", nil
	}
	if d.Fetcher == nil {
		return nil, "", fmt.Errorf("no fetcher configured for %s", url)
	}
	res := d.Fetcher.Fetch(ctx, url)
	if res == nil {
		return nil, "", fmt.Errorf("could not fetch %s", url)
	}
	return strings.NewReader(res.String()), url, nil
}

// first returns at most n leading elements of s.
func first[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
