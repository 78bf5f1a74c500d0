// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetcher issues outbound HTTP GET requests while keeping a minimum
// spacing between consecutive dispatches, so a scraper does not overwhelm
// (or get blocked by) the remote server.
//
// The spacing is measured from the end of one dispatch attempt to the start
// of the next, which also guarantees at least the configured interval between
// dispatch starts. A failed attempt still counts: the next call waits as if
// it had succeeded.
package fetcher

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultTimeout is the per-request timeout when no option overrides it.
const DefaultTimeout = 30 * time.Second

// Fetcher wraps a resty client and enforces a minimum interval between
// requests. The zero value is not usable; construct with New.
//
// Fetch and Do serialize on an internal mutex held across the wait and the
// dispatch, so a Fetcher may be shared between goroutines without breaking
// the spacing guarantee. Callers queue in arrival order of the lock.
type Fetcher struct {
	client   *resty.Client
	headers  map[string]string
	interval time.Duration
	timeout  time.Duration // negative until New resolves the default
	clock    Clock
	log      logrus.FieldLogger

	mu   sync.Mutex
	last time.Time // zero until the first dispatch attempt completes
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithClient sends requests through c. The Fetcher never changes c's
// settings: headers passed to New and the WithTimeout limit are applied to
// each request, and without WithTimeout c's own timeout is the only one.
func WithClient(c *resty.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithTimeout bounds each request, including reading the body.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.timeout = d }
}

// WithClock replaces the time source used for spacing.
func WithClock(c Clock) Option {
	return func(f *Fetcher) { f.clock = c }
}

// WithLogger routes wait and failure diagnostics to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(f *Fetcher) { f.log = l }
}

// New returns a Fetcher that waits at least interval between dispatches and
// sends headers with every request. A negative interval is treated as zero.
// Without WithClient the Fetcher owns a fresh client with DefaultTimeout.
// New performs no I/O.
func New(interval time.Duration, headers map[string]string, opts ...Option) *Fetcher {
	if interval < 0 {
		interval = 0
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	f := &Fetcher{
		headers:  make(map[string]string, len(headers)),
		interval: interval,
		timeout:  -1,
		clock:    systemClock{},
		log:      discard,
	}
	for k, v := range headers {
		f.headers[k] = v
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = resty.New().SetLogger(f.log)
		if f.timeout < 0 {
			f.timeout = DefaultTimeout
		}
	}
	return f
}

// Interval returns the configured minimum spacing.
func (f *Fetcher) Interval() time.Duration { return f.interval }

// LastRequest returns the completion time of the most recent dispatch
// attempt. ok is false before the first attempt.
func (f *Fetcher) LastRequest() (t time.Time, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last, !f.last.IsZero()
}

// Fetch retrieves url and returns the response, or nil when the request
// failed or the server answered outside the 2xx range. Failures are logged,
// never retried.
func (f *Fetcher) Fetch(ctx context.Context, url string) *resty.Response {
	res, err := f.Do(ctx, url)
	if err != nil {
		f.log.WithError(err).WithField("url", url).Error("request failed")
		return nil
	}
	return res
}

// Do retrieves url like Fetch but hands the failure back to the caller as a
// *TransportError, a *StatusError, ErrEmptyURL, or the context error when
// ctx ends during the wait.
func (f *Fetcher) Do(ctx context.Context, url string) (*resty.Response, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	log := f.log.WithFields(logrus.Fields{
		"url":        url,
		"request_id": uuid.NewString(),
	})

	if wait := f.waitFor(f.clock.Now()); wait > 0 {
		log.WithField("wait", wait.Round(time.Millisecond).String()).
			Infof("waiting %.1f seconds before next request", wait.Seconds())
		if err := f.clock.Sleep(ctx, wait); err != nil {
			return nil, err
		}
	}

	reqCtx := ctx
	if f.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}
	res, err := f.client.R().SetContext(reqCtx).SetHeaders(f.headers).Get(url)
	f.last = f.clock.Now()

	if err != nil {
		return nil, newTransportError(url, err)
	}
	if !res.IsSuccess() {
		return nil, &StatusError{URL: url, StatusCode: res.StatusCode()}
	}

	log.WithFields(logrus.Fields{
		"status":  res.StatusCode(),
		"elapsed": res.Time().String(),
	}).Debug("request complete")
	return res, nil
}

// waitFor returns how long a dispatch starting at now must wait. The
// comparison is strict: elapsed == interval needs no wait.
func (f *Fetcher) waitFor(now time.Time) time.Duration {
	if f.last.IsZero() {
		return 0
	}
	elapsed := now.Sub(f.last)
	if elapsed < f.interval {
		return f.interval - elapsed
	}
	return 0
}
