// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across steps.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/scrape-lab/pkg/types"
)

// RetryBaseDelay is the backoff base used when the RetryConfig leaves
// BaseDelay unset. Tests override this to avoid real sleeps.
var RetryBaseDelay = 1 * time.Second

const defaultMaxAttempts = 3

// ErrRetriesExhausted is returned when every attempt failed.
var ErrRetriesExhausted = errors.New("retries exhausted")

// GetWithRetry issues a GET for url and retries when the request times out,
// fails to connect, or answers with anything other than HTTP 200. The delay
// after attempt n (counting from 0) is 2^n * cfg.BaseDelay: 1s, 2s, 4s for
// a 1s base. There is no delay after the final attempt.
//
// A zero cfg.MaxAttempts means 3; a zero cfg.BaseDelay means RetryBaseDelay. Each failed attempt is
// logged at warn level with its reason. If the context is cancelled during a
// backoff wait the function returns ctx.Err(). After exhausting attempts the
// returned error wraps ErrRetriesExhausted and the last failure.
//
// This helper keeps no state between calls and is unrelated to the spacing
// enforced by the fetcher package.
func GetWithRetry(ctx context.Context, client *resty.Client, url string, cfg types.RetryConfig, log logrus.FieldLogger) (*resty.Response, error) {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	base := cfg.BaseDelay
	if base <= 0 {
		base = RetryBaseDelay
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		res, err := client.R().SetContext(ctx).Get(url)
		switch {
		case err != nil && ctx.Err() != nil:
			return nil, ctx.Err()
		case err != nil:
			lastErr = fmt.Errorf("%s: %w", describe(err), err)
		case res.StatusCode() != http.StatusOK:
			lastErr = fmt.Errorf("status %d", res.StatusCode())
		default:
			return res, nil
		}

		log.WithFields(logrus.Fields{
			"url":     url,
			"attempt": attempt + 1,
		}).Warnf("attempt %d: %v", attempt+1, lastErr)

		if attempt == maxAttempts-1 {
			break
		}

		backoff := time.Duration(math.Pow(2, float64(attempt))) * base
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
	return nil, fmt.Errorf("GET %s after %d attempts: %w: %w", url, maxAttempts, ErrRetriesExhausted, lastErr)
}

// describe names the failure class the way the step output reports it.
func describe(err error) string {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return "timeout"
	}
	return "connection error"
}
