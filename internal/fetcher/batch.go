// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// BatchItem is the outcome of one URL in a batch.
type BatchItem struct {
	URL        string `json:"url" yaml:"url"`
	StatusCode int    `json:"status_code,omitempty" yaml:"status_code,omitempty"`
	Bytes      int    `json:"bytes" yaml:"bytes"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// BatchResult holds the outcome of a batch run.
type BatchResult struct {
	Fetched int         `json:"fetched" yaml:"fetched"`
	Failed  int         `json:"failed" yaml:"failed"`
	Items   []BatchItem `json:"items" yaml:"items"`
}

// Total returns the number of URLs processed.
func (r BatchResult) Total() int {
	return r.Fetched + r.Failed
}

// HasFailures reports whether any URL failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Batch fetches urls one after another through f, printing a status line per
// URL and a summary to w. It continues after individual failures. When ctx
// ends, the remaining URLs are not attempted.
func Batch(ctx context.Context, f *Fetcher, urls []string, w io.Writer) BatchResult {
	var result BatchResult
	for _, u := range urls {
		if ctx.Err() != nil {
			break
		}

		res, err := f.Do(ctx, u)
		if err != nil {
			item := BatchItem{URL: u, Error: err.Error()}
			var se *StatusError
			if errors.As(err, &se) {
				item.StatusCode = se.StatusCode
			}
			fmt.Fprintf(w, "failed:  %s (%v)\n", u, err)
			result.Failed++
			result.Items = append(result.Items, item)
			continue
		}

		fmt.Fprintf(w, "fetched: %s (HTTP %d, %d bytes)\n", u, res.StatusCode(), len(res.Body()))
		result.Fetched++
		result.Items = append(result.Items, BatchItem{
			URL:        u,
			StatusCode: res.StatusCode(),
			Bytes:      len(res.Body()),
		})
	}
	fmt.Fprintf(w, "\nBatch summary: %d fetched, %d failed (total: %d)\n",
		result.Fetched, result.Failed, result.Total())
	return result
}
