// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import (
	"context"
	"fmt"
)

// EchoResult is what httpbin reports back about a request.
type EchoResult struct {
	URL     string            `json:"url" yaml:"url"`
	Args    map[string]string `json:"args" yaml:"args"`
	Headers map[string]string `json:"headers" yaml:"headers"`
}

// Echo sends params as the query string and returns the request as the
// server saw it.
func (c *Client) Echo(ctx context.Context, params, headers map[string]string) (EchoResult, error) {
	var out EchoResult
	if err := c.getJSON(ctx, request{url: c.Endpoints.Echo, query: params, headers: headers}, &out); err != nil {
		return EchoResult{}, err
	}
	if out.URL == "" {
		return EchoResult{}, fmt.Errorf("echo response from %s has no url", c.Endpoints.Echo)
	}
	return out, nil
}
