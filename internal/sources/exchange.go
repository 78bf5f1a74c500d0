// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import (
	"context"
	"fmt"
	"strings"
)

// exchangerate.host has answered in two shapes over time: "rates" keyed by
// symbol, and "quotes" keyed by base+symbol. Both are accepted.
type exchangeResponse struct {
	Success *bool              `json:"success"`
	Rates   map[string]float64 `json:"rates"`
	Quotes  map[string]float64 `json:"quotes"`
	Error   *struct {
		Info string `json:"info"`
		Type string `json:"type"`
	} `json:"error"`
}

// ExchangeRate returns how many units of symbol one unit of base buys.
// accessKey is optional; it is sent as access_key when set.
func (c *Client) ExchangeRate(ctx context.Context, base, symbol, accessKey string) (float64, error) {
	base, symbol = strings.ToUpper(base), strings.ToUpper(symbol)
	query := map[string]string{
		"base":    base,
		"source":  base,
		"symbols": symbol,
	}
	if accessKey != "" {
		query["access_key"] = accessKey
	}

	var out exchangeResponse
	if err := c.getJSON(ctx, request{url: c.Endpoints.Exchange, query: query}, &out); err != nil {
		return 0, err
	}

	if out.Success != nil && !*out.Success {
		if out.Error != nil && out.Error.Info != "" {
			return 0, fmt.Errorf("exchange API: %s", out.Error.Info)
		}
		return 0, fmt.Errorf("exchange API reported failure")
	}
	if rate, ok := out.Rates[symbol]; ok {
		return rate, nil
	}
	if rate, ok := out.Quotes[base+symbol]; ok {
		return rate, nil
	}
	return 0, fmt.Errorf("no %s rate for base %s in response", symbol, base)
}
