// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import (
	"context"
	"fmt"
)

// CovidStats holds cumulative national COVID-19 counts. The API formats the
// numbers as strings with thousands separators; they are kept verbatim.
type CovidStats struct {
	Name      string `json:"name" yaml:"name"`
	Positive  string `json:"positif" yaml:"positive"`
	Recovered string `json:"sembuh" yaml:"recovered"`
	Deaths    string `json:"meninggal" yaml:"deaths"`
	Treated   string `json:"dirawat,omitempty" yaml:"treated,omitempty"`
}

// CovidSummary returns the first (national) record of the historical data.
func (c *Client) CovidSummary(ctx context.Context) (CovidStats, error) {
	var records []CovidStats
	if err := c.getJSON(ctx, request{url: c.Endpoints.Covid}, &records); err != nil {
		return CovidStats{}, err
	}
	if len(records) == 0 {
		return CovidStats{}, fmt.Errorf("no COVID-19 records in response from %s", c.Endpoints.Covid)
	}
	return records[0], nil
}
