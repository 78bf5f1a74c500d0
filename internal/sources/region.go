// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import "context"

// Province is one entry of the Indonesian region API.
type Province struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Provinces lists Indonesian provinces. headers, when non-nil, are sent in
// addition to the client defaults.
func (c *Client) Provinces(ctx context.Context, headers map[string]string) ([]Province, error) {
	var provinces []Province
	if err := c.getJSON(ctx, request{url: c.Endpoints.Provinces, headers: headers}, &provinces); err != nil {
		return nil, err
	}
	return provinces, nil
}
