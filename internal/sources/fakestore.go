// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import "context"

// Product is one item from the fake store API.
type Product struct {
	ID       int     `json:"id" yaml:"id"`
	Title    string  `json:"title" yaml:"title"`
	Price    float64 `json:"price" yaml:"price"`
	Category string  `json:"category" yaml:"category"`
}

// Products lists the fake store catalogue.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.getJSON(ctx, request{url: c.Endpoints.Products}, &products); err != nil {
		return nil, err
	}
	return products, nil
}
