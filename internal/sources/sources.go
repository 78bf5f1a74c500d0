// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sources talks to the public REST and XML APIs used by the first
// two steps: Indonesian regions, httpbin, BMKG earthquakes, exchange rates,
// a fake store, and COVID-19 statistics.
package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Endpoints lists the URL of every source.
type Endpoints struct {
	Provinces   string `json:"provinces" yaml:"provinces"`
	Echo        string `json:"echo" yaml:"echo"`
	Earthquakes string `json:"earthquakes" yaml:"earthquakes"`
	Exchange    string `json:"exchange" yaml:"exchange"`
	Products    string `json:"products" yaml:"products"`
	Covid       string `json:"covid" yaml:"covid"`
	Delay       string `json:"delay" yaml:"delay"`
}

// PublicEndpoints returns the real public APIs.
func PublicEndpoints() Endpoints {
	return Endpoints{
		Provinces:   "https://www.emsifa.com/api-wilayah-indonesia/api/provinces.json",
		Echo:        "https://httpbin.org/get",
		Earthquakes: "https://data.bmkg.go.id/DataMKG/TEWS/gempaterkini.xml",
		Exchange:    "https://api.exchangerate.host/latest",
		Products:    "https://fakestoreapi.com/products",
		Covid:       "https://api.kawalcorona.com/indonesia/",
		Delay:       "https://httpbin.org/delay/1",
	}
}

// LocalEndpoints returns the practice server routes under base
// (e.g. "http://localhost:8080").
func LocalEndpoints(base string) Endpoints {
	base = strings.TrimRight(base, "/")
	return Endpoints{
		Provinces:   base + "/api/provinces.json",
		Echo:        base + "/get",
		Earthquakes: base + "/api/gempaterkini.xml",
		Exchange:    base + "/api/latest",
		Products:    base + "/api/products",
		Covid:       base + "/api/indonesia",
		Delay:       base + "/delay/1",
	}
}

// Client queries the sources through a shared resty client.
type Client struct {
	HTTP      *resty.Client
	Endpoints Endpoints
}

// NewClient returns a Client using http and endpoints.
func NewClient(http *resty.Client, endpoints Endpoints) *Client {
	return &Client{HTTP: http, Endpoints: endpoints}
}

// request describes one GET issued by a source.
type request struct {
	url     string
	query   map[string]string
	headers map[string]string
}

// get performs the request and rejects anything but HTTP 200.
func (c *Client) get(ctx context.Context, r request) (*resty.Response, error) {
	req := c.HTTP.R().SetContext(ctx)
	if len(r.query) > 0 {
		req.SetQueryParams(r.query)
	}
	if len(r.headers) > 0 {
		req.SetHeaders(r.headers)
	}

	res, err := req.Get(r.url)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", r.url, err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status code %d", r.url, res.StatusCode())
	}
	return res, nil
}

// getJSON performs the request and decodes the JSON body into v.
func (c *Client) getJSON(ctx context.Context, r request, v any) error {
	res, err := c.get(ctx, r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(res.Body(), v); err != nil {
		return fmt.Errorf("parsing response from %s: %w", r.url, err)
	}
	return nil
}
