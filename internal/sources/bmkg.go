// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import (
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Earthquake is one event from the BMKG recent earthquakes feed.
type Earthquake struct {
	Date        string  `json:"date" yaml:"date"`
	Time        string  `json:"time" yaml:"time"`
	DateTime    string  `json:"datetime" yaml:"datetime"`
	Coordinates string  `json:"coordinates" yaml:"coordinates"`
	Magnitude   float64 `json:"magnitude" yaml:"magnitude"`
	Depth       string  `json:"depth" yaml:"depth"`
	Region      string  `json:"region" yaml:"region"`
	Potential   string  `json:"potential,omitempty" yaml:"potential,omitempty"`
}

// BMKG XML structures. Element names are Indonesian.
type bmkgFeed struct {
	XMLName xml.Name    `xml:"Infogempa"`
	Events  []bmkgEvent `xml:"gempa"`
}

type bmkgEvent struct {
	Tanggal     string `xml:"Tanggal"`
	Jam         string `xml:"Jam"`
	DateTime    string `xml:"DateTime"`
	Coordinates string `xml:"Coordinates"`
	Magnitude   string `xml:"Magnitude"`
	Kedalaman   string `xml:"Kedalaman"`
	Wilayah     string `xml:"Wilayah"`
	Potensi     string `xml:"Potensi"`
}

// Earthquakes returns the recent earthquakes reported by BMKG.
func (c *Client) Earthquakes(ctx context.Context) ([]Earthquake, error) {
	res, err := c.get(ctx, request{url: c.Endpoints.Earthquakes})
	if err != nil {
		return nil, err
	}
	return ParseEarthquakes(res.Body())
}

// ParseEarthquakes decodes a BMKG gempaterkini document. An unparsable
// magnitude is left at zero rather than failing the whole feed.
func ParseEarthquakes(data []byte) ([]Earthquake, error) {
	var feed bmkgFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("parsing BMKG response: %w", err)
	}

	quakes := make([]Earthquake, 0, len(feed.Events))
	for _, e := range feed.Events {
		q := Earthquake{
			Date:        strings.TrimSpace(e.Tanggal),
			Time:        strings.TrimSpace(e.Jam),
			DateTime:    strings.TrimSpace(e.DateTime),
			Coordinates: strings.TrimSpace(e.Coordinates),
			Depth:       strings.TrimSpace(e.Kedalaman),
			Region:      strings.TrimSpace(e.Wilayah),
			Potential:   strings.TrimSpace(e.Potensi),
		}
		if m, err := strconv.ParseFloat(strings.TrimSpace(e.Magnitude), 64); err == nil {
			q.Magnitude = m
		}
		quakes = append(quakes, q)
	}
	return quakes, nil
}
