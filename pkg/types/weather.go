// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// WeatherReport is one city entry scraped from a weather page.
type WeatherReport struct {
	City string `json:"city" yaml:"city"`

	// Temperature is the text as shown on the page (e.g. "Temperature: 32°C").
	Temperature string `json:"temperature" yaml:"temperature"`

	Status string `json:"status" yaml:"status"`
}
