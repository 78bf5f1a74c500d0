// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scrape extracts structured data from HTML pages with CSS selectors.
package scrape

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/scrape-lab/pkg/types"
)

// WeatherPage is the parsed content of a weather report page.
type WeatherPage struct {
	Title   string          `json:"title" yaml:"title"`
	Heading string          `json:"heading" yaml:"heading"`
	Reports []types.WeatherReport `json:"reports" yaml:"reports"`
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// ParseWeatherPage extracts the title and every div.weather-item block.
// Blocks without a city heading are skipped.
func ParseWeatherPage(r io.Reader) (WeatherPage, error) {
	doc, err := Parse(r)
	if err != nil {
		return WeatherPage{}, err
	}

	page := WeatherPage{
		Title:   text(doc.Find("title").First()),
		Heading: text(doc.Find("h1").First()),
	}
	doc.Find("div.weather-item").Each(func(_ int, item *goquery.Selection) {
		city := text(item.Find("h2").First())
		if city == "" {
			return
		}
		page.Reports = append(page.Reports, types.WeatherReport{
			City:        city,
			Temperature: text(item.Find("p.temp").First()),
			Status:      text(item.Find("span.status").First()),
		})
	})
	return page, nil
}

// SelectText returns the trimmed text of every element matching selector,
// in document order.
func SelectText(doc *goquery.Document, selector string) []string {
	var out []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, text(s))
	})
	return out
}

var temperaturePattern = regexp.MustCompile(`(-?\d+(?:[.,]\d+)?)\s*°?\s*C\b`)

// ParseTemperature pulls the Celsius value out of text such as
// "Temperature: 32°C". ok is false when no value is present.
func ParseTemperature(s string) (celsius float64, ok bool) {
	m := temperaturePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.Replace(m[1], ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func text(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
