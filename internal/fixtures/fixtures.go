// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fixtures holds simulated data and static sample pages used for
// offline practice. Nothing here touches the network; the fetcher never
// depends on it.
package fixtures

import (
	"time"

	"github.com/pdiddy/scrape-lab/pkg/types"
)

// WeatherPageHTML is a small static weather report page.
const WeatherPageHTML = `<html>
    <head><title>Today's Weather</title></head>
    <body>
        <h1>City Weather Report</h1>
        <div class="weather-container">
            <div class="weather-item">
                <h2>Jakarta</h2>
                <p class="temp">Temperature: 32°C</p>
                <span class="status">Sunny</span>
            </div>
            <div class="weather-item">
                <h2>Bandung</h2>
                <p class="temp">Temperature: 24°C</p>
                <span class="status">Cloudy</span>
            </div>
        </div>
    </body>
</html>`

// SchedulePageHTML is a static train schedule page with one table.
const SchedulePageHTML = `<html>
    <head><title>Jadwal Kereta</title></head>
    <body>
        <table class="schedule">
            <thead>
                <tr><th>Train</th><th>Departure</th><th>Arrival</th><th>From</th><th>To</th></tr>
            </thead>
            <tbody>
                <tr><td>Argo Parahyangan</td><td>07:15</td><td>11:30</td><td>Bandung</td><td>Gambir</td></tr>
                <tr><td>Taksaka Pagi</td><td>08:00</td><td>14:15</td><td>Yogyakarta</td><td>Gambir</td></tr>
            </tbody>
        </table>
    </body>
</html>`

// SimulatedWeather is the payload of the weather API simulation.
type SimulatedWeather struct {
	City        string    `json:"city" yaml:"city"`
	Temperature float64   `json:"temperature" yaml:"temperature"`
	Humidity    int       `json:"humidity" yaml:"humidity"`
	Condition   string    `json:"condition" yaml:"condition"`
	WindSpeed   float64   `json:"wind_speed" yaml:"wind_speed"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
}

// Weather returns a fixed weather reading for city stamped with now.
func Weather(city string, now time.Time) SimulatedWeather {
	if city == "" {
		city = "Jakarta"
	}
	return SimulatedWeather{
		City:        city,
		Temperature: 28.5,
		Humidity:    75,
		Condition:   "Partly Cloudy",
		WindSpeed:   12.3,
		Timestamp:   now,
	}
}

// WeatherReports returns the simulated scraping result, in the model
// scrape.ParseWeatherPage produces.
func WeatherReports() []types.WeatherReport {
	return []types.WeatherReport{
		{City: "Surabaya", Temperature: "35°C", Status: "Sunny"},
		{City: "Yogyakarta", Temperature: "29°C", Status: "Rainy"},
		{City: "Medan", Temperature: "30°C", Status: "Thunderstorm"},
	}
}

// SessionHeaders are realistic browser headers for a scraping session.
func SessionHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9",
		"Accept-Language": "id-ID,id;q=0.9,en-US;q=0.8",
		"Referer":         "https://kai.id",
		"Connection":      "keep-alive",
	}
}

// BotUserAgent identifies the rate-limited scraper honestly.
const BotUserAgent = "Train-Scraper-Bot/1.0 (Learning Purpose Only)"
