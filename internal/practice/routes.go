// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package practice

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pdiddy/scrape-lab/internal/fixtures"
)

// maxDelay caps /delay/{seconds} like httpbin does.
const maxDelay = 10 * time.Second

func (s *Server) registerRoutes() {
	// Pages for the scraping steps.
	s.router.Get("/weather", static(fixtures.WeatherPageHTML, "text/html; charset=utf-8"))
	s.router.Get("/schedule", static(fixtures.SchedulePageHTML, "text/html; charset=utf-8"))

	// Canned API payloads.
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/provinces.json", static(fixtures.ProvincesJSON, "application/json"))
		r.Get("/gempaterkini.xml", static(fixtures.EarthquakesXML, "application/xml"))
		r.Get("/products", static(fixtures.ProductsJSON, "application/json"))
		r.Get("/latest", static(fixtures.ExchangeRateJSON, "application/json"))
		r.Get("/indonesia", static(fixtures.CovidJSON, "application/json"))
	})

	// httpbin-style helpers.
	s.router.Get("/get", echo)
	s.router.Get("/status/{code}", status)
	s.router.Get("/delay/{seconds}", delay)
}

func static(body, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

type echoResponse struct {
	Args    map[string]string `json:"args"`
	Headers map[string]string `json:"headers"`
	Origin  string            `json:"origin"`
	URL     string            `json:"url"`
}

// echo reports the request back the way httpbin's /get does. Repeated
// query keys keep their first value.
func echo(w http.ResponseWriter, r *http.Request) {
	out := echoResponse{
		Args:    map[string]string{},
		Headers: map[string]string{},
		Origin:  r.RemoteAddr,
		URL:     requestURL(r),
	}
	for k := range r.URL.Query() {
		out.Args[k] = r.URL.Query().Get(k)
	}
	for k := range r.Header {
		out.Headers[k] = r.Header.Get(k)
	}
	writeJSON(w, http.StatusOK, out)
}

func status(w http.ResponseWriter, r *http.Request) {
	code, err := strconv.Atoi(chi.URLParam(r, "code"))
	if err != nil || code < 100 || code > 599 {
		http.Error(w, "invalid status code", http.StatusBadRequest)
		return
	}
	w.WriteHeader(code)
}

func delay(w http.ResponseWriter, r *http.Request) {
	secs, err := strconv.ParseFloat(chi.URLParam(r, "seconds"), 64)
	if err != nil || secs < 0 {
		http.Error(w, "invalid delay", http.StatusBadRequest)
		return
	}
	d := time.Duration(secs * float64(time.Second))
	if d > maxDelay {
		d = maxDelay
	}

	select {
	case <-r.Context().Done():
		return
	case <-time.After(d):
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"delay": d.Seconds(),
		"url":   requestURL(r),
	})
}

func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
