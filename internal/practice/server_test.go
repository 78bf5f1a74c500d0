// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package practice

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scrape-lab/internal/fixtures"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log, _ := logtest.NewNullLogger()
	ts := httptest.NewServer(New(":0", log).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestStaticRoutes(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		path        string
		body        string
		contentType string
	}{
		{"/weather", fixtures.WeatherPageHTML, "text/html; charset=utf-8"},
		{"/schedule", fixtures.SchedulePageHTML, "text/html; charset=utf-8"},
		{"/api/provinces.json", fixtures.ProvincesJSON, "application/json"},
		{"/api/gempaterkini.xml", fixtures.EarthquakesXML, "application/xml"},
		{"/api/products", fixtures.ProductsJSON, "application/json"},
		{"/api/latest", fixtures.ExchangeRateJSON, "application/json"},
		{"/api/indonesia", fixtures.CovidJSON, "application/json"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.contentType, resp.Header.Get("Content-Type"))
			assert.Equal(t, tt.body, body)
		})
	}
}

func TestEcho(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/get?province_id=32&include=cities")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out echoResponse
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	assert.Equal(t, map[string]string{"province_id": "32", "include": "cities"}, out.Args)
	assert.Equal(t, ts.URL+"/get?province_id=32&include=cities", out.URL)
	assert.NotEmpty(t, out.Headers["User-Agent"])
}

func TestStatus(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := get(t, ts.URL+"/status/503")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, _ = get(t, ts.URL+"/status/abc")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDelay(t *testing.T) {
	ts := newTestServer(t)

	start := time.Now()
	resp, _ := get(t, ts.URL+"/delay/0.05")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)

	resp, _ = get(t, ts.URL+"/delay/-1")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)
	resp, _ := get(t, ts.URL+"/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestShutdownBeforeStart(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	s := New(":0", log)
	assert.NoError(t, s.Shutdown(context.Background()))
	assert.ErrorIs(t, s.Start(), http.ErrServerClosed)
}

func TestStartAndShutdown(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	s := New("127.0.0.1:0", log)

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))
	assert.ErrorIs(t, <-errCh, http.ErrServerClosed)
}
