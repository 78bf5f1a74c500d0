// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scrape-lab/internal/fixtures"
	"github.com/pdiddy/scrape-lab/internal/httputil"
	"github.com/pdiddy/scrape-lab/internal/secrets"
	"github.com/pdiddy/scrape-lab/pkg/types"
)

func defaults() *viper.Viper {
	v := viper.New()
	v.SetDefault("http.timeout", defaultTimeout)
	v.SetDefault("http.user_agent", defaultUserAgent)
	v.SetDefault("fetcher.min_interval", defaultMinInterval)
	v.SetDefault("retry.max_attempts", defaultMaxAttempts)
	v.SetDefault("retry.base_delay", defaultRetryBaseDelay)
	v.SetDefault("apis.inter_source_delay", defaultInterSourceDelay)
	v.SetDefault("output", string(types.OutputTable))
	return v
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(defaults())
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.Fetcher.MinInterval)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, types.OutputTable, cfg.Output)
}

func TestLoadConfig_StringDurations(t *testing.T) {
	v := defaults()
	v.Set("fetcher.min_interval", "250ms")
	v.Set("apis.base_url", "http://localhost:8080")

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Fetcher.MinInterval)
	assert.Equal(t, "http://localhost:8080", cfg.APIs.BaseURL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name, key string
		value     any
		errMsg    string
	}{
		{"zero attempts", "retry.max_attempts", 0, "max_attempts"},
		{"unknown output", "output", "xml", "unknown output format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := defaults()
			v.Set(tt.key, tt.value)
			_, err := loadConfig(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNewDeps(t *testing.T) {
	cfg, err := loadConfig(defaults())
	require.NoError(t, err)
	cfg.APIs.BaseURL = "http://localhost:8080"
	cfg.Fetcher.Headers = map[string]string{"Referer": "http://localhost:8080"}

	log, _ := logtest.NewNullLogger()
	d := newDeps(cfg, secrets.Secrets{secrets.ExchangeRateAccessKey: "stored"}, log)

	assert.Equal(t, "http://localhost:8080/api/provinces.json", d.Sources.Endpoints.Provinces)
	assert.Equal(t, []string{"http://localhost:8080/get", "http://localhost:8080/get", "http://localhost:8080/get"}, d.DemoURLs)
	assert.Equal(t, "stored", d.ExchangeAccessKey)
	assert.Equal(t, 1500*time.Millisecond, d.Fetcher.Interval())
	assert.NotNil(t, d.Pacer)
	assert.Equal(t, "scrape-lab/0.1", d.Sources.HTTP.Header.Get("User-Agent"))
	assert.Equal(t, time.Second, d.Retry.BaseDelay)
}

func TestNewDeps_LeavesRetryDefaultAlone(t *testing.T) {
	before := httputil.RetryBaseDelay
	cfg, err := loadConfig(defaults())
	require.NoError(t, err)
	cfg.Retry.BaseDelay = 42 * time.Millisecond

	log, _ := logtest.NewNullLogger()
	d := newDeps(cfg, nil, log)
	assert.Equal(t, 42*time.Millisecond, d.Retry.BaseDelay)
	assert.Equal(t, before, httputil.RetryBaseDelay)
}

func TestNewDeps_FetcherAndAPIClientKeepSeparateHeaders(t *testing.T) {
	var mu sync.Mutex
	agents := map[string]string{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		agents[r.URL.Path] = r.Header.Get("User-Agent")
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	cfg, err := loadConfig(defaults())
	require.NoError(t, err)
	cfg.Fetcher.MinInterval = 0

	log, _ := logtest.NewNullLogger()
	d := newDeps(cfg, nil, log)

	require.NotNil(t, d.Fetcher.Fetch(context.Background(), ts.URL+"/page"))
	_, err = d.Sources.HTTP.R().Get(ts.URL + "/api")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, fixtures.BotUserAgent, agents["/page"])
	assert.Equal(t, "scrape-lab/0.1", agents["/api"])
}

func TestNewDeps_ConfigKeyOverridesSecret(t *testing.T) {
	cfg, err := loadConfig(defaults())
	require.NoError(t, err)
	cfg.APIs.ExchangeAccessKey = "from-config"

	log, _ := logtest.NewNullLogger()
	d := newDeps(cfg, secrets.Secrets{secrets.ExchangeRateAccessKey: "stored"}, log)
	assert.Equal(t, "from-config", d.ExchangeAccessKey)
}
