// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/pdiddy/scrape-lab/internal/fetcher"
	"github.com/pdiddy/scrape-lab/internal/secrets"
	"github.com/pdiddy/scrape-lab/internal/sources"
	"github.com/pdiddy/scrape-lab/internal/steps"
	"github.com/pdiddy/scrape-lab/pkg/types"
)

// demoRequests is how many back-to-back requests step 4 sends to show the
// rate limiter.
const demoRequests = 3

// loadConfig decodes the merged viper settings (defaults, config file,
// environment, flags) into a Config.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Retry.MaxAttempts < 1 {
		return cfg, fmt.Errorf("retry.max_attempts must be at least 1, got %d", cfg.Retry.MaxAttempts)
	}
	switch cfg.Output {
	case types.OutputTable, types.OutputJSON, types.OutputYAML:
	default:
		return cfg, fmt.Errorf("unknown output format %q (want table, json, or yaml)", cfg.Output)
	}
	return cfg, nil
}

// newFetcher builds the rate-limited scraper on its own resty client, so its
// headers and timeout never leak into the API client. fetcher.headers from the
// config override the bot User-Agent.
func newFetcher(cfg types.Config, log logrus.FieldLogger) *fetcher.Fetcher {
	return steps.NewFetcher(cfg.Fetcher.MinInterval, cfg.Fetcher.Headers,
		fetcher.WithClient(resty.New().SetLogger(log)),
		fetcher.WithTimeout(cfg.HTTP.Timeout),
		fetcher.WithLogger(log),
	)
}

// newDeps wires the collaborators every step runner needs.
func newDeps(cfg types.Config, s secrets.Secrets, log logrus.FieldLogger) steps.Deps {
	client := resty.New().
		SetTimeout(cfg.HTTP.Timeout).
		SetHeader("User-Agent", cfg.HTTP.UserAgent).
		SetLogger(log)

	endpoints := sources.PublicEndpoints()
	if cfg.APIs.BaseURL != "" {
		endpoints = sources.LocalEndpoints(cfg.APIs.BaseURL)
	}

	demo := make([]string, demoRequests)
	for i := range demo {
		demo[i] = endpoints.Echo
	}

	return steps.Deps{
		Sources:           sources.NewClient(client, endpoints),
		Fetcher:           newFetcher(cfg, log),
		Retry:             cfg.Retry,
		Pacer:             steps.NewPacer(cfg.APIs.InterSourceDelay),
		ExchangeAccessKey: s.Get(secrets.ExchangeRateAccessKey, cfg.APIs.ExchangeAccessKey),
		DemoURLs:          demo,
		Log:               log,
		Now:               time.Now,
	}
}
