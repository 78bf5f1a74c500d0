// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scrape-lab CLI. Each lesson is a
// subcommand; fetch, serve, and version are utilities around them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scrape-lab/internal/logging"
	"github.com/pdiddy/scrape-lab/internal/secrets"
	"github.com/pdiddy/scrape-lab/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout          = 30 * time.Second
	defaultUserAgent        = "scrape-lab/0.1"
	defaultMinInterval      = 1500 * time.Millisecond
	defaultMaxAttempts      = 3
	defaultRetryBaseDelay   = time.Second
	defaultInterSourceDelay = 500 * time.Millisecond
)

// Populated by the root PersistentPreRunE.
var (
	loadedSecrets secrets.Secrets
	log           *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "scrape-lab",
	Short: "Hands-on lessons in HTTP requests, APIs, and web scraping",
	Long: `scrape-lab walks through four lessons: basic HTTP requests, working with
public APIs, introductory HTML scraping, and polite scraping with custom
headers and a rate-limited fetcher.

Run a single lesson (basics, apis, scrape, advanced) or all of them in order.
Start the practice server with "serve" and point apis.base_url at it to run
every lesson offline.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		log, err = logging.New(types.LogConfig{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
		}, os.Stderr)
		if err != nil {
			return err
		}

		s, err := secrets.Load(".secrets/", log)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			log.WithField("keys", s.Keys()).Debug("loaded secrets")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./scrape-lab.yaml or ~/.config/scrape-lab/scrape-lab.yaml)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: text or json")
	pf.StringP("output", "o", "", "report format: table, json, or yaml")
	pf.String("base-url", "", "send every API request to this host (e.g. the practice server)")
	pf.Duration("min-interval", 0, "minimum spacing between fetcher requests (default 1.5s)")

	viper.BindPFlag("log.level", pf.Lookup("log-level"))
	viper.BindPFlag("log.format", pf.Lookup("log-format"))
	viper.BindPFlag("output", pf.Lookup("output"))
	viper.BindPFlag("apis.base_url", pf.Lookup("base-url"))
	viper.BindPFlag("fetcher.min_interval", pf.Lookup("min-interval"))

	viper.SetDefault("http.timeout", defaultTimeout)
	viper.SetDefault("http.user_agent", defaultUserAgent)
	viper.SetDefault("fetcher.min_interval", defaultMinInterval)
	viper.SetDefault("retry.max_attempts", defaultMaxAttempts)
	viper.SetDefault("retry.base_delay", defaultRetryBaseDelay)
	viper.SetDefault("apis.inter_source_delay", defaultInterSourceDelay)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("output", string(types.OutputTable))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scrape-lab")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scrape-lab"))
		}
	}

	viper.SetEnvPrefix("SCRAPE_LAB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
