// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/stackexchange-best/internal/httputil"
	"github.com/pdiddy/stackexchange-best/internal/output"
	"github.com/pdiddy/stackexchange-best/internal/pages"
	"github.com/pdiddy/stackexchange-best/internal/search"
	"github.com/pdiddy/stackexchange-best/internal/secrets"
	"github.com/pdiddy/stackexchange-best/pkg/types"
)

const defaultUserAgent = appName + "/0.1"

func init() {
	f := rootCmd.Flags()
	f.String("site", "stackoverflow", "a Stack Exchange site")
	f.String("min", "1000", "minimum value of the sort field")
	f.String("sort", "votes", "sort key: activity, creation, votes, relevance")
	f.String("order", "desc", "sort order: desc, asc")
	f.String("intitle", "a", "text the question title must contain")
	f.String("pages", "1-", "PAGES gives the pages to download")
	f.Int("pagesize", 0, "questions per page, 1-100 (default: API default)")
	f.String("key", "", "Stack Exchange app key (default: .secrets/"+secrets.StackExchangeAPIKey+")")
	f.Bool("print-request-urls", false, "print each request URL to stderr")
	f.StringSlice("csv-fields", []string{"score", "title", "link"}, "which fields of the question should be written")
	f.String("csv-dialect", "unix", "CSV dialect: excel, excel-tab, unix")
	f.Bool("header", true, "write a header row")
	f.Duration("timeout", 0, "HTTP request timeout (default: none)")
	f.String("user-agent", defaultUserAgent, "User-Agent header")
	f.String("api-url", search.DefaultBaseURL, "Stack Exchange API host")
	_ = f.MarkHidden("api-url")

	_ = viper.BindPFlags(f)
}

// loadConfig reads the effective configuration from flags, environment and
// config file, and validates it.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	cfg.Search.Key = secretDefault(secrets.StackExchangeAPIKey, cfg.Search.Key)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runBest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, err := pages.Parse(cfg.Pages)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	err = run(cmd.Context(), cfg, r, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
	var reqErr *search.RequestError
	if errors.As(err, &reqErr) {
		fmt.Fprintln(cmd.ErrOrStderr(), reqErr.Diagnostic())
		cmd.SilenceErrors = true
	}
	return err
}

// run reads the pages of r and writes CSV to stdout. Request URLs and
// diagnostics go to stderr.
func run(ctx context.Context, cfg types.Config, r pages.Range, stdout, stderr io.Writer, log zerolog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if stop, ok := r.Stop().Page(); ok && stop < r.Start() {
		log.Warn().Stringer("pages", r).Msg("stop page is before start page; reading until no pages are left")
	}

	dialect, err := output.LookupDialect(cfg.Output.Dialect)
	if err != nil {
		return err
	}

	client := &search.Client{
		HTTP:    httputil.NewClient(cfg.Search.HTTPConfig),
		BaseURL: cfg.Search.BaseURL,
		Query: search.Query{
			InTitle:  cfg.Search.InTitle,
			Site:     cfg.Search.Site,
			Sort:     cfg.Search.Sort,
			Order:    cfg.Search.Order,
			Min:      cfg.Search.Min,
			PageSize: cfg.Search.PageSize,
			Key:      cfg.Search.Key,
		},
	}
	if cfg.Search.PrintRequestURLs {
		client.RequestLog = stderr
	}

	w := output.NewWriter(stdout, cfg.Output.Fields, dialect, cfg.Output.Header)
	sum, err := pages.NewDriver(client, w, log).Run(ctx, r)
	if err != nil {
		return err
	}

	log.Info().
		Int("pages", sum.Pages).
		Int("items", sum.Items).
		Int("last_page", sum.LastPage).
		Msg("search complete")
	return nil
}
