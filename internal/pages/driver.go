// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pages

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pdiddy/stackexchange-best/internal/search"
)

// Searcher fetches one page of results.
type Searcher interface {
	Search(ctx context.Context, page int) (*search.Result, error)
}

// ResultWriter receives each fetched page in order.
type ResultWriter interface {
	WriteResult(res *search.Result) error
}

// Summary describes a completed run.
type Summary struct {
	Pages    int
	Items    int
	LastPage int
}

// Driver reads successive pages from a Searcher and forwards them to a
// ResultWriter. Pages are fetched one at a time: whether to continue
// depends on the previous page.
type Driver struct {
	searcher Searcher
	writer   ResultWriter
	log      zerolog.Logger
}

// NewDriver returns a Driver that logs page progress to log.
func NewDriver(s Searcher, w ResultWriter, log zerolog.Logger) *Driver {
	return &Driver{searcher: s, writer: w, log: log}
}

// Run reads pages starting at r.Start(). It stops after the first page whose
// has_more flag is false, or after the stop page when r is bounded. Search
// and write errors are returned immediately and end the run.
func (d *Driver) Run(ctx context.Context, r Range) (Summary, error) {
	var sum Summary
	for page := r.Start(); ; page++ {
		res, err := d.searcher.Search(ctx, page)
		if err != nil {
			return sum, err
		}
		if err := d.writer.WriteResult(res); err != nil {
			return sum, err
		}

		sum.Pages++
		sum.Items += len(res.Items)
		sum.LastPage = page

		d.log.Debug().
			Int("page", page).
			Int("items", len(res.Items)).
			Bool("has_more", res.HasMore).
			Int("quota_remaining", res.QuotaRemaining).
			Int("backoff", res.Backoff).
			Msg("page written")

		if !res.HasMore {
			return sum, nil
		}
		if r.Stop().Reached(page) {
			return sum, nil
		}
	}
}
