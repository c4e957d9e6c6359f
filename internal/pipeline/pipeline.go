// Package pipeline drives one digest run from feed fetch to report.
package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dailybrief/newsdigest/internal/digest"
	"github.com/dailybrief/newsdigest/internal/feed"
	"github.com/dailybrief/newsdigest/internal/logger"
	"github.com/dailybrief/newsdigest/internal/metrics"
	"github.com/dailybrief/newsdigest/internal/news"
)

var (
	// ErrNoSources means a run was requested without any feed URLs.
	ErrNoSources = errors.New("no news sources configured")

	// ErrEmptyRegistry means there are no categories to file articles under.
	ErrEmptyRegistry = errors.New("category registry is empty")
)

// Fetcher pulls entries from one feed URL.
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string, maxEntries int) ([]feed.Entry, error)
}

// Summarizer produces the digest summary for a filled store.
type Summarizer interface {
	Summarize(ctx context.Context, store *news.CategoryStore) digest.Summary
}

// Pipeline aggregates feeds into a categorized, summarized report.
type Pipeline struct {
	fetcher      Fetcher
	summarizer   Summarizer
	registry     news.Registry
	maxPerSource int
}

// New assembles a pipeline. maxPerSource caps how many entries each
// feed contributes; zero or below means no cap.
func New(fetcher Fetcher, summarizer Summarizer, registry news.Registry, maxPerSource int) *Pipeline {
	return &Pipeline{
		fetcher:      fetcher,
		summarizer:   summarizer,
		registry:     registry,
		maxPerSource: maxPerSource,
	}
}

// Run fetches every source, files matching articles and assembles the
// report. A failing source is skipped, never fatal; the report records
// how many were skipped.
func (p *Pipeline) Run(ctx context.Context, sources []string) (*digest.Report, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	if len(p.registry) == 0 {
		return nil, ErrEmptyRegistry
	}

	start := time.Now()
	store := news.NewCategoryStore(p.registry)
	dedup := news.NewDeduplicator()
	failed := 0

	for _, src := range sources {
		entries, err := p.fetcher.Fetch(ctx, src, p.maxPerSource)
		if err != nil {
			failed++
			metrics.Global.IncrementSourcesFailed()
			logger.Error("抓取源失败", "source", src, "error", err)
			continue
		}
		p.ingest(store, dedup, entries)
		logger.Info("抓取源完成", "source", src, "entries", len(entries))
	}
	metrics.Global.RecordFetchTime(time.Since(start))

	summary := p.summarizer.Summarize(ctx, store)
	metrics.Global.SetSummaryDegraded(summary.Degraded)

	report := digest.Assemble(store, summary, digest.Meta{
		GeneratedAt:   time.Now(),
		SourceCount:   len(sources),
		SourcesFailed: failed,
	})
	logger.Info("报告装配完成",
		"articles", report.TotalArticles,
		"categories", report.CategoryCount,
		"sources_failed", failed)
	return report, nil
}

// ingest files one batch of entries. Malformed entries are dropped
// before deduplication, so a broken copy of a story never blocks a
// later complete one.
func (p *Pipeline) ingest(store *news.CategoryStore, dedup *news.Deduplicator, entries []feed.Entry) {
	for _, e := range entries {
		metrics.Global.IncrementEntriesProcessed()

		if e.Link == "" || strings.TrimSpace(e.Title) == "" {
			metrics.Global.IncrementEntriesMalformed()
			continue
		}
		if !dedup.Accept(e.Link) {
			metrics.Global.IncrementDuplicatesFiltered()
			continue
		}

		categories := news.Categorize(e.Title, e.Summary, p.registry)
		if len(categories) == 0 {
			continue
		}

		article := news.NewArticle(e.Title, e.Link, e.Summary, e.Published, e.Origin)
		for _, c := range categories {
			store.Add(c, article)
		}
		metrics.Global.IncrementArticlesStored()
	}
}
