package digest

import (
	"time"

	"github.com/dailybrief/newsdigest/internal/news"
)

// CategorySection is one block of the report: a category and its
// articles in insertion order.
type CategorySection struct {
	Name     string
	Count    int
	Articles []news.Article
}

// Meta carries the run-level facts the pipeline knows and the store does
// not.
type Meta struct {
	GeneratedAt   time.Time
	SourceCount   int
	SourcesFailed int
}

// Report is the immutable merge of store, summary, and run metadata that
// renderers and dispatchers consume.
type Report struct {
	GeneratedAt   time.Time
	Summary       Summary
	Sections      []CategorySection
	TotalArticles int
	CategoryCount int
	SourceCount   int
	SourcesFailed int
}

// Assemble merges a frozen store and the run summary into a Report.
// Sections follow snapshot order and hold copies of the article
// sequences, so later store use cannot leak into an assembled report.
// Pure and deterministic given its inputs.
func Assemble(store *news.CategoryStore, summary Summary, meta Meta) *Report {
	snapshot := store.Snapshot()
	sections := make([]CategorySection, 0, len(snapshot))
	total := 0
	for _, cc := range snapshot {
		section := CategorySection{Name: cc.Name, Count: cc.Count}
		section.Articles = append(section.Articles, store.Articles(cc.Name)...)
		sections = append(sections, section)
		total += cc.Count
	}
	return &Report{
		GeneratedAt:   meta.GeneratedAt,
		Summary:       summary,
		Sections:      sections,
		TotalArticles: total,
		CategoryCount: len(sections),
		SourceCount:   meta.SourceCount,
		SourcesFailed: meta.SourcesFailed,
	}
}
