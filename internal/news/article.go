package news

import (
	"strings"

	"github.com/dailybrief/newsdigest/internal/sanitize"
)

// NoSummary is stored when a feed entry carries no usable summary text.
const NoSummary = "暂无摘要"

// SummaryMaxRunes bounds how much summary text an Article keeps.
const SummaryMaxRunes = 400

// Article is a validated, categorized news record. URL is its identity;
// once stored it is shared read-only between categories.
type Article struct {
	Title     string
	URL       string
	Summary   string
	Published string
	Source    string
}

// NewArticle builds an Article from raw entry fields: markup stripped
// from the summary, length bounded, never left empty.
func NewArticle(title, url, summary, published, source string) Article {
	s := sanitize.Text(summary)
	if s == "" {
		s = NoSummary
	}
	return Article{
		Title:     strings.TrimSpace(title),
		URL:       strings.TrimSpace(url),
		Summary:   sanitize.Truncate(s, SummaryMaxRunes),
		Published: published,
		Source:    source,
	}
}
