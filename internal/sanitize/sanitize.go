package sanitize

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Text strips markup from a feed-provided HTML fragment and collapses all
// whitespace runs, so summaries read as one plain line.
func Text(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.ContainsAny(raw, "<&") {
		return strings.Join(strings.Fields(raw), " ")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		// Better a raw summary than none
		return strings.Join(strings.Fields(raw), " ")
	}
	doc.Find("script, style").Remove()

	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Truncate cuts s to at most max runes. The ellipsis is appended only
// when something was actually cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "…"
}
