// Package feed pulls raw entries out of RSS/Atom sources.
package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"
)

// Entry is one raw feed item before any pipeline processing.
type Entry struct {
	Title     string
	Link      string
	Summary   string
	Published string
	Origin    string
}

// Client fetches and parses feeds.
type Client struct {
	parser *gofeed.Parser
}

// NewClient returns a feed client. The browser User-Agent matters: some
// feed servers refuse the default Go one.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	p := gofeed.NewParser()
	p.UserAgent = "Mozilla/5.0"
	p.Client = &http.Client{Timeout: timeout}
	return &Client{parser: p}
}

// Fetch downloads one feed and returns up to maxEntries of its items as
// raw entries. Origin is the feed host, so articles can credit their
// source.
func (c *Client) Fetch(ctx context.Context, feedURL string, maxEntries int) ([]Entry, error) {
	parsed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	origin := feedURL
	if u, err := url.Parse(feedURL); err == nil && u.Host != "" {
		origin = u.Host
	}

	items := parsed.Items
	if maxEntries > 0 && len(items) > maxEntries {
		items = items[:maxEntries]
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		summary := item.Description
		if summary == "" {
			summary = item.Content
		}
		entries = append(entries, Entry{
			Title:     item.Title,
			Link:      item.Link,
			Summary:   summary,
			Published: item.Published,
			Origin:    origin,
		})
	}
	return entries, nil
}
