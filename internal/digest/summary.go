// Package digest turns a frozen category store into the run's narrative
// summary and the final report value.
package digest

import (
	"context"
	"fmt"
	"strings"

	"github.com/dailybrief/newsdigest/internal/news"
)

// SentinelPrefix starts every summary text, success or fallback.
// Renderers and consumers key off it, so it is never optional.
const SentinelPrefix = "今日导览摘要："

// EmptySummaryText is returned when the run collected nothing. Not a
// failure, so Degraded stays false.
const EmptySummaryText = SentinelPrefix + "暂无新闻。"

// degradedText is the content-free fallback body after a model failure.
const degradedText = SentinelPrefix + "摘要生成暂不可用，请直接浏览下方分类新闻。"

// Summary is the digest narrative. Degraded marks a fallback produced
// after the model call failed.
type Summary struct {
	Text     string
	Degraded bool
}

// ModelClient is the one capability the summarizer needs from the
// language model.
type ModelClient interface {
	Complete(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error)
}

// Summarizer builds the digest prompt from a frozen store and shapes the
// model response into a Summary.
type Summarizer struct {
	model ModelClient

	TitlePerCategory int
	TitleTotal       int
	Temperature      float32
	MaxTokens        int
}

func NewSummarizer(model ModelClient) *Summarizer {
	return &Summarizer{
		model:            model,
		TitlePerCategory: 10,
		TitleTotal:       60,
		Temperature:      0.7,
		MaxTokens:        1000,
	}
}

// Summarize produces the run digest in a single model attempt. It never
// returns an error: any failure, including a blank response, yields a
// degraded Summary instead.
func (s *Summarizer) Summarize(ctx context.Context, store *news.CategoryStore) Summary {
	snapshot := store.Snapshot()
	if len(snapshot) == 0 {
		return Summary{Text: EmptySummaryText}
	}

	text, err := s.model.Complete(ctx, s.buildPrompt(store, snapshot), s.Temperature, s.MaxTokens)
	if err != nil {
		return Summary{Text: degradedText, Degraded: true}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Summary{Text: degradedText, Degraded: true}
	}
	if !strings.HasPrefix(text, SentinelPrefix) {
		text = SentinelPrefix + text
	}
	return Summary{Text: text}
}

// buildPrompt combines the per-category statistics line with the capped
// title list, both in snapshot order.
func (s *Summarizer) buildPrompt(store *news.CategoryStore, snapshot []news.CategoryCount) string {
	stats := make([]string, 0, len(snapshot))
	var titles []string
	for _, cc := range snapshot {
		stats = append(stats, fmt.Sprintf("%s:%d篇", cc.Name, cc.Count))
		arts := store.Articles(cc.Name)
		limit := s.TitlePerCategory
		if limit > len(arts) {
			limit = len(arts)
		}
		for i := 0; i < limit; i++ {
			titles = append(titles, fmt.Sprintf("[%s] %s", cc.Name, arts[i].Title))
		}
	}
	if len(titles) > s.TitleTotal {
		titles = titles[:s.TitleTotal]
	}

	var b strings.Builder
	b.WriteString("请基于以下新闻标题生成400-600字中文摘要，要求概括趋势、焦点，不要逐条复述标题，以“")
	b.WriteString(SentinelPrefix)
	b.WriteString("”开头。\n统计：")
	b.WriteString(strings.Join(stats, ", "))
	b.WriteString("\n标题：\n")
	b.WriteString(strings.Join(titles, "\n"))
	return b.String()
}
