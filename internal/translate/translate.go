package translate

import (
	"context"
	"strings"
	"time"

	"github.com/dailybrief/newsdigest/internal/cache"
	"github.com/dailybrief/newsdigest/internal/logger"
	"github.com/dailybrief/newsdigest/internal/metrics"
	"github.com/dailybrief/newsdigest/internal/ratelimit"
)

const (
	temperature = 0.3
	maxTokens   = 2000
	memoTTL     = time.Hour
)

const promptHeader = "请将下列英文新闻标题翻译成地道中文，每行格式：中文标题 (English Title)\n"

// ModelClient is the completion surface the translator needs.
type ModelClient interface {
	Complete(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error)
}

// Translator rewrites article titles into Chinese display titles.
// Results are memoized per run, so an article filed under several
// categories costs one translation.
type Translator struct {
	model   ModelClient
	limiter *ratelimit.ModelLimiter
	memo    *cache.Cache
}

// NewTranslator creates a translator backed by model. A nil limiter
// means the translator never declines a batch on its own.
func NewTranslator(model ModelClient, limiter *ratelimit.ModelLimiter) *Translator {
	return &Translator{model: model, limiter: limiter, memo: cache.New()}
}

// Titles translates one batch of titles in a single model call and
// returns display titles in input order. On any failure the original
// titles come back unchanged, so a translation outage never blocks the
// report. When the model returns fewer lines than asked, the tail keeps
// its originals.
func (t *Translator) Titles(ctx context.Context, titles []string) []string {
	out := make([]string, len(titles))
	copy(out, titles)
	if t == nil || t.model == nil || len(titles) == 0 {
		return out
	}

	var pending []int
	for i, title := range titles {
		if title == "" {
			continue
		}
		if hit, ok := t.memo.Get(cache.Key("title", title)); ok {
			out[i] = hit
			continue
		}
		pending = append(pending, i)
	}
	if len(pending) == 0 {
		return out
	}

	if t.limiter != nil && !t.limiter.Allow() {
		return out
	}

	var b strings.Builder
	b.WriteString(promptHeader)
	for j, i := range pending {
		if j > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(titles[i])
	}

	raw, err := t.model.Complete(ctx, b.String(), temperature, maxTokens)
	if err != nil {
		logger.Warn("标题翻译失败", "error", err)
		return out
	}

	lines := parseLines(raw)
	for j, i := range pending {
		if j >= len(lines) {
			break
		}
		out[i] = lines[j]
		t.memo.Set(cache.Key("title", titles[i]), lines[j], memoTTL)
		metrics.Global.IncrementTitlesTranslated()
	}
	return out
}

// parseLines splits model output into trimmed non-blank lines.
func parseLines(raw string) []string {
	var lines []string
	for _, ln := range strings.Split(raw, "\n") {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}
