// Package app wires configuration, pipeline, rendering and dispatch
// into one digest run.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dailybrief/newsdigest/internal/config"
	"github.com/dailybrief/newsdigest/internal/deepseek"
	"github.com/dailybrief/newsdigest/internal/digest"
	"github.com/dailybrief/newsdigest/internal/feed"
	"github.com/dailybrief/newsdigest/internal/logger"
	"github.com/dailybrief/newsdigest/internal/mailer"
	"github.com/dailybrief/newsdigest/internal/metrics"
	"github.com/dailybrief/newsdigest/internal/pipeline"
	"github.com/dailybrief/newsdigest/internal/ratelimit"
	"github.com/dailybrief/newsdigest/internal/render"
	"github.com/dailybrief/newsdigest/internal/translate"
)

// Run executes one digest run end to end: fetch and categorize the
// feeds, summarize, render the HTML page, write it to disk and mail it
// out. The summary and the title translations share one model budget.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	feeds, registry, err := config.LoadSources(cfg.SourcesPath)
	if err != nil {
		return fmt.Errorf("loading sources: %w", err)
	}
	logger.Info("新闻源加载完成", "feeds", len(feeds), "categories", len(registry))

	limiter := ratelimit.NewModelLimiter(cfg.MaxModelCalls)
	model := ratelimit.Limit(deepseek.NewClient(cfg.DeepSeekAPIKey), limiter)

	summarizer := digest.NewSummarizer(model)
	summarizer.TitlePerCategory = cfg.TitlePerCategory
	summarizer.TitleTotal = cfg.TitleTotal

	p := pipeline.New(feed.NewClient(cfg.RequestTimeout), summarizer, registry, cfg.MaxPerSource)
	report, err := p.Run(ctx, feeds)
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}

	var translator render.TitleTranslator
	if cfg.TranslateTitles {
		translator = translate.NewTranslator(model, limiter)
	}

	start := time.Now()
	html, err := render.NewRenderer(translator).Render(ctx, report)
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	metrics.Global.RecordReportTime(time.Since(start))

	if err := os.WriteFile(cfg.OutputPath, html, 0o644); err != nil {
		return fmt.Errorf("writing report to %s: %w", cfg.OutputPath, err)
	}
	logger.Info("报告已写入", "path", cfg.OutputPath, "bytes", len(html))

	m := mailer.New(mailer.Config{
		Server:   cfg.SMTPServer,
		Port:     cfg.SMTPPort,
		Sender:   cfg.SenderEmail,
		Password: cfg.SenderPassword,
		Receiver: cfg.ReceiverEmail,
	})
	if err := m.Send(ctx, mailer.Subject(report.GeneratedAt), html); err != nil {
		return fmt.Errorf("dispatching report: %w", err)
	}

	metrics.Global.SetLastRun()
	logger.Info("新闻日报任务完成",
		"articles", report.TotalArticles,
		"categories", report.CategoryCount,
		"degraded_summary", report.Summary.Degraded)
	return nil
}
