// Package render turns an assembled report into the HTML digest page.
package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/dailybrief/newsdigest/internal/digest"
	"github.com/dailybrief/newsdigest/internal/news"
	"github.com/dailybrief/newsdigest/internal/sanitize"
)

const (
	titleMaxRunes   = 80
	summaryMaxRunes = 120
	publishedRunes  = 16
)

const pageTemplate = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
  <meta charset="UTF-8">
  <title>每日新闻导览 - {{.Date}}</title>
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <style>
    :root{--bg:#f4f7fa;--card:#ffffff;--primary:#0d6efd;--secondary:#6c757d;--accent:#ff7f50;--line:#e6e9ef;--text:#212529;--small:#6c757d}
    body{margin:0;padding:0;font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,"Helvetica Neue",Arial,"Noto Sans",sans-serif;background:var(--bg);color:var(--text);line-height:1.6}
    .container{max-width:840px;margin:30px auto;padding:0 16px}
    header{text-align:center;margin-bottom:40px}
    .date{font-size:14px;color:var(--small);margin-bottom:8px}
    h1{font-size:32px;margin:0 0 8px}
    .summary{background:var(--card);border-left:4px solid var(--primary);padding:24px;border-radius:8px;box-shadow:0 2px 6px rgba(0,0,0,.05);margin-bottom:40px}
    .summary h2{margin:0 0 12px;font-size:20px}
    .category{margin-bottom:32px}
    .category h2{font-size:22px;margin:0 0 16px;display:flex;align-items:center}
    .category h2 .count{font-size:14px;margin-left:10px;background:var(--primary);color:#fff;padding:4px 10px;border-radius:12px}
    .article-list{display:grid;gap:14px}
    .article{background:var(--card);padding:20px;border-radius:8px;box-shadow:0 1px 3px rgba(0,0,0,.06);transition:transform .2s,box-shadow .2s}
    .article:hover{transform:translateY(-2px);box-shadow:0 4px 12px rgba(0,0,0,.08)}
    .article a{text-decoration:none;color:var(--text);font-weight:600;font-size:16px}
    .article a:hover{color:var(--primary)}
    .meta{font-size:13px;color:var(--small);margin-top:6px}
    .summary-text{font-size:14px;color:var(--small);margin-top:10px;display:-webkit-box;-webkit-line-clamp:2;-webkit-box-orient:vertical;overflow:hidden}
    .stats{background:var(--card);padding:20px;border-radius:8px;text-align:center;font-size:14px;color:var(--small)}
    footer{text-align:center;font-size:13px;color:var(--small);margin:40px 0 20px}
    @media(max-width:600px){h1{font-size:24px}.article a{font-size:15px}}
  </style>
</head>
<body>
  <div class="container">
    <header>
      <div class="date">{{.Date}} · 每日新闻导览</div>
      <h1>📰 今日新闻速览</h1>
    </header>

    <div class="summary">
      <h2>🎯 今日导览摘要</h2>
      <p>{{.Summary}}</p>
    </div>
{{range .Sections}}
    <div class="category">
      <h2>{{.Name}}<span class="count">{{.Count}}</span></h2>
      <div class="article-list">
{{range .Articles}}
        <div class="article">
          <a href="{{.URL}}" target="_blank">{{.Title}}</a>
          <div class="meta">🕐 {{.Published}} · 📰 {{.Source}}</div>
          <div class="summary-text">📝 {{.Summary}}</div>
        </div>
{{end}}
      </div>
    </div>
{{end}}
    <div class="stats">共收录 <strong>{{.Total}}</strong> 篇文章 · 涵盖 <strong>{{.Categories}}</strong> 个领域 · 自动生成于 {{.Time}}</div>
    <footer>Powered by DeepSeek AI · {{.Time}}</footer>
  </div>
</body>
</html>
`

// TitleTranslator converts one batch of titles for display.
type TitleTranslator interface {
	Titles(ctx context.Context, titles []string) []string
}

// Renderer draws reports with a fixed page template. A translator is
// optional; without one titles render as stored.
type Renderer struct {
	tmpl       *template.Template
	translator TitleTranslator
}

func NewRenderer(translator TitleTranslator) *Renderer {
	return &Renderer{
		tmpl:       template.Must(template.New("report").Parse(pageTemplate)),
		translator: translator,
	}
}

type view struct {
	Date       string
	Time       string
	Summary    string
	Sections   []sectionView
	Total      int
	Categories int
}

type sectionView struct {
	Name     string
	Count    int
	Articles []articleView
}

type articleView struct {
	Title     string
	URL       string
	Published string
	Source    string
	Summary   string
}

// Render produces the HTML page for report. Sections keep the order the
// report carries. The report itself is never mutated, so a render with
// translated titles leaves the stored articles untouched.
func (r *Renderer) Render(ctx context.Context, report *digest.Report) ([]byte, error) {
	v := view{
		Date:       report.GeneratedAt.Format("2006-01-02"),
		Time:       report.GeneratedAt.Format("2006-01-02 15:04:05"),
		Summary:    report.Summary.Text,
		Total:      report.TotalArticles,
		Categories: report.CategoryCount,
	}

	for _, sec := range report.Sections {
		titles := make([]string, len(sec.Articles))
		for i, a := range sec.Articles {
			titles[i] = a.Title
		}
		if r.translator != nil {
			titles = r.translator.Titles(ctx, titles)
		}

		sv := sectionView{Name: sec.Name, Count: sec.Count}
		for i, a := range sec.Articles {
			summary := a.Summary
			if summary == "" {
				summary = news.NoSummary
			}
			sv.Articles = append(sv.Articles, articleView{
				Title:     sanitize.Truncate(titles[i], titleMaxRunes),
				URL:       a.URL,
				Published: head(a.Published, publishedRunes),
				Source:    a.Source,
				Summary:   sanitize.Truncate(summary, summaryMaxRunes),
			})
		}
		v.Sections = append(v.Sections, sv)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}
	return buf.Bytes(), nil
}

// head keeps the first n runes without an ellipsis marker.
func head(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
