package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// resetEnv blanks every variable Load reads so host environment cannot
// leak into assertions.
func resetEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DEEPSEEK_API_KEY",
		"MAX_MODEL_CALLS",
		"SOURCES_PATH",
		"MAX_PER_SOURCE",
		"REQUEST_TIMEOUT_SECONDS",
		"SUMMARY_TITLES_PER_CATEGORY",
		"SUMMARY_TITLES_TOTAL",
		"REPORT_OUTPUT_PATH",
		"TRANSLATE_TITLES",
		"SMTP_SERVER",
		"SMTP_PORT",
		"SENDER_EMAIL",
		"SENDER_PASSWORD",
		"RECEIVER_EMAIL",
		"DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DEEPSEEK_API_KEY", "sk-test")
	t.Setenv("SENDER_EMAIL", "digest@example.com")
	t.Setenv("SENDER_PASSWORD", "secret")
	t.Setenv("RECEIVER_EMAIL", "reader@example.com")
}

func TestLoadAppliesDefaults(t *testing.T) {
	resetEnv(t)
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.SourcesPath != "configs/sources.yaml" {
		t.Errorf("SourcesPath = %q", cfg.SourcesPath)
	}
	if cfg.MaxPerSource != 6 {
		t.Errorf("MaxPerSource = %d, want 6", cfg.MaxPerSource)
	}
	if cfg.TitlePerCategory != 10 || cfg.TitleTotal != 60 {
		t.Errorf("title caps = %d/%d, want 10/60", cfg.TitlePerCategory, cfg.TitleTotal)
	}
	if cfg.MaxModelCalls != 12 {
		t.Errorf("MaxModelCalls = %d, want 12", cfg.MaxModelCalls)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.RequestTimeout)
	}
	if cfg.OutputPath != "/tmp/news_report.html" {
		t.Errorf("OutputPath = %q", cfg.OutputPath)
	}
	if !cfg.TranslateTitles {
		t.Errorf("TranslateTitles defaulted to false")
	}
	if cfg.SMTPServer != "smtp.qq.com" || cfg.SMTPPort != 587 {
		t.Errorf("SMTP defaults = %s:%d", cfg.SMTPServer, cfg.SMTPPort)
	}
}

func TestLoadOverridesFromEnvironment(t *testing.T) {
	resetEnv(t)
	setRequired(t)
	t.Setenv("SOURCES_PATH", "custom/sources.yaml")
	t.Setenv("MAX_PER_SOURCE", "3")
	t.Setenv("SUMMARY_TITLES_PER_CATEGORY", "5")
	t.Setenv("SUMMARY_TITLES_TOTAL", "20")
	t.Setenv("MAX_MODEL_CALLS", "2")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "10")
	t.Setenv("TRANSLATE_TITLES", "false")
	t.Setenv("REPORT_OUTPUT_PATH", "/tmp/custom.html")
	t.Setenv("SMTP_SERVER", "smtp.example.com")
	t.Setenv("SMTP_PORT", "465")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.SourcesPath != "custom/sources.yaml" {
		t.Errorf("SourcesPath = %q", cfg.SourcesPath)
	}
	if cfg.MaxPerSource != 3 {
		t.Errorf("MaxPerSource = %d", cfg.MaxPerSource)
	}
	if cfg.TitlePerCategory != 5 || cfg.TitleTotal != 20 {
		t.Errorf("title caps = %d/%d", cfg.TitlePerCategory, cfg.TitleTotal)
	}
	if cfg.MaxModelCalls != 2 {
		t.Errorf("MaxModelCalls = %d", cfg.MaxModelCalls)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.TranslateTitles {
		t.Errorf("TRANSLATE_TITLES=false not honored")
	}
	if cfg.OutputPath != "/tmp/custom.html" {
		t.Errorf("OutputPath = %q", cfg.OutputPath)
	}
	if cfg.SMTPServer != "smtp.example.com" || cfg.SMTPPort != 465 {
		t.Errorf("SMTP = %s:%d", cfg.SMTPServer, cfg.SMTPPort)
	}
}

func TestLoadIgnoresInvalidNumbers(t *testing.T) {
	resetEnv(t)
	setRequired(t)
	t.Setenv("MAX_PER_SOURCE", "plenty")
	t.Setenv("SUMMARY_TITLES_TOTAL", "-5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxPerSource != 6 {
		t.Errorf("MaxPerSource = %d, want default 6", cfg.MaxPerSource)
	}
	if cfg.TitleTotal != 60 {
		t.Errorf("TitleTotal = %d, want default 60", cfg.TitleTotal)
	}
}

func TestLoadRequiresAPIKeyAndMailAccount(t *testing.T) {
	resetEnv(t)
	t.Setenv("SENDER_EMAIL", "digest@example.com")
	t.Setenv("SENDER_PASSWORD", "secret")
	t.Setenv("RECEIVER_EMAIL", "reader@example.com")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "DEEPSEEK_API_KEY") {
		t.Errorf("missing API key: err = %v", err)
	}

	setRequired(t)
	t.Setenv("SENDER_PASSWORD", "")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "SENDER_PASSWORD") {
		t.Errorf("missing mail password: err = %v", err)
	}
}

func TestLoadSourcesTrimsFeedsAndKeepsDefaultRegistry(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sources.yaml")
	body := "feeds:\n" +
		"  - https://36kr.com/feed\n" +
		"  - \"  https://techcrunch.com/feed/  \"\n" +
		"  - \"\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	feeds, registry, err := LoadSources(path)
	if err != nil {
		t.Fatalf("LoadSources: %v", err)
	}

	want := []string{"https://36kr.com/feed", "https://techcrunch.com/feed/"}
	if len(feeds) != len(want) {
		t.Fatalf("feeds = %v", feeds)
	}
	for i := range want {
		if feeds[i] != want[i] {
			t.Errorf("feed %d = %q, want %q", i, feeds[i], want[i])
		}
	}

	if len(registry) != 9 || registry[0].Name != "科技" {
		t.Errorf("registry not defaulted: %d categories, first %q", len(registry), registry[0].Name)
	}
}

func TestLoadSourcesCategoryOverride(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sources.yaml")
	body := "feeds:\n" +
		"  - https://example.com/rss\n" +
		"categories:\n" +
		"  - name: 航天\n" +
		"    keywords: [rocket, 火箭, spacex]\n" +
		"  - name: 能源\n" +
		"    keywords: [solar, 光伏]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	_, registry, err := LoadSources(path)
	if err != nil {
		t.Fatalf("LoadSources: %v", err)
	}

	if len(registry) != 2 {
		t.Fatalf("registry = %d categories, want 2", len(registry))
	}
	if registry[0].Name != "航天" || registry[1].Name != "能源" {
		t.Errorf("category order = %q, %q", registry[0].Name, registry[1].Name)
	}
	if len(registry[0].Keywords) != 3 || registry[0].Keywords[2] != "spacex" {
		t.Errorf("keywords = %v", registry[0].Keywords)
	}
}

func TestLoadSourcesMissingFile(t *testing.T) {
	t.Parallel()

	if _, _, err := LoadSources(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("missing file did not error")
	}
}

func TestLoadSourcesRejectsBadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sources.yaml")
	if err := os.WriteFile(path, []byte("feeds: [unterminated\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, _, err := LoadSources(path); err == nil {
		t.Fatalf("malformed YAML did not error")
	}
}
