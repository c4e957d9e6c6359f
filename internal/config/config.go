// Package config loads runtime settings from the environment and the
// YAML sources file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// DeepSeek settings
	DeepSeekAPIKey string
	MaxModelCalls  int // maximum model calls per run (0 = unlimited)

	// Feed settings
	SourcesPath    string
	MaxPerSource   int
	RequestTimeout time.Duration

	// Summary settings
	TitlePerCategory int
	TitleTotal       int

	// Report settings
	OutputPath      string
	TranslateTitles bool

	// Mail settings
	SMTPServer     string
	SMTPPort       int
	SenderEmail    string
	SenderPassword string
	ReceiverEmail  string

	// App settings
	Debug bool
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		SourcesPath:      "configs/sources.yaml",
		MaxPerSource:     6,
		RequestTimeout:   30 * time.Second,
		TitlePerCategory: 10,
		TitleTotal:       60,
		MaxModelCalls:    12,
		OutputPath:       "/tmp/news_report.html",
		TranslateTitles:  true,
	}

	cfg.DeepSeekAPIKey = os.Getenv("DEEPSEEK_API_KEY")

	cfg.SourcesPath = getEnvOrDefault("SOURCES_PATH", cfg.SourcesPath)
	cfg.OutputPath = getEnvOrDefault("REPORT_OUTPUT_PATH", cfg.OutputPath)

	if v := os.Getenv("MAX_PER_SOURCE"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.MaxPerSource = val
		}
	}
	if v := os.Getenv("SUMMARY_TITLES_PER_CATEGORY"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.TitlePerCategory = val
		}
	}
	if v := os.Getenv("SUMMARY_TITLES_TOTAL"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.TitleTotal = val
		}
	}
	if v := os.Getenv("MAX_MODEL_CALLS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val >= 0 {
			cfg.MaxModelCalls = val
		}
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RequestTimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("TRANSLATE_TITLES"); v == "false" {
		cfg.TranslateTitles = false
	}

	// Mail settings
	cfg.SMTPServer = getEnvOrDefault("SMTP_SERVER", "smtp.qq.com")
	cfg.SMTPPort = getEnvIntOrDefault("SMTP_PORT", 587)
	cfg.SenderEmail = os.Getenv("SENDER_EMAIL")
	cfg.SenderPassword = os.Getenv("SENDER_PASSWORD")
	cfg.ReceiverEmail = os.Getenv("RECEIVER_EMAIL")

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.DeepSeekAPIKey == "" {
		return fmt.Errorf("DEEPSEEK_API_KEY is required")
	}
	if c.SenderEmail == "" {
		return fmt.Errorf("SENDER_EMAIL is required")
	}
	if c.SenderPassword == "" {
		return fmt.Errorf("SENDER_PASSWORD is required")
	}
	if c.ReceiverEmail == "" {
		return fmt.Errorf("RECEIVER_EMAIL is required")
	}
	return nil
}
