package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dailybrief/newsdigest/internal/news"
)

// SourcesConfig is the YAML sources file structure
// feeds:
//   - https://...
// categories:
//   - name: 科技
//     keywords: [technology, tech]
type SourcesConfig struct {
	Feeds      []string         `yaml:"feeds"`
	Categories []CategoryConfig `yaml:"categories"`
}

type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// LoadSources reads the feed list and optional category overrides from
// a YAML file. Without a categories section the built-in registry
// applies. Feed URLs are trimmed so a stray space in the file cannot
// break fetching.
func LoadSources(path string) ([]string, news.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var cfg SourcesConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	feeds := make([]string, 0, len(cfg.Feeds))
	for _, u := range cfg.Feeds {
		if u = strings.TrimSpace(u); u != "" {
			feeds = append(feeds, u)
		}
	}

	registry := news.DefaultRegistry()
	if len(cfg.Categories) > 0 {
		registry = make(news.Registry, 0, len(cfg.Categories))
		for _, c := range cfg.Categories {
			registry = append(registry, news.Category{Name: c.Name, Keywords: c.Keywords})
		}
	}

	return feeds, registry, nil
}
