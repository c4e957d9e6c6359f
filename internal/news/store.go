package news

import "sort"

// CategoryCount is one row of a store snapshot.
type CategoryCount struct {
	Name  string
	Count int
}

// CategoryStore accumulates Articles per category for one run. Insertion
// order is preserved and a URL appears at most once per category; the
// same article may still sit in several categories.
type CategoryStore struct {
	registry Registry
	articles map[string][]Article
}

func NewCategoryStore(reg Registry) *CategoryStore {
	s := &CategoryStore{
		registry: reg,
		articles: make(map[string][]Article, len(reg)),
	}
	for _, c := range reg {
		s.articles[c.Name] = nil
	}
	return s
}

// Add appends article to category unless that URL is already present
// there. Duplicate inserts are silent no-ops; categories outside the
// registry are ignored.
func (s *CategoryStore) Add(category string, article Article) {
	existing, ok := s.articles[category]
	if !ok {
		return
	}
	for _, a := range existing {
		if a.URL == article.URL {
			return
		}
	}
	s.articles[category] = append(existing, article)
}

// Articles returns the stored sequence for one category in insertion
// order.
func (s *CategoryStore) Articles(category string) []Article {
	return s.articles[category]
}

// Snapshot lists the non-empty categories sorted by count descending.
// Ties keep registry declared order, so identical input always produces
// the same layout.
func (s *CategoryStore) Snapshot() []CategoryCount {
	var counts []CategoryCount
	for _, c := range s.registry {
		if n := len(s.articles[c.Name]); n > 0 {
			counts = append(counts, CategoryCount{Name: c.Name, Count: n})
		}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// TotalArticles counts stored articles across all categories, category
// fan-out included.
func (s *CategoryStore) TotalArticles() int {
	total := 0
	for _, arts := range s.articles {
		total += len(arts)
	}
	return total
}
