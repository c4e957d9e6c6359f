package news

import "strings"

// matchThreshold is the minimum keyword score for category membership.
// One hit anywhere in title or summary qualifies.
const matchThreshold = 1

// Categorize scores title+summary against every category and returns the
// names whose score reaches the threshold, in registry order. An empty
// result means "discard the entry", not an error.
//
// Keywords match by plain substring containment, deliberately without
// word boundaries: short keywords can hit inside unrelated words, trading
// precision for recall. A title hit counts double but only speeds a
// category toward the threshold, it does not raise the bar.
func Categorize(title, summary string, reg Registry) []string {
	lowTitle := strings.ToLower(title)
	full := lowTitle + " " + strings.ToLower(summary)

	var matched []string
	for _, c := range reg {
		score := 0
		for _, k := range c.Keywords {
			k = strings.ToLower(strings.TrimSpace(k))
			if k == "" || !strings.Contains(full, k) {
				continue
			}
			if strings.Contains(lowTitle, k) {
				score += 2
			} else {
				score++
			}
		}
		if score >= matchThreshold {
			matched = append(matched, c.Name)
		}
	}
	return matched
}
