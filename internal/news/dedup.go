package news

// Deduplicator tracks which article URLs one run has already taken, so
// the same link never yields two Articles no matter how many feeds carry
// it or how many categories it lands in.
type Deduplicator struct {
	seen map[string]struct{}
}

func NewDeduplicator() *Deduplicator {
	return &Deduplicator{seen: make(map[string]struct{})}
}

// Accept reports whether url is new to this run, recording it when it is.
// An empty url is never accepted: it can be neither deduplicated nor
// linked in the report.
func (d *Deduplicator) Accept(url string) bool {
	if url == "" {
		return false
	}
	if _, dup := d.seen[url]; dup {
		return false
	}
	d.seen[url] = struct{}{}
	return true
}

// Seen returns how many distinct URLs have been accepted so far.
func (d *Deduplicator) Seen() int {
	return len(d.seen)
}
