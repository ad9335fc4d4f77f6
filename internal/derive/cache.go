package derive

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"t2wizard/internal/model"
)

// PreviewCache memoizes the derived dividend preview keyed on a fingerprint
// of the inputs that feed it. The engine invalidates on every dividend or T5
// mutation; a renderer on another goroutine (watch-mode reloads) reads
// without blocking writers.
type PreviewCache struct {
	mu      sync.RWMutex
	key     string
	preview Preview
	group   singleflight.Group
}

// NewPreviewCache returns an empty cache. The zero fingerprint never matches
// so the first read always computes.
func NewPreviewCache() *PreviewCache {
	return &PreviewCache{key: "\x00uninitialized"}
}

// fingerprint covers exactly the answer keys the derivation reads.
func fingerprint(a model.Answers) string {
	keys := make([]string, 0, 4)
	for k := range a {
		if strings.HasPrefix(k, "t5") || strings.Contains(k, "Dividends") {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		v, _ := a.Get(k)
		fmt.Fprintf(&b, "%s=%v;", k, v)
	}
	return b.String()
}

// Get returns the preview for the current answers, recomputing only when a
// relevant field changed since the last call. Concurrent callers with the
// same fingerprint share one computation.
func (c *PreviewCache) Get(a model.Answers) Preview {
	key := fingerprint(a)

	c.mu.RLock()
	if c.key == key {
		p := c.preview
		c.mu.RUnlock()
		return p
	}
	c.mu.RUnlock()

	v, _, _ := c.group.Do(key, func() (any, error) {
		p := PreviewFor(a)
		c.mu.Lock()
		c.key = key
		c.preview = p
		c.mu.Unlock()
		return p, nil
	})
	return v.(Preview)
}

// Invalidate drops the memoized preview so the next Get recomputes.
func (c *PreviewCache) Invalidate() {
	c.mu.Lock()
	c.key = "\x00invalidated"
	c.mu.Unlock()
}
