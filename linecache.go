package symbler

import (
	"slices"

	"github.com/gogpu/symbler/internal/cache"
)

// CacheStats reports LineCache hits, misses and evictions.
type CacheStats = cache.Stats

// LineCache memoizes the model-space lines of parsed programs. It is safe
// for concurrent use. Programs are deterministic, so an entry never goes
// stale.
type LineCache struct {
	opts  []Option
	lines *cache.Cache[string, []Line]
}

// NewLineCache creates a cache of at most capacity programs, parsed with
// opts. A non-positive capacity selects a default.
func NewLineCache(capacity int, opts ...Option) *LineCache {
	return &LineCache{
		opts:  opts,
		lines: cache.New[string, []Line](capacity),
	}
}

// Lines returns Parse(input).Lines(), parsing at most once per cached input.
// The returned slice belongs to the caller.
func (c *LineCache) Lines(input string) []Line {
	lines := c.lines.GetOrCreate(input, func() []Line {
		return Parse(input, c.opts...).Lines()
	})
	return slices.Clone(lines)
}

// Stats returns the cache counters.
func (c *LineCache) Stats() CacheStats {
	return c.lines.Stats()
}
