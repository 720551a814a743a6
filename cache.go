package lazyimg

// SeenCache records which image identities have completed a load during
// this process's lifetime. Entries are only ever added, never removed, and
// a failed load never marks an entry; unbounded growth is an accepted
// tradeoff for a single session.
//
// A controller whose identity is already present skips deferral and skips
// the fade animation — a previously-seen image renders immediately.
//
// Access is not synchronized (no mutex — lazyimg is single-threaded).
type SeenCache struct {
	seen map[string]bool
}

// NewSeenCache creates an empty cache. Most callers use the one owned by
// Runtime; tests construct isolated instances.
func NewSeenCache() *SeenCache {
	return &SeenCache{seen: make(map[string]bool)}
}

// Has reports whether identity previously completed a load.
func (c *SeenCache) Has(identity string) bool {
	return c.seen[identity]
}

// Mark records identity as loaded. Idempotent.
func (c *SeenCache) Mark(identity string) {
	c.seen[identity] = true
}
