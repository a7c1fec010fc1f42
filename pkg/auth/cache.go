package auth

import (
	"sync"
	"time"
)

// cacheEntry holds a validated session with a timestamp for TTL expiration.
type cacheEntry struct {
	session   *Session
	fetchedAt time.Time
}

// sessionCache is a thread-safe in-memory cache with TTL expiration.
// Expired entries are cleaned up lazily on get() — no background goroutine.
// Only positive validation results are cached; a revoked token stops
// working after at most one TTL.
type sessionCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

func newSessionCache(ttl time.Duration) *sessionCache {
	return &sessionCache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

// get returns a cached session if present and not expired. Sessions whose
// own ExpiresAt has passed are treated as expired regardless of the TTL.
func (c *sessionCache) get(token string) (*Session, bool) {
	c.mu.RLock()
	entry, ok := c.entries[token]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.stale(entry) {
		// Expired — clean up lazily.
		// Re-check under write lock: a concurrent set() may have replaced
		// the entry with a fresh one between RUnlock and Lock.
		c.mu.Lock()
		if current, ok := c.entries[token]; ok && c.stale(current) {
			delete(c.entries, token)
		}
		c.mu.Unlock()
		return nil, false
	}

	return entry.session, true
}

func (c *sessionCache) stale(entry *cacheEntry) bool {
	if time.Since(entry.fetchedAt) > c.ttl {
		return true
	}
	exp := entry.session.ExpiresAt
	return !exp.IsZero() && time.Now().After(exp)
}

// set stores a session with the current timestamp.
func (c *sessionCache) set(token string, session *Session) {
	c.mu.Lock()
	c.entries[token] = &cacheEntry{
		session:   session,
		fetchedAt: time.Now(),
	}
	c.mu.Unlock()
}

// invalidate removes a token's entry, forcing revalidation on next use.
func (c *sessionCache) invalidate(token string) {
	c.mu.Lock()
	delete(c.entries, token)
	c.mu.Unlock()
}
