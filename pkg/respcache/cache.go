package respcache

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Cache is a bounded response cache keyed by a fingerprint of the prompt
// text. Eviction is strict FIFO on insertion order, not LRU: re-reading an
// entry does not refresh its position. The test suite pins this, so do
// not "upgrade" it to LRU.
//
// A cache belongs to exactly one session and is only touched by that
// session's single in-flight request, so there is no internal locking.
type Cache struct {
	capacity int
	entries  map[string]string
	order    []string // fingerprints, oldest first
}

// New creates a cache bounded to capacity entries. Capacities below 1 are
// clamped to 1 so Put always has room for the newest entry.
func New(capacity int) *Cache {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]string, capacity),
	}
}

// Fingerprint returns the deterministic cache key for a prompt: the hex MD5
// of the whitespace-trimmed prompt text. Collisions are an accepted
// correctness risk, not a security concern.
func Fingerprint(prompt string) string {
	sum := md5.Sum([]byte(strings.TrimSpace(prompt)))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached answer for a prompt, if present. No side effects.
func (c *Cache) Get(prompt string) (string, bool) {
	answer, ok := c.entries[Fingerprint(prompt)]
	return answer, ok
}

// Put stores an answer under the prompt's fingerprint. If the fingerprint
// already exists the value is overwritten in place and its insertion
// position is kept. If the cache is full and the fingerprint is new, the
// single oldest entry is evicted first.
func (c *Cache) Put(prompt, answer string) {
	key := Fingerprint(prompt)
	if _, exists := c.entries[key]; exists {
		c.entries[key] = answer
		return
	}
	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = answer
	c.order = append(c.order, key)
}

// Len reports current occupancy.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Cap reports the configured capacity.
func (c *Cache) Cap() int {
	return c.capacity
}
