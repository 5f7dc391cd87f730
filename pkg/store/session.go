package store

import (
	"time"

	"a11y-advocate-be/pkg/ratelimit"
	"a11y-advocate-be/pkg/respcache"
)

// Provenance tags describing where a resolved answer came from.
const (
	ProvenanceLive     = "live"
	ProvenanceCached   = "cached"
	ProvenanceOffline  = "offline"
	ProvenanceFallback = "fallback"
)

// ConversationEntry is one turn in a session's chat history. Entries are
// append-only and never mutated after being recorded.
type ConversationEntry struct {
	Id         string    `json:"id"`
	Role       string    `json:"role"` // "user" | "assistant"
	Content    string    `json:"content"`
	Provenance string    `json:"provenance,omitempty"` // empty for user turns
	CreatedAt  time.Time `json:"created_at"`
}

// Session is the active per-session state held in memory: one response
// cache, one rate limiter and one conversation sequence. Sessions never
// share mutable state with each other; only the knowledge base is shared,
// and only because it is immutable.
type Session struct {
	ID        string
	Cache     *respcache.Cache
	Limiter   *ratelimit.Limiter
	CreatedAt time.Time

	// Conversation is ordered oldest-first. A single request is in flight
	// per session at a time, so no locking is needed here.
	Conversation []ConversationEntry
}

// NewSession builds a session with a fresh cache and limiter.
func NewSession(id string, cacheSize int, rateLimitDelay time.Duration) *Session {
	return &Session{
		ID:        id,
		Cache:     respcache.New(cacheSize),
		Limiter:   ratelimit.New(rateLimitDelay),
		CreatedAt: time.Now(),
	}
}

// Append records a conversation turn and returns the stored entry.
func (s *Session) Append(entry ConversationEntry) ConversationEntry {
	s.Conversation = append(s.Conversation, entry)
	return entry
}
