package memory

import (
	"time"

	"a11y-advocate-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps live sessions in process memory. Nothing survives
// a restart on purpose: sessions, their response caches and their
// conversations are all ephemeral.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Sessions idle for an hour are purged; the janitor sweeps every 10
	// minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

// Count reports how many sessions are currently live.
func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
