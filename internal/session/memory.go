package session

import (
	"context"
	"sync"
	"time"

	"github.com/iliyamo/food-recipe-finder/internal/model"
)

// MemoryStore is the fallback session store used when Redis is not
// reachable at startup, and the store of choice in tests.  Expired
// entries are dropped lazily on Get.
type MemoryStore struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[string]memoryEntry
}

type memoryEntry struct {
	sess    model.Session
	expires time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, m: map[string]memoryEntry{}}
}

func (s *MemoryStore) Create(_ context.Context, sid string, sess model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[sid] = memoryEntry{sess: sess, expires: time.Now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sid string) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.m[sid]
	if !ok {
		return model.Session{}, ErrNotFound
	}
	if time.Now().After(e.expires) {
		delete(s.m, sid)
		return model.Session{}, ErrNotFound
	}
	return e.sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, sid)
	return nil
}
