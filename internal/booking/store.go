package booking

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps booking sessions in memory, keyed by an opaque id carried in
// a session cookie.  Abandoned sessions are swept after a TTL so a user
// who navigates away without resetting does not leak memory forever.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// NewStore creates a store whose sessions expire ttl after their last use.
// A non-positive ttl defaults to 30 minutes.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Store{sessions: make(map[string]*entry), ttl: ttl}
}

// StartSweeper launches a goroutine that evicts expired sessions every
// interval until stop is closed.
func (st *Store) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case now := <-t.C:
				st.sweep(now)
			}
		}
	}()
}

func (st *Store) sweep(now time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for id, e := range st.sessions {
		if now.Sub(e.lastSeen) > st.ttl {
			delete(st.sessions, id)
		}
	}
}

// Create allocates a new empty session and returns its id.
func (st *Store) Create() (string, *Session) {
	id := uuid.NewString()
	s := NewSession()
	st.mu.Lock()
	st.sessions[id] = &entry{session: s, lastSeen: time.Now()}
	st.mu.Unlock()
	return id, s
}

// Get returns the session for id and refreshes its TTL.  It returns false
// when the id is unknown or the session has expired.
func (st *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	if time.Since(e.lastSeen) > st.ttl {
		delete(st.sessions, id)
		return nil, false
	}
	e.lastSeen = time.Now()
	return e.session, true
}

// Delete removes a session outright.  Unknown ids are ignored.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len reports the number of live sessions, expired ones included until the
// next sweep.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
