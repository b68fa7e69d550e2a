package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/professional-ladder/internal/domain/profile"
)

// Session owns one user's in-memory profile. Every operation on the profile
// runs under the session lock, so a save can never interleave with a load.
type Session struct {
	ID        uuid.UUID
	Email     string
	StartedAt time.Time
	// ExpiresAt is zero for sessions that never expire.
	ExpiresAt time.Time

	mu      sync.Mutex
	profile *profile.Profile
}

func New(email string, p *profile.Profile) *Session {
	if p == nil {
		p = profile.New()
	}
	return &Session{
		ID:        uuid.New(),
		Email:     email,
		StartedAt: time.Now().UTC(),
		profile:   p,
	}
}

// Do runs fn with exclusive access to the profile.
func (s *Session) Do(fn func(p *profile.Profile) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.profile)
}

// Snapshot returns a deep copy taken under the lock.
func (s *Session) Snapshot() *profile.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

// Registry tracks the open sessions of the HTTP surface. Sessions outlive
// their token by at most ttl; expired ones are dropped and reset on the next
// Get, Open or Len.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewRegistry returns a registry whose sessions expire ttl after they are
// opened. A ttl of zero or less keeps sessions until they are closed.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *Registry) Open(email string, p *profile.Profile) *Session {
	s := New(email, p)
	now := r.now()
	if r.ttl > 0 {
		s.ExpiresAt = now.Add(r.ttl)
	}

	r.mu.Lock()
	expired := r.sweepLocked(now)
	r.sessions[s.ID] = s
	r.mu.Unlock()

	resetAll(expired)
	return s
}

func (r *Registry) Get(id uuid.UUID) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !s.expired(r.now()) {
		return s, true
	}

	r.mu.Lock()
	_, stillOpen := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if stillOpen {
		resetAll([]*Session{s})
	}
	return nil, false
}

// Close removes the session and resets its profile. It reports whether the
// session existed.
func (r *Registry) Close(id uuid.UUID) bool {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return false
	}
	resetAll([]*Session{s})
	return true
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	expired := r.sweepLocked(r.now())
	n := len(r.sessions)
	r.mu.Unlock()

	resetAll(expired)
	return n
}

// Sweep drops every expired session and reports how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	expired := r.sweepLocked(r.now())
	r.mu.Unlock()

	resetAll(expired)
	return len(expired)
}

func (r *Registry) sweepLocked(now time.Time) []*Session {
	if r.ttl <= 0 {
		return nil
	}
	var expired []*Session
	for id, s := range r.sessions {
		if s.expired(now) {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	return expired
}

func (s *Session) expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// resetAll must be called without r.mu held.
func resetAll(sessions []*Session) {
	for _, s := range sessions {
		_ = s.Do(func(p *profile.Profile) error {
			p.Reset()
			return nil
		})
	}
}
