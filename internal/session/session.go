// Package session keeps each visitor's section state between requests.
//
// A visitor's state changes only inside State.Do, which serializes every
// transition for that visitor the way a single UI thread would.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/sections"
)

// CookieName is the cookie carrying the session id.
const CookieName = "portfolio_session"

// State is one visitor's page.
type State struct {
	mu       sync.Mutex
	page     *sections.Page
	lastSeen time.Time
}

// Do runs fn with exclusive access to the visitor's page.
func (s *State) Do(fn func(p *sections.Page)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.page)
}

// Store maps session ids to visitor state and evicts idle visitors.
type Store struct {
	mu     sync.Mutex
	lib    *content.Library
	ttl    time.Duration
	states map[string]*State
	now    func() time.Time
	onSize func(int)
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSizeHook is called with the number of live sessions after every change.
func WithSizeHook(fn func(int)) Option {
	return func(s *Store) { s.onSize = fn }
}

// NewStore returns a store that builds new pages from lib and forgets
// visitors idle for longer than ttl.
func NewStore(lib *content.Library, ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		lib:    lib,
		ttl:    ttl,
		states: make(map[string]*State),
		now:    time.Now,
		onSize: func(int) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the state for id, creating a fresh session when id is empty,
// malformed or unknown. The returned id is the one to hand back to the
// visitor.
func (s *Store) Get(id string) (string, *State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := uuid.Parse(id); err == nil {
		if st, ok := s.states[id]; ok {
			st.lastSeen = s.now()
			return id, st
		}
	}

	id = uuid.NewString()
	st := &State{page: sections.NewPage(s.lib), lastSeen: s.now()}
	s.states[id] = st
	s.onSize(len(s.states))
	return id, st
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}

// Sweep drops sessions idle for longer than the ttl and returns how many
// were dropped.
func (s *Store) Sweep() int {
	s.mu.Lock()
	cutoff := s.now().Add(-s.ttl)
	var expired []*State
	for id, st := range s.states {
		if st.lastSeen.Before(cutoff) {
			expired = append(expired, st)
			delete(s.states, id)
		}
	}
	if len(expired) > 0 {
		s.onSize(len(s.states))
	}
	s.mu.Unlock()

	for _, st := range expired {
		st.Do(func(p *sections.Page) { p.Close() })
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Sweep()
		}
	}
}
