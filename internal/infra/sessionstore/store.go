// Package sessionstore keeps one isolated history log per session in memory.
// Sessions left unused for longer than the idle timeout are dropped, so
// clients that never delete their sessions cannot exhaust the limit.
package sessionstore

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/unitcalc/internal/domain"
	"github.com/aalvaropc/unitcalc/internal/history"
	"github.com/aalvaropc/unitcalc/internal/ports"
)

type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	max      int
	idle     time.Duration
	newID    func() uuid.UUID
	now      func() time.Time
}

type session struct {
	log      *history.Log
	lastUsed time.Time
}

type Option func(*Store)

// WithMaxSessions bounds the number of live sessions. Zero means unbounded.
func WithMaxSessions(n int) Option {
	return func(s *Store) { s.max = n }
}

// WithIdleTimeout drops sessions not touched by Create or Get for d.
// Zero keeps sessions until they are deleted.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *Store) { s.idle = d }
}

// WithClock overrides time.Now (useful for tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides uuid.New (useful for tests).
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(s *Store) { s.newID = gen }
}

func New(opts ...Option) *Store {
	s := &Store{
		sessions: make(map[uuid.UUID]*session),
		newID:    uuid.New,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.SessionStore = (*Store)(nil)

func (s *Store) Create() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.max > 0 && len(s.sessions) >= s.max {
		s.sweepLocked(now)
	}
	if s.max > 0 && len(s.sessions) >= s.max {
		return "", &domain.OpError{
			Op:   "sessionstore.create",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("%w (%d)", domain.ErrSessionLimit, s.max),
		}
	}

	id := s.newID()
	if _, taken := s.sessions[id]; taken {
		return "", &domain.OpError{
			Op:   "sessionstore.create",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("duplicate session id %s", id),
		}
	}
	s.sessions[id] = &session{log: history.New(), lastUsed: now}
	return id.String(), nil
}

func (s *Store) Get(id string) (ports.HistoryLog, error) {
	key, err := parseID("sessionstore.get", id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess, ok := s.sessions[key]
	if !ok {
		return nil, notFound("sessionstore.get", id)
	}
	if s.expired(sess, now) {
		delete(s.sessions, key)
		return nil, notFound("sessionstore.get", id)
	}
	sess.lastUsed = now
	return sess.log, nil
}

func (s *Store) Delete(id string) error {
	key, err := parseID("sessionstore.delete", id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[key]; !ok {
		return notFound("sessionstore.delete", id)
	}
	delete(s.sessions, key)
	return nil
}

// Len counts stored sessions, including idle ones not yet swept.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops every idle session and reports how many went.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

func (s *Store) sweepLocked(now time.Time) int {
	n := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func (s *Store) expired(sess *session, now time.Time) bool {
	return s.idle > 0 && now.Sub(sess.lastUsed) >= s.idle
}

func parseID(op, id string) (uuid.UUID, error) {
	key, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("%w: session id %q: %v", domain.ErrInvalidInput, id, err),
		}
	}
	return key, nil
}

func notFound(op, id string) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindNotFound,
		Err:  fmt.Errorf("session %s: %w", id, domain.ErrNotFound),
	}
}
