package otp

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-otp-keeper/models"
)

// updatesBuffer is the capacity of the Sessions update channel.
const updatesBuffer = 64

type sessionEntry struct {
	session *Session
	secret  string
}

// Sessions keeps one [Session] per visible account and fans their windows
// into a single channel.
type Sessions struct {
	engine *Engine
	tick   time.Duration
	now    Clock

	updates chan models.CodeWindow

	mu       sync.Mutex
	sessions map[string]*sessionEntry

	latestMu sync.RWMutex
	latest   map[string]models.CodeWindow
}

// NewSessions creates an empty set. A nil clock means time.Now.
func NewSessions(engine *Engine, tick time.Duration, now Clock) *Sessions {
	return &Sessions{
		engine:   engine,
		tick:     tick,
		now:      now,
		updates:  make(chan models.CodeWindow, updatesBuffer),
		sessions: make(map[string]*sessionEntry),
		latest:   make(map[string]models.CodeWindow),
	}
}

// Updates delivers every emitted window. Sends never block: when the reader
// falls behind, updates are dropped and the next one carries the full state.
func (s *Sessions) Updates() <-chan models.CodeWindow {
	return s.updates
}

// Window returns the latest window of an account.
func (s *Sessions) Window(accountID string) (models.CodeWindow, bool) {
	s.latestMu.RLock()
	defer s.latestMu.RUnlock()

	w, ok := s.latest[accountID]
	return w, ok
}

// Sync makes the running sessions match accounts: new accounts get a session,
// accounts whose secret changed are restarted, and sessions of accounts no
// longer present are stopped.
func (s *Sessions) Sync(ctx context.Context, accounts []models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[string]struct{}, len(accounts))
	for _, a := range accounts {
		wanted[a.ID] = struct{}{}

		entry, ok := s.sessions[a.ID]
		if ok && entry.secret == a.Secret {
			continue
		}
		if !ok {
			entry = &sessionEntry{session: NewSession(s.engine, s.tick, s.now, s.publish)}
			s.sessions[a.ID] = entry
		}
		entry.secret = a.Secret
		entry.session.Start(ctx, a.ID, a.Secret)
	}

	for id, entry := range s.sessions {
		if _, ok := wanted[id]; ok {
			continue
		}
		entry.session.Stop()
		delete(s.sessions, id)
		s.forget(id)
	}
}

// Len returns the number of running sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

// StopAll stops every session and forgets all windows.
func (s *Sessions) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.sessions {
		entry.session.Stop()
		delete(s.sessions, id)
	}

	s.latestMu.Lock()
	s.latest = make(map[string]models.CodeWindow)
	s.latestMu.Unlock()
}

func (s *Sessions) publish(w models.CodeWindow) {
	s.latestMu.Lock()
	s.latest[w.AccountID] = w
	s.latestMu.Unlock()

	select {
	case s.updates <- w:
	default:
	}
}

func (s *Sessions) forget(accountID string) {
	s.latestMu.Lock()
	delete(s.latest, accountID)
	s.latestMu.Unlock()
}
