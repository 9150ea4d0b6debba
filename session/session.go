// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/live-vote/errsink"
	"github.com/danielhkuo/live-vote/ledger"
	"github.com/danielhkuo/live-vote/roster"
	"github.com/danielhkuo/live-vote/voting"
)

// Show is the shared live state every session votes against
type Show interface {
	IsLive() bool
	AddVote(contestantID string)
}

// Session is one client's view of the show: its own ledger, error slot and
// in-flight votes
type Session struct {
	ID     string
	Sink   *errsink.Sink
	Ledger *ledger.Ledger
	Voting *voting.Orchestrator

	lastSeen time.Time
}

// Manager creates sessions on first use and forgets idle ones. Forgotten
// sessions keep their persisted ledger and hydrate from it when they return.
type Manager struct {
	store     ledger.Store
	roster    *roster.Store
	show      Show
	api       voting.VoteSubmitter
	broadcast *errsink.Broadcast
	clock     clockwork.Clock

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(
	store ledger.Store,
	rosterStore *roster.Store,
	show Show,
	api voting.VoteSubmitter,
	broadcast *errsink.Broadcast,
	clock clockwork.Clock,
) *Manager {
	return &Manager{
		store:     store,
		roster:    rosterStore,
		show:      show,
		api:       api,
		broadcast: broadcast,
		clock:     clock,
		sessions:  make(map[string]*Session),
	}
}

// LedgerKey is the storage key of a session's vote ledger
func LedgerKey(sessionID string) string {
	return ledger.StorageKey + ":" + sessionID
}

// Get returns the session for id, creating and hydrating it if needed
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		s.lastSeen = m.clock.Now()
		return s
	}

	sink := errsink.New()
	l := ledger.New(m.store, LedgerKey(id), m.roster.Generation, voting.StorageErrorReporter(sink))
	s := &Session{
		ID:       id,
		Sink:     sink,
		Ledger:   l,
		Voting:   voting.NewOrchestrator(m.roster, l, m.api, m.show, sink, m.show.AddVote),
		lastSeen: m.clock.Now(),
	}
	m.sessions[id] = s
	m.broadcast.Attach(sink)

	// Hydration outlives the request that created the session
	l.Hydrate(context.Background())

	slog.Info("session created", "session_id", id)
	return s
}

// Sweep forgets sessions idle for longer than maxIdle and returns how many.
// A session with a vote in flight stays until the vote is recorded.
func (m *Manager) Sweep(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	removed := 0
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) > maxIdle && !s.Voting.InFlight() {
			m.broadcast.Detach(s.Sink)
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		slog.Info("idle sessions removed", "count", removed, "remaining", len(m.sessions))
	}
	return removed
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// RunJanitor sweeps idle sessions every interval until ctx is done
func (m *Manager) RunJanitor(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := m.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			m.Sweep(maxIdle)
		}
	}
}
