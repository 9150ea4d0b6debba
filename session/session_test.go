// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/live-vote/errsink"
	"github.com/danielhkuo/live-vote/ledger"
	"github.com/danielhkuo/live-vote/models"
	"github.com/danielhkuo/live-vote/roster"
	"github.com/danielhkuo/live-vote/showapi"
)

type stubShow struct {
	store *roster.Store
}

func (s stubShow) IsLive() bool { return true }

func (s stubShow) AddVote(id string) {
	s.store.Apply(roster.UpdateContestant(id, func(c models.Contestant) models.Contestant {
		c.CurrentVotes++
		return c
	}))
}

// gatedAPI holds each submission until release is closed
type gatedAPI struct {
	release chan struct{}
}

func (a gatedAPI) SubmitVote(context.Context, string) (showapi.VoteResult, *models.VotingError) {
	<-a.release
	return showapi.VoteResult{Success: true}, nil
}

type instantAPI struct{}

func (instantAPI) SubmitVote(context.Context, string) (showapi.VoteResult, *models.VotingError) {
	return showapi.VoteResult{Success: true}, nil
}

func newTestManager() (*Manager, ledger.Store, *errsink.Broadcast, clockwork.FakeClock) {
	clock := clockwork.NewFakeClock()
	store := ledger.NewMemoryStore()
	rosterStore := roster.NewStore(roster.Seed(clock.Now()))
	broadcast := errsink.NewBroadcast()
	m := NewManager(store, rosterStore, stubShow{rosterStore}, instantAPI{}, broadcast, clock)
	return m, store, broadcast, clock
}

func hydrated(t *testing.T, s *Session) {
	t.Helper()
	select {
	case <-s.Ledger.Hydrated():
	case <-time.After(2 * time.Second):
		t.Fatal("session ledger did not hydrate")
	}
}

func TestGetReusesSession(t *testing.T) {
	m, _, _, _ := newTestManager()

	a := m.Get("a")
	if m.Get("a") != a {
		t.Error("Get() should return the same session for the same id")
	}
	if m.Get("b") == a {
		t.Error("Get() should return distinct sessions for distinct ids")
	}
	if m.Count() != 2 {
		t.Errorf("Count() = %d, want 2", m.Count())
	}
}

func TestSessionsHaveSeparateLedgers(t *testing.T) {
	m, store, _, _ := newTestManager()
	ctx := context.Background()

	a, b := m.Get("a"), m.Get("b")
	hydrated(t, a)
	hydrated(t, b)

	if !a.Voting.CastVote(ctx, "1") {
		t.Fatalf("CastVote() failed: %+v", a.Sink.Current())
	}

	if !a.Voting.HasVotedFor("1") {
		t.Error("session a should have voted for 1")
	}
	if b.Voting.HasVotedFor("1") {
		t.Error("session b must not see session a's vote")
	}
	if !b.Voting.CastVote(ctx, "1") {
		t.Error("session b should be able to vote for 1")
	}

	if _, err := store.Get(ctx, LedgerKey("a")); err != nil {
		t.Errorf("session a ledger not persisted: %v", err)
	}
}

func TestBroadcastReachesAllSessions(t *testing.T) {
	m, _, broadcast, _ := newTestManager()
	a, b := m.Get("a"), m.Get("b")

	broadcast.Show(models.NewVotingError(models.ErrorServer, "feed down"))

	for _, s := range []*Session{a, b} {
		if got := s.Sink.Current(); got == nil || got.Message != "feed down" {
			t.Errorf("session %s Current() = %+v", s.ID, got)
		}
	}
}

func TestSweepAndRehydrate(t *testing.T) {
	m, _, _, clock := newTestManager()
	ctx := context.Background()

	a := m.Get("a")
	hydrated(t, a)
	if !a.Voting.CastVote(ctx, "2") {
		t.Fatal("CastVote() failed")
	}

	clock.Advance(10 * time.Minute)
	m.Get("b")

	if removed := m.Sweep(5 * time.Minute); removed != 1 {
		t.Fatalf("Sweep() removed %d sessions, want 1", removed)
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}

	again := m.Get("a")
	if again == a {
		t.Fatal("swept session should be recreated")
	}
	hydrated(t, again)
	if !again.Voting.HasVotedFor("2") {
		t.Error("recreated session should load its persisted vote")
	}
}

func TestResetClearsOtherSessionsVotes(t *testing.T) {
	m, _, _, _ := newTestManager()
	ctx := context.Background()

	a, b := m.Get("a"), m.Get("b")
	hydrated(t, a)
	hydrated(t, b)

	if !b.Voting.CastVote(ctx, "1") {
		t.Fatalf("CastVote() failed: %+v", b.Sink.Current())
	}

	// a resets the show, then the live feed brings contestant 1 back above zero
	m.roster.Reset()
	a.Voting.ResetVotes(ctx)
	m.roster.Apply(roster.UpdateContestant("1", func(c models.Contestant) models.Contestant {
		c.CurrentVotes += 2
		return c
	}))
	b.Voting.CleanupStaleVotes(ctx)

	if b.Voting.HasVotedFor("1") {
		t.Fatal("b's vote from before the reset still counts")
	}
	if !b.Voting.CastVote(ctx, "1") {
		t.Fatalf("b should be able to vote again after a reset: %+v", b.Sink.Current())
	}
}

func TestResetAppliesToReturningSession(t *testing.T) {
	m, _, _, clock := newTestManager()
	ctx := context.Background()

	b := m.Get("b")
	hydrated(t, b)
	if !b.Voting.CastVote(ctx, "3") {
		t.Fatal("CastVote() failed")
	}

	clock.Advance(time.Hour)
	m.Sweep(time.Minute)
	m.roster.Reset()
	m.roster.Apply(roster.UpdateContestant("3", func(c models.Contestant) models.Contestant {
		c.CurrentVotes = 4
		return c
	}))

	again := m.Get("b")
	hydrated(t, again)
	if again.Voting.HasVotedFor("3") {
		t.Error("a ledger persisted before the reset should load empty")
	}
}

func TestSweepKeepsSessionWithVoteInFlight(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rosterStore := roster.NewStore(roster.Seed(clock.Now()))
	api := gatedAPI{release: make(chan struct{})}
	m := NewManager(ledger.NewMemoryStore(), rosterStore, stubShow{rosterStore}, api, errsink.NewBroadcast(), clock)

	a := m.Get("a")
	hydrated(t, a)

	done := make(chan bool)
	go func() { done <- a.Voting.CastVote(context.Background(), "5") }()

	deadline := time.Now().Add(2 * time.Second)
	for !a.Voting.IsLoadingFor("5") {
		if time.Now().After(deadline) {
			t.Fatal("vote never went in flight")
		}
		time.Sleep(time.Millisecond)
	}

	clock.Advance(time.Hour)
	if removed := m.Sweep(time.Minute); removed != 0 {
		t.Fatalf("Sweep() removed %d sessions with a vote in flight", removed)
	}

	close(api.release)
	if !<-done {
		t.Fatal("CastVote() failed")
	}
	if removed := m.Sweep(time.Minute); removed != 1 {
		t.Errorf("Sweep() removed %d sessions after the vote landed, want 1", removed)
	}
}
