// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/live-vote/errsink"
	"github.com/danielhkuo/live-vote/models"
	"github.com/danielhkuo/live-vote/roster"
	"github.com/danielhkuo/live-vote/trending"
)

const (
	DefaultInterval  = 3 * time.Second
	VoteProbability  = 0.3
	MaxVoteIncrement = 3

	MsgUpdateFailed = "Unable to update live votes. Please refresh the page."
)

// Random is the source of chance for simulated votes.
// Implementations must be safe for concurrent use.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// Simulator adds simulated audience votes to the roster while live mode is on.
// The enabled state is the show's live flag.
type Simulator struct {
	roster   *roster.Store
	sink     errsink.Reporter
	clock    clockwork.Clock
	rnd      Random
	interval time.Duration

	mu      sync.Mutex
	enabled bool
	cancel  context.CancelFunc
	done    chan struct{}

	running atomic.Bool
	passes  atomic.Uint64
	skipped atomic.Uint64
}

func NewSimulator(store *roster.Store, sink errsink.Reporter, clock clockwork.Clock, rnd Random, interval time.Duration) *Simulator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Simulator{
		roster:   store,
		sink:     sink,
		clock:    clock,
		rnd:      rnd,
		interval: interval,
	}
}

// Enable turns live mode on: one pass runs right away, then one per interval.
// Enabling an enabled simulator does nothing.
func (s *Simulator) Enable() {
	s.mu.Lock()
	ctx, done, ok := s.enableLocked()
	s.mu.Unlock()
	if ok {
		s.start(ctx, done)
	}
}

// Disable turns live mode off. A pass already running finishes; no new pass starts.
func (s *Simulator) Disable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disableLocked()
}

// Toggle flips live mode and returns the new state. The read and the flip
// happen under one lock, so concurrent toggles never collapse into one.
func (s *Simulator) Toggle() bool {
	s.mu.Lock()
	if s.enabled {
		s.disableLocked()
		s.mu.Unlock()
		return false
	}
	ctx, done, _ := s.enableLocked()
	s.mu.Unlock()
	s.start(ctx, done)
	return true
}

// enableLocked marks the simulator enabled. s.mu must be held.
// ok is false when it was already enabled.
func (s *Simulator) enableLocked() (ctx context.Context, done chan struct{}, ok bool) {
	if s.enabled {
		return nil, nil, false
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.enabled = true
	s.cancel = cancel
	s.done = make(chan struct{})
	return ctx, s.done, true
}

// disableLocked stops the schedule. s.mu must be held.
func (s *Simulator) disableLocked() {
	if !s.enabled {
		return
	}
	s.cancel()
	s.enabled = false
	slog.Info("live updates disabled")
}

func (s *Simulator) start(ctx context.Context, done chan struct{}) {
	slog.Info("live updates enabled", "interval", s.interval)

	s.tick(ctx)

	ticker := s.clock.NewTicker(s.interval)
	go s.run(ctx, ticker, done)
}

func (s *Simulator) IsLive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Close disables the simulator and waits for its schedule to exit
func (s *Simulator) Close() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	s.Disable()
	if done != nil {
		<-done
	}
}

func (s *Simulator) run(ctx context.Context, ticker clockwork.Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			s.tick(ctx)
		}
	}
}

// tick runs a pass unless live mode was switched off or another pass is still running
func (s *Simulator) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if !s.running.CompareAndSwap(false, true) {
		s.skipped.Add(1)
		slog.Debug("live update skipped, previous pass still running")
		return
	}
	defer s.running.Store(false)

	s.Pass()
}

// Pass applies one round of simulated votes. A fault is reported to the
// error sink and swallowed so the schedule keeps going.
func (s *Simulator) Pass() {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("live update pass failed", "error", fmt.Sprint(r))
			s.sink.Show(models.NewVotingError(models.ErrorServer, MsgUpdateFailed))
		}
	}()

	now := s.clock.Now()
	s.roster.Apply(func(prev []models.Contestant) []models.Contestant {
		for i, c := range prev {
			if !c.IsActive {
				continue
			}
			votes := c.CurrentVotes + s.increment()
			prev[i].CurrentVotes = votes
			prev[i].VoteHistory = trending.Record(c, votes, now)
		}
		return prev
	})
	s.passes.Add(1)
}

func (s *Simulator) increment() int {
	if s.rnd.Float64() < VoteProbability {
		return s.rnd.IntN(MaxVoteIncrement) + 1
	}
	return 0
}

// Passes returns how many passes completed
func (s *Simulator) Passes() uint64 {
	return s.passes.Load()
}

// Skipped returns how many ticks were dropped because a pass was still running
func (s *Simulator) Skipped() uint64 {
	return s.skipped.Load()
}

// AddVote applies one user vote for contestantID and records a trending sample.
// It is the success callback for the vote orchestrator.
func (s *Simulator) AddVote(contestantID string) {
	now := s.clock.Now()
	s.roster.Apply(roster.UpdateContestant(contestantID, func(c models.Contestant) models.Contestant {
		votes := c.CurrentVotes + 1
		c.VoteHistory = trending.Record(c, votes, now)
		c.CurrentVotes = votes
		return c
	}))
}

// Reset restores the seed roster
func (s *Simulator) Reset() {
	s.roster.Reset()
}

// TrendingPercentage computes the contestant's trend at the current time
func (s *Simulator) TrendingPercentage(c models.Contestant) (int, bool) {
	return trending.Percentage(c, s.clock.Now())
}
