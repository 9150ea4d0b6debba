// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package showapi

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/live-vote/models"
)

// User-facing messages for simulated failures
const (
	MsgVoteUnavailable  = "Voting service temporarily unavailable, please try again in a moment."
	MsgFetchUnavailable = "Unable to load contestants, please refresh the page."
	MsgNetwork          = "Network error, please check your connection and try again."
)

type Config struct {
	VoteLatency      time.Duration
	VoteFailureRate  float64
	FetchLatency     time.Duration
	FetchFailureRate float64
}

// DefaultConfig mirrors the behaviour of the show's production API
func DefaultConfig() Config {
	return Config{
		VoteLatency:      500 * time.Millisecond,
		VoteFailureRate:  0.02,
		FetchLatency:     300 * time.Millisecond,
		FetchFailureRate: 0.01,
	}
}

// Client simulates the remote voting API. Nothing leaves the process.
type Client struct {
	cfg   Config
	clock clockwork.Clock
	rnd   Random
}

func NewClient(cfg Config, clock clockwork.Clock, rnd Random) *Client {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if rnd == nil {
		rnd = SystemRandom{}
	}
	return &Client{cfg: cfg, clock: clock, rnd: rnd}
}

type VoteResult struct {
	Success bool `json:"success"`
}

// SubmitVote simulates POST /vote/{contestantID}
func (c *Client) SubmitVote(ctx context.Context, contestantID string) (VoteResult, *models.VotingError) {
	if err := c.wait(ctx, c.cfg.VoteLatency); err != nil {
		return VoteResult{}, err
	}

	if c.rnd.Float64() < c.cfg.VoteFailureRate {
		slog.Warn("simulated vote submission failure", "contestant_id", contestantID)
		return VoteResult{}, models.NewVotingError(models.ErrorServer, MsgVoteUnavailable)
	}

	return VoteResult{Success: true}, nil
}

// FetchContestants simulates GET /contestants
func (c *Client) FetchContestants(ctx context.Context) ([]models.Contestant, *models.VotingError) {
	if err := c.wait(ctx, c.cfg.FetchLatency); err != nil {
		return nil, err
	}

	if c.rnd.Float64() < c.cfg.FetchFailureRate {
		slog.Warn("simulated contestant fetch failure")
		return nil, models.NewVotingError(models.ErrorServer, MsgFetchUnavailable)
	}

	return Catalog(), nil
}

// wait blocks for the simulated latency. A cancelled request looks like a
// dropped connection to the caller.
func (c *Client) wait(ctx context.Context, d time.Duration) *models.VotingError {
	if d <= 0 {
		return nil
	}
	select {
	case <-c.clock.After(d):
		return nil
	case <-ctx.Done():
		return models.NewVotingError(models.ErrorNetwork, MsgNetwork)
	}
}
