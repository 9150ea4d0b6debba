// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"log/slog"
	"sync"

	"github.com/danielhkuo/live-vote/errsink"
	"github.com/danielhkuo/live-vote/ledger"
	"github.com/danielhkuo/live-vote/models"
	"github.com/danielhkuo/live-vote/roster"
	"github.com/danielhkuo/live-vote/showapi"
	"github.com/danielhkuo/live-vote/validation"
)

// MsgStorageFailed is shown whenever the ledger cannot be read or written
const MsgStorageFailed = "Unable to save your vote. Please try again."

// LiveState reports whether live mode is on
type LiveState interface {
	IsLive() bool
}

// VoteSubmitter sends a vote to the voting service
type VoteSubmitter interface {
	SubmitVote(ctx context.Context, contestantID string) (showapi.VoteResult, *models.VotingError)
}

// ErrorChannel is where rejected votes are shown
type ErrorChannel interface {
	Show(err *models.VotingError)
	Clear()
}

// StorageErrorReporter adapts ledger errors to the error sink
func StorageErrorReporter(sink errsink.Reporter) func(error) {
	return func(err error) {
		if err == nil {
			return
		}
		slog.Error("vote ledger storage error", "error", err)
		sink.Show(models.NewVotingError(models.ErrorStorage, MsgStorageFailed))
	}
}

// Orchestrator runs the cast-vote workflow for one client
type Orchestrator struct {
	roster    *roster.Store
	ledger    *ledger.Ledger
	api       VoteSubmitter
	live      LiveState
	sink      ErrorChannel
	onSuccess func(contestantID string)

	mu      sync.Mutex
	loading map[string]bool
}

func NewOrchestrator(
	store *roster.Store,
	l *ledger.Ledger,
	api VoteSubmitter,
	live LiveState,
	sink ErrorChannel,
	onSuccess func(contestantID string),
) *Orchestrator {
	if onSuccess == nil {
		onSuccess = func(string) {}
	}
	return &Orchestrator{
		roster:    store,
		ledger:    l,
		api:       api,
		live:      live,
		sink:      sink,
		onSuccess: onSuccess,
		loading:   make(map[string]bool),
	}
}

// CastVote validates, submits and records a vote. Every rejection is shown
// through the error sink and reported as false.
func (o *Orchestrator) CastVote(ctx context.Context, contestantID string) bool {
	return o.Cast(ctx, contestantID) == nil
}

// Cast is CastVote returning the rejection itself, with its original type,
// instead of a bool
func (o *Orchestrator) Cast(ctx context.Context, contestantID string) *models.VotingError {
	// Validation and marking the vote in flight happen under one lock so two
	// rapid calls cannot both pass the in-flight check
	o.mu.Lock()
	verr := validation.ValidateCompleteVote(validation.Request{
		ContestantID: contestantID,
		Contestants:  o.roster.Snapshot(),
		HasVotedFor:  o.HasVotedFor,
		IsLive:       o.live.IsLive(),
		IsHydrated:   o.ledger.IsHydrated(),
		InFlight:     o.loading[contestantID],
	})
	if verr != nil {
		o.mu.Unlock()
		slog.Info("vote rejected", "contestant_id", contestantID, "type", verr.Type, "reason", verr.Message)
		o.sink.Show(verr)
		return verr
	}
	o.loading[contestantID] = true
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		delete(o.loading, contestantID)
		o.mu.Unlock()
	}()

	if _, apiErr := o.api.SubmitVote(ctx, contestantID); apiErr != nil {
		slog.Warn("vote submission failed", "contestant_id", contestantID, "type", apiErr.Type)
		o.sink.Show(apiErr)
		return apiErr
	}

	o.ledger.Set(ctx, contestantID)
	o.onSuccess(contestantID)

	slog.Info("vote cast", "contestant_id", contestantID)
	return nil
}

// HasVotedFor reports a vote only once the ledger is hydrated, the ledger
// records it and the contestant still has votes. A reset roster therefore
// never shows stale votes.
func (o *Orchestrator) HasVotedFor(contestantID string) bool {
	if !o.ledger.IsHydrated() {
		return false
	}
	c, ok := o.roster.Find(contestantID)
	if !ok || c.CurrentVotes == 0 {
		return false
	}
	return o.ledger.Has(contestantID)
}

func (o *Orchestrator) IsLoadingFor(contestantID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.loading[contestantID]
}

// InFlight reports whether any vote is still being submitted
func (o *Orchestrator) InFlight() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.loading) > 0
}

func (o *Orchestrator) IsHydrated() bool {
	return o.ledger.IsHydrated()
}

// ResetVotes clears this client's ledger and current error
func (o *Orchestrator) ResetVotes(ctx context.Context) {
	o.ledger.Clear(ctx)
	o.sink.Clear()
}

// CleanupStaleVotes drops ledger entries for contestants that are gone or
// back at zero votes
func (o *Orchestrator) CleanupStaleVotes(ctx context.Context) bool {
	return o.ledger.Prune(ctx, func(contestantID string) bool {
		c, ok := o.roster.Find(contestantID)
		return ok && c.CurrentVotes > 0
	})
}
