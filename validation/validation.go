// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import (
	"github.com/danielhkuo/live-vote/models"
)

// User-facing validation messages
const (
	MsgContestantNotFound = "Contestant not found"
	MsgContestantInactive = "This contestant is no longer active"
	MsgVotingDisabled     = "Voting is currently disabled"
	MsgStillLoading       = "Application is still loading, please try again"
	MsgVoteInFlight       = "Your vote for this contestant is already being submitted"
	MsgAlreadyVoted       = "You have already voted for this contestant"
)

// Request carries everything needed to decide whether a vote may proceed
type Request struct {
	ContestantID string
	Contestants  []models.Contestant
	HasVotedFor  func(contestantID string) bool
	IsLive       bool
	IsHydrated   bool
	InFlight     bool
}

// ValidateCompleteVote runs the checks in order and returns the first failure,
// or nil when the vote may proceed
func ValidateCompleteVote(req Request) *models.VotingError {
	contestant, verr := ContestantExists(req.ContestantID, req.Contestants)
	if verr != nil {
		return verr
	}
	if verr := ContestantActive(contestant); verr != nil {
		return verr
	}
	if verr := VotingEnabled(req.IsLive); verr != nil {
		return verr
	}
	if verr := Hydrated(req.IsHydrated); verr != nil {
		return verr
	}
	if verr := NotInFlight(req.InFlight); verr != nil {
		return verr
	}
	return NoDuplicateVote(req.ContestantID, req.HasVotedFor)
}

func ContestantExists(contestantID string, contestants []models.Contestant) (models.Contestant, *models.VotingError) {
	for _, c := range contestants {
		if c.ID == contestantID {
			return c, nil
		}
	}
	return models.Contestant{}, models.NewVotingError(models.ErrorValidation, MsgContestantNotFound)
}

func ContestantActive(c models.Contestant) *models.VotingError {
	if !c.IsActive {
		return models.NewVotingError(models.ErrorValidation, MsgContestantInactive)
	}
	return nil
}

func VotingEnabled(isLive bool) *models.VotingError {
	if !isLive {
		return models.NewVotingError(models.ErrorValidation, MsgVotingDisabled)
	}
	return nil
}

func Hydrated(isHydrated bool) *models.VotingError {
	if !isHydrated {
		return models.NewVotingError(models.ErrorValidation, MsgStillLoading)
	}
	return nil
}

// NotInFlight rejects a vote while a submission for the same contestant is pending
func NotInFlight(inFlight bool) *models.VotingError {
	if inFlight {
		return models.NewVotingError(models.ErrorValidation, MsgVoteInFlight)
	}
	return nil
}

func NoDuplicateVote(contestantID string, hasVotedFor func(string) bool) *models.VotingError {
	if hasVotedFor != nil && hasVotedFor(contestantID) {
		return models.NewVotingError(models.ErrorDuplicate, MsgAlreadyVoted)
	}
	return nil
}
