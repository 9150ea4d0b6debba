package models

import "time"

// Error type constants
const (
	ErrorDuplicate  = "duplicate"
	ErrorNetwork    = "network"
	ErrorValidation = "validation"
	ErrorServer     = "server"
	ErrorStorage    = "storage"
)

// Domain types

type VoteHistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Votes     int       `json:"votes"`
}

type Contestant struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Talent       string             `json:"talent"`
	Description  string             `json:"description"`
	ImageURL     string             `json:"image_url"`
	CurrentVotes int                `json:"current_votes"`
	IsActive     bool               `json:"is_active"`
	VoteHistory  []VoteHistoryEntry `json:"vote_history,omitempty"`
}

// contestant_id -> true, absent means not voted
type VoteState map[string]bool

// Clone returns an independent copy of the vote state
func (s VoteState) Clone() VoteState {
	out := make(VoteState, len(s))
	for id, voted := range s {
		out[id] = voted
	}
	return out
}

// VotingError is a user-facing error value. It is shown, not thrown.
type VotingError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *VotingError) Error() string {
	return e.Type + ": " + e.Message
}

// NewVotingError builds a VotingError of the given type
func NewVotingError(errType, message string) *VotingError {
	return &VotingError{Message: message, Type: errType}
}

// Response types

type ContestantView struct {
	Contestant
	HasVoted           bool `json:"has_voted"`
	IsLoading          bool `json:"is_loading"`
	TrendingPercentage *int `json:"trending_percentage"`
}

type BoardResponse struct {
	Contestants       []ContestantView `json:"contestants"`
	IsLive            bool             `json:"is_live"`
	IsHydrated        bool             `json:"is_hydrated"`
	TotalVotes        int              `json:"total_votes"`
	TotalVotesLabel   string           `json:"total_votes_label"`
	ActiveContestants int              `json:"active_contestants"`
	Error             *VotingError     `json:"error"`
}

type CastVoteResponse struct {
	Success bool `json:"success"`
}

type LiveResponse struct {
	IsLive bool `json:"is_live"`
}

// Request types

type SetLiveRequest struct {
	IsLive *bool `json:"is_live"`
}

type CatalogResponse struct {
	Contestants []Contestant `json:"contestants"`
}

type CurrentErrorResponse struct {
	Error *VotingError `json:"error"`
}

// Error response

type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message,omitempty"`
	Detail  *VotingError `json:"detail,omitempty"`
}
