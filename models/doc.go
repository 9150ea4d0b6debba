// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, response, and error types shared by the core.

# Domain Types

  - Contestant: one act in the show, with a windowed vote history
  - VoteHistoryEntry: a cumulative vote count sample
  - VoteState: contestant_id -> true for every contestant this client voted for
  - VotingError: a user-facing error value with a type tag

# Error Types

	ErrorDuplicate  = "duplicate"
	ErrorNetwork    = "network"
	ErrorValidation = "validation"
	ErrorServer     = "server"
	ErrorStorage    = "storage"

VotingError implements error so it can travel through Go return values, but at the
API boundary it is a plain value delivered through the error sink.

# Response Types

  - BoardResponse: contestants with per-session vote state and header stats
  - CastVoteResponse, LiveResponse, CatalogResponse, CurrentErrorResponse
  - ErrorResponse: error, message, detail
*/
package models
