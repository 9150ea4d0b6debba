// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the live-vote API.

# Handler Types

  - ShowHandler: the board, live mode, reset and the error slot
  - VotingHandler: casting votes and the contestant catalog

	showHandler := handlers.NewShowHandler(store, sim)
	votingHandler := handlers.NewVotingHandler(apiClient)

# Sessions

Per-client routes run behind middleware.WithSession. The session carries the
client's vote ledger, in-flight votes and current error; the roster and the
live flag are shared by everyone.

# Board

	GET /contestants → contestants with has_voted, is_loading and
	                   trending_percentage, plus totals and the current error

# Voting

	POST /contestants/{id}/vote → 201 {"success": true}

Rejections carry the voting error in "detail" and map to a status:

	duplicate  → 409
	validation → 400
	network    → 502
	server     → 503

A vote whose ledger write fails still succeeds; the storage error shows up in
the error slot.

# Live Mode and Reset

	POST /live/toggle → flip live mode
	PUT  /live        → {"is_live": bool}
	POST /reset       → seed roster, new generation (every session's votes void), empty ledger, no error
*/
package handlers
