// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the live-vote API server.

live-vote is the voting core of a talent-show live page: a shared contestant
roster that a simulated audience keeps voting on, per-client vote ledgers that
survive restarts, and a 30 second trending window per contestant.

# Starting the Server

	SESSION_SECRET=dev go run .

Or with flags:

	go run . -p 3318 -b postgres -d "postgres://..." -session-secret dev

A .env file in the working directory is loaded first if present.

# Configuration

Required settings:

  - SESSION_SECRET (-session-secret): HMAC key for the session cookie

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - LEDGER_BACKEND (-b): memory, file, sqlite, postgres or redis (default: sqlite)
  - DATABASE_URL (-d): SQL connection string (default: file:live-vote.db)
  - POLL_INTERVAL, VOTE_LATENCY, VOTE_FAILURE_RATE, FETCH_LATENCY,
    FETCH_FAILURE_RATE: simulation tuning

See package cliparse for the full list.

# Architecture

  - roster: shared contestant list, one serialized update entry point
  - trending: 30 second vote history window and trend percentage
  - feed: simulated live audience votes on a ticker
  - validation: ordered vote checks
  - ledger: per-client vote ledger and its storage backends
  - voting: the cast-vote workflow
  - showapi: simulated remote voting API
  - session: per-client ledger, error slot and orchestrator
  - errsink: the current user-facing error
  - handlers, router, middleware: JSON API
  - auth: session ids and cookie signing
  - db: SQL connection and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
