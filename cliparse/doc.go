// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

main loads a .env file (if present) with godotenv before parsing, so every
environment variable below can also live there.

# CLI Flags

	-p               Server port
	-b               Ledger backend: memory, file, sqlite, postgres, redis
	-d               Database URL (sqlite, postgres)
	-ledger-dir      Directory for the file backend
	-redis           Redis address
	-session-secret  Session cookie secret
	-poll-interval   Live feed interval
	-vote-latency    Simulated vote submission latency

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p (default 3318)
	LEDGER_BACKEND     → -b (default sqlite)
	DATABASE_URL       → -d (default file:live-vote.db for sqlite)
	LEDGER_DIR         → -ledger-dir (default ledger-data)
	REDIS_ADDR         → -redis (default localhost:6379)
	REDIS_PASSWORD, REDIS_DB
	SESSION_SECRET     → -session-secret
	POLL_INTERVAL      → -poll-interval (default 3s)
	VOTE_LATENCY       → -vote-latency (default 500ms)
	VOTE_FAILURE_RATE  (default 0.02)
	FETCH_LATENCY      (default 300ms)
	FETCH_FAILURE_RATE (default 0.01)
	SESSION_IDLE       (default 30m)

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - SESSION_SECRET is missing
  - the backend is unknown
  - postgres is selected without DATABASE_URL
  - a duration or rate does not parse (rates must be within 0..1)
*/
package cliparse
