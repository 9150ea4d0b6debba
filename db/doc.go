// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the SQL database behind the ledger and creates its schema.

# Connecting

Open accepts "sqlite" (modernc.org/sqlite, pure Go) or "postgres" (lib/pq):

	conn, err := db.Open(db.TypeSQLite, "file:live-vote.db")

SQLite connections are limited to one open connection, which also keeps
":memory:" databases alive for the lifetime of the pool.

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - ledger_entry: entry_key -> JSON vote state, one row per client session
*/
package db
