// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth creates and verifies client session tokens.

# Session IDs

Every client gets a random UUID that keys its vote ledger:

	id := auth.NewSessionID()

# Signed Tokens

The session cookie carries the id plus an HMAC-SHA256 signature:

	token := auth.SignSessionID(id, secret)
	id, err := auth.VerifySessionToken(token, secret)

The signature is URL-safe base64 encoded without padding. Tokens that are
malformed return ErrInvalidToken; tokens signed with another secret return
ErrInvalidSignature.
*/
package auth
