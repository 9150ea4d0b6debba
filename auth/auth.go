// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidToken     = errors.New("invalid token format")
	ErrInvalidSignature = errors.New("invalid session signature")
)

// NewSessionID creates a random session identifier
func NewSessionID() string {
	return uuid.NewString()
}

// SignSessionID returns "<id>.<signature>" for use as a cookie value.
// The signature is an HMAC of the id, so clients cannot pick another id.
func SignSessionID(sessionID, secret string) string {
	return sessionID + "." + signature(sessionID, secret)
}

// VerifySessionToken checks a signed token and returns the session id
func VerifySessionToken(token, secret string) (string, error) {
	sessionID, sig, ok := strings.Cut(token, ".")
	if !ok || sig == "" {
		return "", ErrInvalidToken
	}
	if _, err := uuid.Parse(sessionID); err != nil {
		return "", ErrInvalidToken
	}

	expected := signature(sessionID, secret)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrInvalidSignature
	}
	return sessionID, nil
}

func signature(sessionID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(sessionID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner cookies
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}
