// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package errsink holds the single user-facing error slot that every component
// reports into. At most one error is current; a new one replaces the old.
package errsink

import (
	"log/slog"
	"sync"

	"github.com/danielhkuo/live-vote/models"
)

// Reporter is the write side of a Sink
type Reporter interface {
	Show(err *models.VotingError)
}

type Sink struct {
	mu      sync.RWMutex
	current *models.VotingError
}

func New() *Sink {
	return &Sink{}
}

// Show makes err the current error. Values without a message are ignored.
func (s *Sink) Show(err *models.VotingError) {
	if err == nil || err.Message == "" {
		return
	}

	// Duplicate votes surface with validation severity
	shown := *err
	if shown.Type == models.ErrorDuplicate {
		shown.Type = models.ErrorValidation
	}

	s.mu.Lock()
	s.current = &shown
	s.mu.Unlock()

	slog.Warn("error shown", "type", err.Type, "message", err.Message)
}

func (s *Sink) Clear() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// Current returns a copy of the current error, or nil
func (s *Sink) Current() *models.VotingError {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}
