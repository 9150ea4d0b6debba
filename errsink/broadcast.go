// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package errsink

import (
	"sync"

	"github.com/danielhkuo/live-vote/models"
)

// Broadcast forwards every shown error to all attached sinks. Shared
// components such as the live feed report through it.
type Broadcast struct {
	mu    sync.RWMutex
	sinks map[*Sink]struct{}
}

func NewBroadcast() *Broadcast {
	return &Broadcast{sinks: make(map[*Sink]struct{})}
}

func (b *Broadcast) Attach(s *Sink) {
	b.mu.Lock()
	b.sinks[s] = struct{}{}
	b.mu.Unlock()
}

func (b *Broadcast) Detach(s *Sink) {
	b.mu.Lock()
	delete(b.sinks, s)
	b.mu.Unlock()
}

func (b *Broadcast) Show(err *models.VotingError) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for s := range b.sinks {
		s.Show(err)
	}
}
