// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"slices"
	"sync"

	"github.com/danielhkuo/live-vote/models"
)

// UpdateFunc transforms the previous contestant list into the next one.
// It receives its own copy of the list and must not keep a reference to it.
type UpdateFunc func(prev []models.Contestant) []models.Contestant

// Store is the shared contestant list. Every mutation goes through Apply so the
// live feed and vote successes never overwrite each other's updates.
type Store struct {
	mu      sync.Mutex
	seed    []models.Contestant
	current []models.Contestant
	version uint64
	// generation counts resets
	generation uint64
}

func NewStore(seed []models.Contestant) *Store {
	return &Store{
		seed:    slices.Clone(seed),
		current: slices.Clone(seed),
	}
}

// Apply runs fn against the latest list and publishes its result
func (s *Store) Apply(fn UpdateFunc) []models.Contestant {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(slices.Clone(s.current))
	s.current = next
	s.version++
	return slices.Clone(next)
}

// Snapshot returns a copy of the current list
func (s *Store) Snapshot() []models.Contestant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.current)
}

// Version increases by one with every applied update
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Find returns the contestant with the given id from the current list
func (s *Store) Find(id string) (models.Contestant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.current {
		if c.ID == id {
			return c, true
		}
	}
	return models.Contestant{}, false
}

// Reset restores the seed list and starts a new generation
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = slices.Clone(s.seed)
	s.version++
	s.generation++
}

// Generation is the number of resets so far. Votes recorded under an earlier
// generation refer to a roster that no longer exists.
func (s *Store) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// UpdateContestant returns an UpdateFunc that replaces the contestant with the
// given id by fn(contestant). Other contestants pass through unchanged.
func UpdateContestant(id string, fn func(models.Contestant) models.Contestant) UpdateFunc {
	return func(prev []models.Contestant) []models.Contestant {
		for i, c := range prev {
			if c.ID == id {
				prev[i] = fn(c)
			}
		}
		return prev
	}
}

// Totals returns the sum of all votes and the number of active contestants
func Totals(contestants []models.Contestant) (totalVotes, active int) {
	for _, c := range contestants {
		totalVotes += c.CurrentVotes
		if c.IsActive {
			active++
		}
	}
	return totalVotes, active
}
