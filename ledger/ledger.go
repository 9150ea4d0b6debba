// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/danielhkuo/live-vote/models"
)

// StorageKey is the base key the vote state is stored under
const StorageKey = "talent-show-votes"

var (
	ErrLoad   = errors.New("failed to load data from storage")
	ErrSave   = errors.New("failed to save data to storage")
	ErrRemove = errors.New("failed to remove data from storage")
)

// Generation reports the roster reset generation votes are counted against.
// A ledger value written under an older generation no longer counts.
type Generation func() uint64

// record is the persisted form of the ledger
type record struct {
	Generation uint64           `json:"generation"`
	Votes      models.VoteState `json:"votes"`
}

// Ledger records which contestants this client has voted for. The in-memory
// state is authoritative for the session; persistence failures are reported
// through onError and never undo an in-memory change.
type Ledger struct {
	store      Store
	key        string
	generation Generation
	onError    func(error)

	// writeMu orders persistence so the last write always holds the latest state
	writeMu sync.Mutex

	mu       sync.RWMutex
	state    models.VoteState
	gen      uint64
	hydrated bool
	// changed is set once Set, Clear or Prune ran; hydration must not overwrite them
	changed bool
	started bool
	done    chan struct{}
}

// New creates a ledger stored under key. A nil generation counts every vote
// against generation zero.
func New(store Store, key string, generation Generation, onError func(error)) *Ledger {
	if generation == nil {
		generation = func() uint64 { return 0 }
	}
	if onError == nil {
		onError = func(error) {}
	}
	return &Ledger{
		store:      store,
		key:        key,
		generation: generation,
		onError:    onError,
		state:      models.VoteState{},
		done:       make(chan struct{}),
	}
}

// Hydrate loads the persisted state in the background. Calling it again is a no-op.
func (l *Ledger) Hydrate(ctx context.Context) {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return
	}
	l.started = true
	l.gen = l.generation()
	l.mu.Unlock()

	go func() {
		rec, err := l.load(ctx)
		if err != nil {
			slog.Warn("ledger hydration failed, starting empty", "key", l.key, "error", err)
			l.onError(err)
			rec = record{Generation: l.generation(), Votes: models.VoteState{}}
		}
		if current := l.generation(); rec.Generation != current {
			slog.Info("discarding ledger from before a reset", "key", l.key,
				"stored_generation", rec.Generation, "generation", current)
			rec = record{Generation: current, Votes: models.VoteState{}}
		}

		l.mu.Lock()
		if l.changed {
			slog.Debug("ledger changed while loading, keeping in-memory state", "key", l.key)
		} else {
			l.state = rec.Votes
			l.gen = rec.Generation
		}
		l.hydrated = true
		l.mu.Unlock()
		close(l.done)
	}()
}

// load reads the stored record. A bare vote map is accepted as generation zero.
func (l *Ledger) load(ctx context.Context) (record, error) {
	data, err := l.store.Get(ctx, l.key)
	if errors.Is(err, ErrNotFound) {
		return record{Votes: models.VoteState{}}, nil
	}
	if err != nil {
		return record{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	var rec struct {
		Generation uint64          `json:"generation"`
		Votes      map[string]bool `json:"votes"`
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return record{}, fmt.Errorf("%w: corrupted state: %w", ErrLoad, err)
	}
	raw := rec.Votes
	if raw == nil {
		if err := json.Unmarshal(data, &raw); err != nil {
			return record{}, fmt.Errorf("%w: corrupted state: %w", ErrLoad, err)
		}
	}

	state := models.VoteState{}
	for id, voted := range raw {
		if voted {
			state[id] = true
		}
	}
	return record{Generation: rec.Generation, Votes: state}, nil
}

// Hydrated is closed once hydration has finished, successfully or not
func (l *Ledger) Hydrated() <-chan struct{} {
	return l.done
}

func (l *Ledger) IsHydrated() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.hydrated
}

// current returns the state if it belongs to the current generation, or an
// empty state. Callers hold l.mu.
func (l *Ledger) current() models.VoteState {
	if l.gen != l.generation() {
		return models.VoteState{}
	}
	return l.state
}

// Has reports whether the ledger holds a vote for contestantID
func (l *Ledger) Has(contestantID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current()[contestantID]
}

// Value returns a copy of the current vote state
func (l *Ledger) Value() models.VoteState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current().Clone()
}

// Set records a vote for contestantID and persists the new state
func (l *Ledger) Set(ctx context.Context, contestantID string) {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	l.mu.Lock()
	next := l.current().Clone()
	next[contestantID] = true
	l.state = next
	l.gen = l.generation()
	l.changed = true
	rec := record{Generation: l.gen, Votes: next}
	l.mu.Unlock()

	l.persist(ctx, rec)
}

// Clear empties the state and removes the persisted entry
func (l *Ledger) Clear(ctx context.Context) {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	l.mu.Lock()
	l.state = models.VoteState{}
	l.gen = l.generation()
	l.changed = true
	l.mu.Unlock()

	if err := l.store.Delete(ctx, l.key); err != nil {
		l.onError(fmt.Errorf("%w: %w", ErrRemove, err))
	}
}

// Prune drops every entry keep rejects and persists the result if anything
// changed. It reports whether entries were removed. A state from before a
// reset is dropped entirely.
func (l *Ledger) Prune(ctx context.Context, keep func(contestantID string) bool) bool {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	l.mu.Lock()
	gen := l.generation()
	stale := l.gen != gen
	next := models.VoteState{}
	for id, voted := range l.current() {
		if keep(id) {
			next[id] = voted
		}
	}
	if len(next) == len(l.state) {
		// nothing dropped; a stale empty state only needs its generation moved on
		if stale {
			l.gen = gen
		}
		l.mu.Unlock()
		return false
	}
	l.state = next
	l.gen = gen
	l.changed = true
	rec := record{Generation: l.gen, Votes: next}
	l.mu.Unlock()

	l.persist(ctx, rec)
	return true
}

func (l *Ledger) persist(ctx context.Context, rec record) {
	data, err := json.Marshal(rec)
	if err != nil {
		l.onError(fmt.Errorf("%w: %w", ErrSave, err))
		return
	}
	if err := l.store.Put(ctx, l.key, data); err != nil {
		l.onError(fmt.Errorf("%w: %w", ErrSave, err))
	}
}
