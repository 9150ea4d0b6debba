// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/live-vote/models"
)

func addVotes(id string, n int) UpdateFunc {
	return UpdateContestant(id, func(c models.Contestant) models.Contestant {
		c.CurrentVotes += n
		return c
	})
}

func TestSeed(t *testing.T) {
	now := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	seed := Seed(now)

	if len(seed) != 6 {
		t.Fatalf("Seed() returned %d contestants, want 6", len(seed))
	}
	for _, c := range seed {
		if c.CurrentVotes != 0 || !c.IsActive {
			t.Errorf("contestant %s: votes=%d active=%v, want 0 and active", c.ID, c.CurrentVotes, c.IsActive)
		}
		if len(c.VoteHistory) != 3 || !c.VoteHistory[2].Timestamp.Equal(now) {
			t.Errorf("contestant %s: unexpected history %+v", c.ID, c.VoteHistory)
		}
	}
}

func TestApplyAndReset(t *testing.T) {
	store := NewStore(Seed(time.Now()))

	store.Apply(addVotes("2", 5))

	c, ok := store.Find("2")
	if !ok {
		t.Fatal("contestant 2 not found")
	}
	if c.CurrentVotes != 5 {
		t.Errorf("CurrentVotes = %d, want 5", c.CurrentVotes)
	}
	if store.Version() != 1 {
		t.Errorf("Version() = %d, want 1", store.Version())
	}

	if store.Generation() != 0 {
		t.Errorf("Generation() = %d before any reset, want 0", store.Generation())
	}

	store.Reset()
	c, _ = store.Find("2")
	if c.CurrentVotes != 0 {
		t.Errorf("after Reset CurrentVotes = %d, want 0", c.CurrentVotes)
	}
	if store.Generation() != 1 {
		t.Errorf("Generation() = %d after Reset, want 1", store.Generation())
	}
	if store.Version() != 2 {
		t.Errorf("Version() = %d after Reset, want 2", store.Version())
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	store := NewStore(Seed(time.Now()))

	snap := store.Snapshot()
	snap[0].CurrentVotes = 99

	if c, _ := store.Find(snap[0].ID); c.CurrentVotes != 0 {
		t.Error("modifying a snapshot changed the store")
	}
}

// TestConcurrentApply verifies that updates from many producers are never lost
func TestConcurrentApply(t *testing.T) {
	store := NewStore(Seed(time.Now()))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Apply(addVotes("1", 1))
		}()
		go func() {
			defer wg.Done()
			store.Apply(func(prev []models.Contestant) []models.Contestant {
				for i := range prev {
					prev[i].CurrentVotes += 2
				}
				return prev
			})
		}()
	}
	wg.Wait()

	c, _ := store.Find("1")
	if c.CurrentVotes != 150 {
		t.Errorf("CurrentVotes = %d, want 150", c.CurrentVotes)
	}
	other, _ := store.Find("3")
	if other.CurrentVotes != 100 {
		t.Errorf("CurrentVotes = %d, want 100", other.CurrentVotes)
	}
}

func TestTotals(t *testing.T) {
	contestants := []models.Contestant{
		{ID: "1", CurrentVotes: 3, IsActive: true},
		{ID: "2", CurrentVotes: 4, IsActive: false},
		{ID: "3", CurrentVotes: 5, IsActive: true},
	}

	total, active := Totals(contestants)
	if total != 12 || active != 2 {
		t.Errorf("Totals() = (%d, %d), want (12, 2)", total, active)
	}
}
