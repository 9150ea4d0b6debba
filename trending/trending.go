// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package trending

import (
	"math"
	"time"

	"github.com/danielhkuo/live-vote/models"
)

// Window is how far back vote history samples are kept
const Window = 30 * time.Second

// inWindow reports whether a sample taken at ts is still inside the window at now.
// The boundary is inclusive: a sample exactly Window old is kept.
func inWindow(ts, now time.Time) bool {
	return now.Sub(ts) <= Window
}

// Record appends a sample for newVotes at now and drops samples older than Window.
// The contestant's history is not modified; callers replace it with the result.
func Record(c models.Contestant, newVotes int, now time.Time) []models.VoteHistoryEntry {
	history := make([]models.VoteHistoryEntry, 0, len(c.VoteHistory)+1)
	for _, entry := range c.VoteHistory {
		if inWindow(entry.Timestamp, now) {
			history = append(history, entry)
		}
	}

	return append(history, models.VoteHistoryEntry{Timestamp: now, Votes: newVotes})
}

// Percentage returns the rounded percentage change between the oldest and newest
// samples inside the window. ok is false when fewer than two samples remain.
//
// A zero baseline is treated as one, so 0 -> N reports N*100 percent.
func Percentage(c models.Contestant, now time.Time) (pct int, ok bool) {
	if len(c.VoteHistory) < 2 {
		return 0, false
	}

	var oldest, newest *models.VoteHistoryEntry
	count := 0
	for i := range c.VoteHistory {
		entry := &c.VoteHistory[i]
		if !inWindow(entry.Timestamp, now) {
			continue
		}
		if oldest == nil {
			oldest = entry
		}
		newest = entry
		count++
	}

	if count < 2 {
		return 0, false
	}

	base := max(oldest.Votes, 1)
	change := float64((newest.Votes-oldest.Votes)*100) / float64(base)
	return roundHalfUp(change), true
}

// roundHalfUp rounds .5 toward positive infinity
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
