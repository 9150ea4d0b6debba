// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"time"

	"github.com/danielhkuo/live-vote/models"
)

type act struct {
	id, name, talent, description, image string
}

var seedActs = []act{
	{"1", "Sarah Johnson", "Opera Singing",
		"Classically trained soprano with a powerful voice. Specializes in Italian opera and has performed at prestigious venues across Europe.",
		"/sarah.png"},
	{"2", "Mike Chen", "Magic Tricks",
		"Master illusionist combining traditional sleight of hand with modern technology. Specializes in close-up magic and mentalism.",
		"/mike.png"},
	{"3", "Emma Rodriguez", "Contemporary Dance",
		"Contemporary dancer blending classical ballet with modern street dance. Creates emotionally charged performances that tell stories through movement.",
		"/emma.png"},
	{"4", "David Kim", "Guitar Performance",
		"Virtuoso guitarist blending classical, jazz, and rock styles. Creates unique arrangements with masterful fingerpicking technique.",
		"/david.png"},
	{"5", "Lisa Thompson", "Stand-up Comedy",
		"Sharp-witted comedian known for observational humor and relatable stories. Combines self-deprecating humor with social commentary.",
		"/lisa.png"},
	{"6", "Alex Rivera", "Acrobatics",
		"Dynamic acrobat combining traditional circus skills with modern athleticism. Performs gravity-defying stunts with high-energy routines.",
		"/alex.png"},
}

// Seed builds the starting roster. Every contestant begins with zero votes and
// three zero samples spread over the trending window ending at now.
func Seed(now time.Time) []models.Contestant {
	out := make([]models.Contestant, 0, len(seedActs))
	for _, a := range seedActs {
		out = append(out, models.Contestant{
			ID:           a.id,
			Name:         a.name,
			Talent:       a.talent,
			Description:  a.description,
			ImageURL:     a.image,
			CurrentVotes: 0,
			IsActive:     true,
			VoteHistory: []models.VoteHistoryEntry{
				{Timestamp: now.Add(-30 * time.Second), Votes: 0},
				{Timestamp: now.Add(-15 * time.Second), Votes: 0},
				{Timestamp: now, Votes: 0},
			},
		})
	}
	return out
}
