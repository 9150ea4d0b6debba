// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package showapi

import "github.com/danielhkuo/live-vote/models"

// Catalog is the fixed roster returned by the contestant fetch
func Catalog() []models.Contestant {
	return []models.Contestant{
		{
			ID:     "1",
			Name:   "Sarah Johnson",
			Talent: "Opera Singing",
			Description: "Sarah Johnson, 28, from New York, is a classically trained soprano with a powerful voice that can reach incredible heights. " +
				"She specializes in Italian opera and has performed at prestigious venues across Europe. " +
				"Her signature piece is \"Nessun Dorma\" from Puccini's Turandot.",
			ImageURL:     "/sarah.png",
			CurrentVotes: 12,
			IsActive:     true,
		},
		{
			ID:     "2",
			Name:   "Mike Chen",
			Talent: "Magic Tricks",
			Description: "Mike Chen, 35, from San Francisco, is a master illusionist who combines traditional sleight of hand with modern technology. " +
				"He specializes in close-up magic and mentalism, often incorporating elements of Chinese culture into his performances. " +
				"His signature trick involves making objects disappear and reappear in impossible locations.",
			ImageURL:     "/mike.png",
			CurrentVotes: 8,
			IsActive:     true,
		},
		{
			ID:     "3",
			Name:   "Emma Rodriguez",
			Talent: "Contemporary Dance",
			Description: "Emma Rodriguez, 24, from Los Angeles, is a contemporary dancer who tells stories through movement. " +
				"She combines classical ballet training with modern dance techniques, creating performances that are both technically impressive and emotionally moving. " +
				"Her choreography often explores themes of identity and cultural heritage.",
			ImageURL:     "/emma.png",
			CurrentVotes: 15,
			IsActive:     true,
		},
		{
			ID:     "4",
			Name:   "David Kim",
			Talent: "Classical Piano",
			Description: "David Kim, 31, from Seoul, South Korea, is a virtuoso pianist who brings classical music to life with his passionate performances. " +
				"He specializes in Romantic era composers like Chopin and Liszt, and his interpretations are known for their emotional depth and technical precision. " +
				"He has won several international piano competitions.",
			ImageURL:     "/david.png",
			CurrentVotes: 20,
			IsActive:     true,
		},
		{
			ID:     "5",
			Name:   "Lisa Thompson",
			Talent: "Stand-up Comedy",
			Description: "Lisa Thompson, 29, from Chicago, is a rising star in the comedy world known for her sharp wit and relatable humor. " +
				"She tackles everyday topics with a unique perspective, from dating in the digital age to the challenges of adulting. " +
				"Her comedy style is observational and self-deprecating, making audiences laugh while nodding in agreement.",
			ImageURL:     "/lisa.png",
			CurrentVotes: 18,
			IsActive:     true,
		},
		{
			ID:     "6",
			Name:   "Alex Rivera",
			Talent: "Acrobatics",
			Description: "Alex Rivera, 26, from Miami, is a professional acrobat who combines strength, flexibility, and artistry in breathtaking performances. " +
				"He specializes in hand balancing and aerial acrobatics, often incorporating elements of contemporary circus arts. " +
				"His routines are known for their fluidity and the way he makes impossible feats look effortless.",
			ImageURL:     "/alex.png",
			CurrentVotes: 14,
			IsActive:     true,
		},
	}
}
