// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the live-vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(router.Deps{
		Roster:   store,
		Feed:     sim,
		Sessions: sessions,
		Catalog:  apiClient,
	}, cfg)

# Endpoints

Health:

	GET /health

Per client (session cookie lv_session, issued on first visit):

	GET    /contestants           - Board with vote state and trends
	POST   /contestants/{id}/vote - Cast a vote
	GET    /catalog               - Simulated contestant fetch
	POST   /reset                 - Reset roster and everyone's votes
	GET    /error                 - Current error
	DELETE /error                 - Dismiss the current error

Shared:

	POST /live/toggle - Flip live mode
	PUT  /live        - Set live mode
*/
package router
