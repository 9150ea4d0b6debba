// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/live-vote/cliparse"
	"github.com/danielhkuo/live-vote/feed"
	"github.com/danielhkuo/live-vote/handlers"
	"github.com/danielhkuo/live-vote/middleware"
	"github.com/danielhkuo/live-vote/roster"
	"github.com/danielhkuo/live-vote/session"
)

// Deps are the shared show components the routes operate on
type Deps struct {
	Roster   *roster.Store
	Feed     *feed.Simulator
	Sessions *session.Manager
	Catalog  handlers.Catalog
}

func NewRouter(deps Deps, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	showHandler := handlers.NewShowHandler(deps.Roster, deps.Feed)
	votingHandler := handlers.NewVotingHandler(deps.Catalog)

	// Per-client routes resolve the session cookie first
	withSession := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithSession(deps.Sessions, cfg.SessionSecret, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Board and voting
	mux.HandleFunc("GET /contestants", withSession(showHandler.GetBoard))
	mux.HandleFunc("POST /contestants/{id}/vote", withSession(votingHandler.CastVote))
	mux.HandleFunc("GET /catalog", withSession(votingHandler.GetCatalog))

	// Live mode (shared by every client)
	mux.HandleFunc("POST /live/toggle", middleware.WithLogging(showHandler.ToggleLive))
	mux.HandleFunc("PUT /live", middleware.WithLogging(showHandler.SetLive))

	// Reset and error slot
	mux.HandleFunc("POST /reset", withSession(showHandler.Reset))
	mux.HandleFunc("GET /error", withSession(showHandler.GetError))
	mux.HandleFunc("DELETE /error", withSession(showHandler.ClearError))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("live-vote API v1"))
	})

	return mux
}
