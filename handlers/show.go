// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/live-vote/feed"
	"github.com/danielhkuo/live-vote/middleware"
	"github.com/danielhkuo/live-vote/models"
	"github.com/danielhkuo/live-vote/roster"
	"github.com/danielhkuo/live-vote/session"
)

type ShowHandler struct {
	roster *roster.Store
	sim    *feed.Simulator
}

func NewShowHandler(store *roster.Store, sim *feed.Simulator) *ShowHandler {
	return &ShowHandler{roster: store, sim: sim}
}

// requireSession fetches the session attached by middleware.WithSession
func requireSession(w http.ResponseWriter, r *http.Request) *session.Session {
	s := middleware.SessionFrom(r.Context())
	if s == nil {
		slog.Error("handler reached without a session", "path", r.URL.Path)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Session unavailable")
	}
	return s
}

// GetBoard handles GET /contestants
func (h *ShowHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	sess := requireSession(w, r)
	if sess == nil {
		return
	}

	// Drop ledger entries the roster no longer backs (a removed or zeroed contestant)
	if sess.Voting.IsHydrated() {
		sess.Voting.CleanupStaleVotes(r.Context())
	}

	contestants := h.roster.Snapshot()
	views := make([]models.ContestantView, 0, len(contestants))
	for _, c := range contestants {
		view := models.ContestantView{
			Contestant: c,
			HasVoted:   sess.Voting.HasVotedFor(c.ID),
			IsLoading:  sess.Voting.IsLoadingFor(c.ID),
		}
		if pct, ok := h.sim.TrendingPercentage(c); ok {
			view.TrendingPercentage = &pct
		}
		views = append(views, view)
	}

	total, active := roster.Totals(contestants)

	middleware.JSONResponse(w, http.StatusOK, models.BoardResponse{
		Contestants:       views,
		IsLive:            h.sim.IsLive(),
		IsHydrated:        sess.Voting.IsHydrated(),
		TotalVotes:        total,
		TotalVotesLabel:   humanize.Comma(int64(total)),
		ActiveContestants: active,
		Error:             sess.Sink.Current(),
	})
}

// ToggleLive handles POST /live/toggle
func (h *ShowHandler) ToggleLive(w http.ResponseWriter, r *http.Request) {
	live := h.sim.Toggle()
	slog.Info("live mode toggled", "is_live", live)
	middleware.JSONResponse(w, http.StatusOK, models.LiveResponse{IsLive: live})
}

// SetLive handles PUT /live
func (h *ShowHandler) SetLive(w http.ResponseWriter, r *http.Request) {
	var req models.SetLiveRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.IsLive == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "is_live is required")
		return
	}

	if *req.IsLive {
		h.sim.Enable()
	} else {
		h.sim.Disable()
	}
	slog.Info("live mode set", "is_live", *req.IsLive)
	middleware.JSONResponse(w, http.StatusOK, models.LiveResponse{IsLive: h.sim.IsLive()})
}

// Reset handles POST /reset
func (h *ShowHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sess := requireSession(w, r)
	if sess == nil {
		return
	}

	h.sim.Reset()
	sess.Voting.ResetVotes(r.Context())

	slog.Info("show reset", "session_id", sess.ID)
	w.WriteHeader(http.StatusNoContent)
}

// GetError handles GET /error
func (h *ShowHandler) GetError(w http.ResponseWriter, r *http.Request) {
	sess := requireSession(w, r)
	if sess == nil {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.CurrentErrorResponse{Error: sess.Sink.Current()})
}

// ClearError handles DELETE /error
func (h *ShowHandler) ClearError(w http.ResponseWriter, r *http.Request) {
	sess := requireSession(w, r)
	if sess == nil {
		return
	}
	sess.Sink.Clear()
	w.WriteHeader(http.StatusNoContent)
}
