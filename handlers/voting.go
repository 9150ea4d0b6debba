// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/live-vote/middleware"
	"github.com/danielhkuo/live-vote/models"
)

// Catalog is the remote contestant listing
type Catalog interface {
	FetchContestants(ctx context.Context) ([]models.Contestant, *models.VotingError)
}

type VotingHandler struct {
	catalog Catalog
}

func NewVotingHandler(catalog Catalog) *VotingHandler {
	return &VotingHandler{catalog: catalog}
}

// statusFor maps a voting error type to an HTTP status
func statusFor(verr *models.VotingError) int {
	switch verr.Type {
	case models.ErrorDuplicate:
		return http.StatusConflict
	case models.ErrorValidation:
		return http.StatusBadRequest
	case models.ErrorNetwork:
		return http.StatusBadGateway
	case models.ErrorServer:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// CastVote handles POST /contestants/{id}/vote
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	contestantID := r.PathValue("id")
	if contestantID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	sess := requireSession(w, r)
	if sess == nil {
		return
	}

	if verr := sess.Voting.Cast(context.WithoutCancel(r.Context()), contestantID); verr != nil {
		middleware.VotingErrorResponse(w, statusFor(verr), verr)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{Success: true})
}

// GetCatalog handles GET /catalog
func (h *VotingHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	contestants, verr := h.catalog.FetchContestants(r.Context())
	if verr != nil {
		slog.Warn("catalog fetch failed", "type", verr.Type, "reason", verr.Message)
		if sess := middleware.SessionFrom(r.Context()); sess != nil {
			sess.Sink.Show(verr)
		}
		middleware.VotingErrorResponse(w, statusFor(verr), verr)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CatalogResponse{Contestants: contestants})
}
