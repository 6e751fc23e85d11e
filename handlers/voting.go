// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/webmaster254/alx-polly/auth"
	"github.com/webmaster254/alx-polly/middleware"
	"github.com/webmaster254/alx-polly/models"
	"github.com/webmaster254/alx-polly/service"
)

type VotingHandler struct {
	db       *sql.DB
	svc      *service.Service
	sessions *auth.Sessions
}

func NewVotingHandler(db *sql.DB, svc *service.Service, sessions *auth.Sessions) *VotingHandler {
	return &VotingHandler{db: db, svc: svc, sessions: sessions}
}

// Vote handles POST /api/polls/{id}/vote
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	actor, err := h.sessions.CurrentUser(h.db, r)
	if err != nil {
		slog.Error("failed to resolve session user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	vote, err := h.svc.Vote(r.Context(), actor, pollID, req.OptionIndex)
	if err != nil {
		ServiceErrorResponse(w, err)
		return
	}

	slog.Info("vote recorded", "poll_id", pollID, "vote_id", vote.ID)

	middleware.NoStore(w)
	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		VoteID:      vote.ID,
		PollID:      vote.PollID,
		OptionIndex: vote.OptionIndex,
	})
}

// Results handles GET /api/polls/{id}/results
// Public: tallies are readable by anyone, authenticated or not
func (h *VotingHandler) Results(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	viewer, err := h.sessions.CurrentUser(h.db, r)
	if err != nil {
		slog.Error("failed to resolve session user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	view, err := h.svc.GetPoll(r.Context(), pollID, viewer)
	if err != nil {
		ServiceErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, view)
}
