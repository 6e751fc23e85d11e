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

type PollHandler struct {
	db       *sql.DB
	svc      *service.Service
	sessions *auth.Sessions
}

func NewPollHandler(db *sql.DB, svc *service.Service, sessions *auth.Sessions) *PollHandler {
	return &PollHandler{db: db, svc: svc, sessions: sessions}
}

// actingUser resolves the request's session, answering 500 on store failure.
// The bool reports whether the caller may continue; a nil user with true
// means "anonymous".
func (h *PollHandler) actingUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, err := h.sessions.CurrentUser(h.db, r)
	if err != nil {
		slog.Error("failed to resolve session user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}
	return user, true
}

// Create handles POST /api/polls
func (h *PollHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actingUser(w, r)
	if !ok {
		return
	}

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := h.svc.CreatePoll(r.Context(), actor, req.Question, req.Options)
	if err != nil {
		ServiceErrorResponse(w, err)
		return
	}

	slog.Info("poll created", "poll_id", poll.ID, "user_id", poll.UserID)

	middleware.NoStore(w)
	middleware.JSONResponse(w, http.StatusCreated, poll)
}

// ListMine handles GET /api/polls
func (h *PollHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actingUser(w, r)
	if !ok {
		return
	}

	polls, err := h.svc.ListOwnPolls(r.Context(), actor)
	if err != nil {
		ServiceErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollListResponse{Polls: polls})
}

// Get handles GET /api/polls/{id}
// Public: anonymous viewers get canEdit=false, canDelete=false
func (h *PollHandler) Get(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	viewer, ok := h.actingUser(w, r)
	if !ok {
		return
	}

	view, err := h.svc.GetPoll(r.Context(), pollID, viewer)
	if err != nil {
		ServiceErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, view)
}

// Update handles PUT /api/polls/{id}
func (h *PollHandler) Update(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	actor, ok := h.actingUser(w, r)
	if !ok {
		return
	}

	var req models.UpdatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := h.svc.UpdatePoll(r.Context(), actor, pollID, req.Question, req.Options)
	if err != nil {
		ServiceErrorResponse(w, err)
		return
	}

	slog.Info("poll updated", "poll_id", poll.ID, "user_id", actor.ID)

	middleware.NoStore(w)
	middleware.JSONResponse(w, http.StatusOK, poll)
}

// Delete handles DELETE /api/polls/{id}
func (h *PollHandler) Delete(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	actor, ok := h.actingUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeletePoll(r.Context(), actor, pollID); err != nil {
		ServiceErrorResponse(w, err)
		return
	}

	slog.Info("poll deleted", "poll_id", pollID, "user_id", actor.ID)

	middleware.NoStore(w)
	w.WriteHeader(http.StatusNoContent)
}
