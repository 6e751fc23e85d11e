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

type AdminHandler struct {
	db       *sql.DB
	svc      *service.Service
	sessions *auth.Sessions
}

func NewAdminHandler(db *sql.DB, svc *service.Service, sessions *auth.Sessions) *AdminHandler {
	return &AdminHandler{db: db, svc: svc, sessions: sessions}
}

// ListAll handles GET /api/admin/polls
// Returns every poll with owner emails; no ownership filter
func (h *AdminHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	actor, err := h.sessions.CurrentUser(h.db, r)
	if err != nil {
		slog.Error("failed to resolve session user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	polls, err := h.svc.ListAllPolls(r.Context(), actor)
	if err != nil {
		ServiceErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollListResponse{Polls: polls})
}

// Delete handles DELETE /api/admin/polls/{id}
// Same service operation as the owner path; the admin flag authorizes it
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.DeletePoll(r.Context(), actor, pollID); err != nil {
		ServiceErrorResponse(w, err)
		return
	}

	slog.Info("poll deleted by admin", "poll_id", pollID)

	middleware.NoStore(w)
	w.WriteHeader(http.StatusNoContent)
}
