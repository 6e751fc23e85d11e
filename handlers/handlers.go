// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/webmaster254/alx-polly/middleware"
	"github.com/webmaster254/alx-polly/service"
)

// ServiceErrorResponse maps a service error to its HTTP status. Unexpected
// store errors are logged and answered with a generic message, never a
// stack trace.
func ServiceErrorResponse(w http.ResponseWriter, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		middleware.ErrorResponse(w, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, service.ErrUnauthorized):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "You must be logged in")
	case errors.Is(err, service.ErrForbidden):
		middleware.ErrorResponse(w, http.StatusForbidden, "You are not allowed to do that")
	case errors.Is(err, service.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
	case errors.Is(err, service.ErrDuplicateVote):
		middleware.ErrorResponse(w, http.StatusConflict, "You have already voted on this poll")
	default:
		slog.Error("store operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Something went wrong")
	}
}
