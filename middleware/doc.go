// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Route Guard

The guard runs ahead of every page render and is the only unconditional
access-control point:

	guard := middleware.NewGuard(db, sessions)
	handler := guard.Protect(mux)

Unauthenticated requests to protected paths are redirected to /login with the
intended destination preserved in ?next=. The /admin prefix additionally
requires the admin flag on the user row; authenticated non-admins are sent to
/polls?error=forbidden. Public prefixes (/login, /register, /auth, /static,
/api, /health and the root path) pass through untouched.

Ownership and vote checks are re-done inside the services - the guard cannot
see poll ownership.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs method, path, status, remote, and duration_ms on completion.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Cache Control

Mutations mark their responses uncacheable:

	middleware.NoStore(w)

# CORS Middleware

Enable cross-origin requests for API clients:

	server := http.Server{
		Handler: middleware.CORS(handler),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with credentials.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
