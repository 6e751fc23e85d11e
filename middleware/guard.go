// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"database/sql"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/webmaster254/alx-polly/auth"
)

// Prefixes reachable without a session. The JSON API under /api does its own
// per-handler auth checks, matching how the handlers are written.
var publicPrefixes = []string{
	"/login",
	"/register",
	"/auth",
	"/static",
	"/api",
	"/health",
}

const adminPrefix = "/admin"

// Guard is the pre-render request interceptor. It enforces the coarse
// authentication and role redirects for page routes; ownership checks stay
// inside the services because the guard cannot see poll ownership.
type Guard struct {
	db       *sql.DB
	sessions *auth.Sessions
}

func NewGuard(db *sql.DB, sessions *auth.Sessions) *Guard {
	return &Guard{db: db, sessions: sessions}
}

// Protect wraps a handler with the route guard. Evaluated once per request:
//
//   - admin prefix: no identity → login (preserving the destination),
//     identity without the admin flag → poll listing with an error indicator
//   - any other non-public path: no identity → login
//   - otherwise the request proceeds unmodified
func (g *Guard) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if strings.HasPrefix(path, adminPrefix) {
			// Admin routes need the flag from the user row, not just a cookie
			user, err := g.sessions.CurrentUser(g.db, r)
			if err != nil {
				slog.Error("failed to resolve session user", "error", err)
				http.Error(w, "Something went wrong", http.StatusInternalServerError)
				return
			}
			if user == nil {
				redirectToLogin(w, r)
				return
			}
			if !user.IsAdmin {
				http.Redirect(w, r, "/polls?error=forbidden", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		if !isPublicPath(path) && g.sessions.CurrentSession(r) == nil {
			redirectToLogin(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isPublicPath(path string) bool {
	if path == "/" {
		return true
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	next := url.QueryEscape(r.URL.RequestURI())
	http.Redirect(w, r, "/login?next="+next, http.StatusSeeOther)
}
