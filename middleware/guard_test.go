// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/webmaster254/alx-polly/testutil"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestGuardPublicPaths(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	guard := NewGuard(conn, testutil.NewTestSessions())
	protected := guard.Protect(okHandler())

	// Anonymous requests to public paths pass straight through
	paths := []string{
		"/",
		"/login",
		"/register",
		"/static/style.css",
		"/api/polls/abc/results",
		"/health",
	}
	for _, path := range paths {
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200 for anonymous request, got %d", path, w.Code)
		}
	}
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	guard := NewGuard(conn, testutil.NewTestSessions())
	protected := guard.Protect(okHandler())

	w := httptest.NewRecorder()
	protected.ServeHTTP(w, httptest.NewRequest("GET", "/polls/abc/edit", nil))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303 redirect, got %d", w.Code)
	}
	location := w.Header().Get("Location")
	if location != "/login?next=%2Fpolls%2Fabc%2Fedit" {
		t.Errorf("Expected login redirect preserving destination, got %q", location)
	}
}

func TestGuardAllowsAuthenticatedUser(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	guard := NewGuard(conn, testutil.NewTestSessions())
	protected := guard.Protect(okHandler())
	user := testutil.CreateTestUser(t, conn, "user@example.com", false)

	r := httptest.NewRequest("GET", "/polls", nil)
	r.AddCookie(testutil.SessionCookie(t, user))
	w := httptest.NewRecorder()
	protected.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for authenticated request, got %d", w.Code)
	}
}

func TestGuardAdminRoutes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	guard := NewGuard(conn, testutil.NewTestSessions())
	protected := guard.Protect(okHandler())
	user := testutil.CreateTestUser(t, conn, "user@example.com", false)
	admin := testutil.CreateTestUser(t, conn, "admin@example.com", true)

	// Anonymous: redirected to login
	w := httptest.NewRecorder()
	protected.ServeHTTP(w, httptest.NewRequest("GET", "/admin/polls", nil))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303 for anonymous admin request, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login?next=%2Fadmin%2Fpolls" {
		t.Errorf("Expected login redirect, got %q", loc)
	}

	// Logged in but not admin: bounced to the poll listing
	r := httptest.NewRequest("GET", "/admin/polls", nil)
	r.AddCookie(testutil.SessionCookie(t, user))
	w = httptest.NewRecorder()
	protected.ServeHTTP(w, r)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303 for non-admin request, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/polls?error=forbidden" {
		t.Errorf("Expected forbidden redirect, got %q", loc)
	}

	// Admin: passes
	r = httptest.NewRequest("GET", "/admin/polls", nil)
	r.AddCookie(testutil.SessionCookie(t, admin))
	w = httptest.NewRecorder()
	protected.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for admin request, got %d", w.Code)
	}
}

func TestGuardAdminChecksUserRow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	guard := NewGuard(conn, testutil.NewTestSessions())
	protected := guard.Protect(okHandler())
	admin := testutil.CreateTestUser(t, conn, "admin@example.com", true)
	cookie := testutil.SessionCookie(t, admin)

	// Revoke the flag after the cookie was issued: the guard must follow
	// the row, not the stale claims.
	if _, err := conn.Exec(`UPDATE users SET is_admin = FALSE WHERE id = $1`, admin.ID); err != nil {
		t.Fatalf("Failed to revoke admin: %v", err)
	}

	r := httptest.NewRequest("GET", "/admin/polls", nil)
	r.AddCookie(cookie)
	w := httptest.NewRecorder()
	protected.ServeHTTP(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303 after revocation, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/polls?error=forbidden" {
		t.Errorf("Expected forbidden redirect, got %q", loc)
	}
}
