// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session management.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, password)

CheckPassword returns ErrInvalidCredentials on mismatch so handlers can answer
with the same message for unknown emails and wrong passwords.

# Sessions

Sessions are HS256-signed tokens carried in an HttpOnly cookie:

	sessions := auth.NewSessions(cfg.SessionSecret)
	token, err := sessions.Issue(user)
	sessions.SetCookie(w, token)

Tokens carry the user ID (subject), email, and admin flag, and expire after
72 hours.

# Identity Lookup

Every service call receives the acting user explicitly; handlers resolve it
once per request:

	user, err := sessions.CurrentUser(db, r)

CurrentUser returns (nil, nil) for the "not logged in" case - a missing or
invalid cookie is not an error. The user row is re-read on each lookup so a
revoked account or changed admin flag takes effect immediately.

CurrentSession returns the raw token claims without touching the database,
used by the route guard for cheap authentication checks.
*/
package auth
