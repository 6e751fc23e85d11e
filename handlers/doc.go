// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the JSON API.

# Handler Types

Each handler is a struct with database, service, and session dependencies:

  - UserHandler: Registration, login, logout, current user
  - PollHandler: Poll CRUD and listings
  - VotingHandler: Vote submission and results
  - AdminHandler: Moderation (list all, delete any)

Handlers are created via constructor functions:

	pollHandler := handlers.NewPollHandler(db, svc, sessions)

# Account Flow

	POST /api/register → Register (sets session cookie)
	POST /api/login    → Login (sets session cookie)
	POST /api/logout   → Logout (clears cookie)
	GET  /api/me       → Me

# Poll Lifecycle

	POST   /api/polls      → Create (authenticated)
	GET    /api/polls      → ListMine (authenticated, newest first)
	GET    /api/polls/{id} → Get (public)
	PUT    /api/polls/{id} → Update (owner only)
	DELETE /api/polls/{id} → Delete (owner or admin)

# Voting

	POST /api/polls/{id}/vote    → Vote (authenticated, once per poll)
	GET  /api/polls/{id}/results → Results (public tallies)

# Moderation

	GET    /api/admin/polls      → ListAll (admin only)
	DELETE /api/admin/polls/{id} → Delete (admin only)

# Error Mapping

ServiceErrorResponse translates the service error taxonomy to HTTP statuses:
validation 400, unauthenticated 401, forbidden 403, missing poll 404,
duplicate vote 409, store failure 500 (logged, generic message).
*/
package handlers
