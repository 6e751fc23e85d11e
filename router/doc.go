// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the application.

# Route Registration

NewRouter creates the full handler chain:

	handler := router.NewRouter(db, cfg)

The returned handler is the ServeMux wrapped by the route guard and CORS.

# Endpoints

Health:

	GET /health

Accounts:

	POST /api/register - Create account (sets session cookie)
	POST /api/login    - Authenticate (sets session cookie)
	POST /api/logout   - Clear session
	GET  /api/me       - Current user

Polls:

	POST   /api/polls      - Create poll
	GET    /api/polls      - Current user's polls
	GET    /api/polls/{id} - Poll with permissions and tallies (public)
	PUT    /api/polls/{id} - Update (owner only)
	DELETE /api/polls/{id} - Delete (owner or admin)

Voting:

	POST /api/polls/{id}/vote    - One vote per user per poll
	GET  /api/polls/{id}/results - Tallies (public)

Moderation (admin flag required):

	GET    /api/admin/polls
	DELETE /api/admin/polls/{id}

Pages:

	GET /            GET /login          GET /register
	GET /polls       GET /polls/new      GET /polls/{id}
	GET /polls/{id}/edit                 GET /admin/polls

Static assets are served from the embedded filesystem under /static/.

# Guard Placement

Page routes sit behind the route guard; /api and /static are public prefixes
where handlers enforce their own auth. See the middleware package.
*/
package router
