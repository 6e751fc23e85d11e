// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package web renders the server-side pages.

# Pages

PageHandler serves the HTML surface:

	GET /            → Home
	GET /login       → LoginPage (redirects to /polls when logged in)
	GET /register    → RegisterPage
	GET /polls       → Dashboard (own polls with edit/delete)
	GET /polls/new   → NewPollPage
	GET /polls/{id}  → PollDetailPage (vote form + results)
	GET /polls/{id}/edit → EditPollPage (owner only)
	GET /admin/polls → AdminPollsPage (all polls, admin only)

Pages are thin consumers of the service layer and carry no business logic of
their own; mutations go through the JSON API via the scripts in static/app.js.

# Templates

Templates are embedded with go:embed and parsed once at startup. Helper
functions:

  - timeago: humanized relative timestamps (go-humanize)
  - pct: integer percentage for result bars
  - deref: pointer-safe option index comparison

# Static Assets

StaticFS exposes the embedded static/ directory (stylesheet and form
scripts) for the /static/ route.
*/
package web
