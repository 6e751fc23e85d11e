// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ALX Polly server.

ALX Polly is a polling web application: users register with email and
password, create polls with 2-10 options, vote once per poll, and view
aggregated results. A dashboard lists a user's own polls with edit and delete
actions; an admin view lists every poll with delete capability.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... SESSION_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3000 -d "postgres://..." --session-secret "..."

# Configuration

Required settings:

  - DATABASE_URL (-d): Database connection string
  - SESSION_SECRET (--session-secret): HMAC secret for session tokens

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - ADMIN_EMAIL / ADMIN_PASSWORD: Admin account seeded at startup

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: JSON API handlers (accounts, polls, voting, moderation)
  - web: server-rendered pages and static assets
  - service: business rules with an explicit acting-user parameter
  - auth: password hashing and cookie sessions
  - middleware: route guard, logging, CORS, JSON helpers
  - router: route definitions using Go 1.22+ routing
  - models: domain and API types
  - db: schema creation and admin seeding
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
