// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and admin seeding.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - users: Accounts with bcrypt password hash and admin flag
  - polls: Question plus JSON-encoded ordered option list
  - votes: One row per (poll, user) with the chosen option index

# Relationships

	users 1──* polls
	polls 1──* votes
	users 1──* votes

All foreign keys use ON DELETE CASCADE, so deleting a poll removes its votes.

# Constraints

The UNIQUE (poll_id, user_id) constraint on votes is the authoritative
single-vote-per-user guard; application-level duplicate checks exist only to
produce a friendly error before the insert races.

# Admin Seeding

SeedAdmin creates an admin account from configuration at startup:

	if err := db.SeedAdmin(conn, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal(err)
	}

A no-op when the account already exists or no credentials are configured.
*/
package db
