// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the application.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest / LoginRequest: email, password
  - CreatePollRequest / UpdatePollRequest: question, options
  - VoteRequest: option_index

# Response Types

Types for JSON responses:

  - UserResponse: id, email, is_admin
  - VoteResponse: vote_id, poll_id, option_index
  - PollListResponse: polls
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - User: account record with admin flag (password hash never serialized)
  - Poll: question plus ordered option list, owned by a user
  - Vote: one row per (poll, user) with the chosen option index
  - PollView: poll annotated with viewer permissions and tallies

# Constants

Poll content limits:

	MaxQuestionLen = 500
	MaxOptionLen   = 200
	MinOptions     = 2
	MaxOptions     = 10
*/
package models
