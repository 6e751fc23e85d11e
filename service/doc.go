// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package service implements the business rules over the store.

# Services

One Service struct carries the three operation groups:

  - Poll mutation: CreatePoll, UpdatePoll, DeletePoll
  - Voting: Vote, MyVote
  - Queries: GetPoll, ListOwnPolls, ListAllPolls

Every operation takes the acting user as an explicit parameter; a nil actor
means "not logged in". There is no ambient identity state.

# Authorization Rules

  - Create: any authenticated user; the poll is owned by the actor
  - Update: owner only (admins get no override for editing)
  - Delete: owner or admin
  - Vote: any authenticated user, once per poll
  - GetPoll: anyone, including anonymous viewers
  - ListOwnPolls: the actor's polls only
  - ListAllPolls: admin only

# Error Taxonomy

Callers branch with errors.Is / errors.As:

  - *ValidationError: malformed question/options/vote index (HTTP 400)
  - ErrUnauthorized: no acting user (HTTP 401)
  - ErrForbidden: authenticated but not entitled (HTTP 403)
  - ErrNotFound: referenced poll absent (HTTP 404)
  - ErrDuplicateVote: second vote on the same poll (HTTP 409)

Anything else is a wrapped store error and maps to HTTP 500.

# Single Vote Guarantee

Vote checks for an existing row first only to produce a friendly message.
The insert itself uses ON CONFLICT (poll_id, user_id) DO NOTHING against the
unique constraint, so two concurrent votes from the same user can both pass
the check but only one row ever lands; the loser sees ErrDuplicateVote.
*/
package service
