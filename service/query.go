// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"fmt"

	"github.com/webmaster254/alx-polly/models"
)

// GetPoll returns a poll annotated for the viewer. Reading a poll is
// unrestricted: viewer may be nil, in which case canEdit and canDelete are
// both false.
func (s *Service) GetPoll(ctx context.Context, pollID string, viewer *models.User) (*models.PollView, error) {
	poll, err := s.fetchPoll(ctx, pollID)
	if err != nil {
		return nil, err
	}

	return s.view(ctx, poll, viewer)
}

// ListOwnPolls returns the acting user's polls, newest first. Owner views
// always carry canEdit and canDelete.
func (s *Service) ListOwnPolls(ctx context.Context, actor *models.User) ([]models.PollView, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}

	polls, err := s.collectPolls(ctx, `
		SELECT id, user_id, question, options, created_at, updated_at
		FROM polls
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, actor.ID)
	if err != nil {
		return nil, err
	}

	views := make([]models.PollView, 0, len(polls))
	for i := range polls {
		pv, err := s.view(ctx, &polls[i], actor)
		if err != nil {
			return nil, err
		}
		views = append(views, *pv)
	}

	return views, nil
}

// ListAllPolls returns every poll, newest first, with owner emails. Admin
// only; there is no ownership filter.
func (s *Service) ListAllPolls(ctx context.Context, actor *models.User) ([]models.PollView, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.user_id, p.question, p.options, p.created_at, p.updated_at, u.email
		FROM polls p
		JOIN users u ON p.user_id = u.id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	type ownedPoll struct {
		poll  models.Poll
		email string
	}
	var owned []ownedPoll
	for rows.Next() {
		var op ownedPoll
		var raw []byte
		if err := rows.Scan(&op.poll.ID, &op.poll.UserID, &op.poll.Question, &raw,
			&op.poll.CreatedAt, &op.poll.UpdatedAt, &op.email); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		if op.poll.Options, err = decodeOptions(raw); err != nil {
			return nil, err
		}
		owned = append(owned, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read polls: %w", err)
	}

	views := make([]models.PollView, 0, len(owned))
	for i := range owned {
		pv, err := s.view(ctx, &owned[i].poll, actor)
		if err != nil {
			return nil, err
		}
		pv.OwnerEmail = owned[i].email
		views = append(views, *pv)
	}

	return views, nil
}

// collectPolls runs a poll query and materializes the rows before any
// follow-up tally queries touch the pool
func (s *Service) collectPolls(ctx context.Context, query string, args ...interface{}) ([]models.Poll, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	var polls []models.Poll
	for rows.Next() {
		var poll models.Poll
		var raw []byte
		if err := rows.Scan(&poll.ID, &poll.UserID, &poll.Question, &raw, &poll.CreatedAt, &poll.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		if poll.Options, err = decodeOptions(raw); err != nil {
			return nil, err
		}
		polls = append(polls, poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read polls: %w", err)
	}

	return polls, nil
}
