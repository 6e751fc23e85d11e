// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/webmaster254/alx-polly/models"
)

// CreatePoll persists a new poll owned by the acting user. Question and
// options are trimmed and validated per the content rules.
func (s *Service) CreatePoll(ctx context.Context, actor *models.User, question string, options []string) (*models.Poll, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}

	question, options, err := validatePollInput(question, options)
	if err != nil {
		return nil, err
	}

	raw, err := encodeOptions(options)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	poll := &models.Poll{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		Question:  question,
		Options:   options,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO polls (id, user_id, question, options, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, poll.ID, poll.UserID, poll.Question, raw, poll.CreatedAt, poll.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert poll: %w", err)
	}

	return poll, nil
}

// UpdatePoll overwrites a poll's question and options and refreshes the
// updated timestamp. Editing is owner-only; admins get no override here.
func (s *Service) UpdatePoll(ctx context.Context, actor *models.User, pollID, question string, options []string) (*models.Poll, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}

	question, options, err := validatePollInput(question, options)
	if err != nil {
		return nil, err
	}

	poll, err := s.fetchPoll(ctx, pollID)
	if err != nil {
		return nil, err
	}

	if poll.UserID != actor.ID {
		return nil, ErrForbidden
	}

	raw, err := encodeOptions(options)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	_, err = s.db.ExecContext(ctx, `
		UPDATE polls
		SET question = $1, options = $2, updated_at = $3
		WHERE id = $4
	`, question, raw, now, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to update poll: %w", err)
	}

	poll.Question = question
	poll.Options = options
	poll.UpdatedAt = now
	return poll, nil
}

// DeletePoll removes a poll. Allowed for the owner or an admin; dependent
// votes are removed by the store's cascade rule.
func (s *Service) DeletePoll(ctx context.Context, actor *models.User, pollID string) error {
	if actor == nil {
		return ErrUnauthorized
	}

	poll, err := s.fetchPoll(ctx, pollID)
	if err != nil {
		return err
	}

	if poll.UserID != actor.ID && !actor.IsAdmin {
		return ErrForbidden
	}

	_, err = s.db.ExecContext(ctx, `DELETE FROM polls WHERE id = $1`, pollID)
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}

	return nil
}
