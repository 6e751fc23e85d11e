// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/webmaster254/alx-polly/models"
)

// Vote records a single vote by the acting user on a poll. The duplicate
// lookup before the insert only exists for a friendly error message; the
// UNIQUE (poll_id, user_id) constraint is the authoritative guard, enforced
// via ON CONFLICT DO NOTHING so a concurrent duplicate can never land.
func (s *Service) Vote(ctx context.Context, actor *models.User, pollID string, optionIndex int) (*models.Vote, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}

	poll, err := s.fetchPoll(ctx, pollID)
	if err != nil {
		return nil, err
	}

	if optionIndex < 0 || optionIndex >= len(poll.Options) {
		return nil, validationErrorf(fmt.Sprintf("option index must be between 0 and %d", len(poll.Options)-1))
	}

	var exists bool
	err = s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM votes WHERE poll_id = $1 AND user_id = $2)
	`, pollID, actor.ID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing vote: %w", err)
	}
	if exists {
		return nil, ErrDuplicateVote
	}

	vote := &models.Vote{
		ID:          uuid.NewString(),
		PollID:      pollID,
		UserID:      actor.ID,
		OptionIndex: optionIndex,
		CreatedAt:   time.Now(),
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO votes (id, poll_id, user_id, option_index, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (poll_id, user_id) DO NOTHING
	`, vote.ID, vote.PollID, vote.UserID, vote.OptionIndex, vote.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert vote: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read insert result: %w", err)
	}
	if affected == 0 {
		// Lost the race between the check and the insert
		return nil, ErrDuplicateVote
	}

	return vote, nil
}

// MyVote returns the acting user's vote on a poll, or nil when none exists
func (s *Service) MyVote(ctx context.Context, actor *models.User, pollID string) (*models.Vote, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}

	var vote models.Vote
	err := s.db.QueryRowContext(ctx, `
		SELECT id, poll_id, user_id, option_index, created_at
		FROM votes
		WHERE poll_id = $1 AND user_id = $2
	`, pollID, actor.ID).Scan(&vote.ID, &vote.PollID, &vote.UserID, &vote.OptionIndex, &vote.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query vote: %w", err)
	}

	return &vote, nil
}
