// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/webmaster254/alx-polly/models"
)

// Service implements the business rules over the store. Every operation
// receives the acting user explicitly; there is no ambient identity state.
type Service struct {
	db *sql.DB
}

func New(db *sql.DB) *Service {
	return &Service{db: db}
}

// encodeOptions serializes an option list for the JSONB column
func encodeOptions(options []string) ([]byte, error) {
	raw, err := json.Marshal(options)
	if err != nil {
		return nil, fmt.Errorf("failed to encode options: %w", err)
	}
	return raw, nil
}

// decodeOptions restores the ordered option list from the JSONB column
func decodeOptions(raw []byte) ([]string, error) {
	var options []string
	if err := json.Unmarshal(raw, &options); err != nil {
		return nil, fmt.Errorf("failed to decode options: %w", err)
	}
	return options, nil
}

// fetchPoll loads a poll row, mapping a missing row to ErrNotFound
func (s *Service) fetchPoll(ctx context.Context, pollID string) (*models.Poll, error) {
	var poll models.Poll
	var raw []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, question, options, created_at, updated_at
		FROM polls
		WHERE id = $1
	`, pollID).Scan(&poll.ID, &poll.UserID, &poll.Question, &raw, &poll.CreatedAt, &poll.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query poll: %w", err)
	}

	poll.Options, err = decodeOptions(raw)
	if err != nil {
		return nil, err
	}

	return &poll, nil
}

// tally returns per-option vote counts and the total for a poll
func (s *Service) tally(ctx context.Context, pollID string, numOptions int) ([]int, int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT option_index, COUNT(*)
		FROM votes
		WHERE poll_id = $1
		GROUP BY option_index
	`, pollID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	counts := make([]int, numOptions)
	total := 0
	for rows.Next() {
		var index, count int
		if err := rows.Scan(&index, &count); err != nil {
			return nil, 0, fmt.Errorf("failed to scan vote count: %w", err)
		}
		// Votes on options removed by a later edit are excluded entirely,
		// keeping the per-option counts and the total consistent.
		if index >= 0 && index < numOptions {
			counts[index] = count
			total += count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read vote counts: %w", err)
	}

	return counts, total, nil
}

// view annotates a poll with permission flags and tallies for a viewer.
// viewer may be nil (anonymous); both flags are then false.
func (s *Service) view(ctx context.Context, poll *models.Poll, viewer *models.User) (*models.PollView, error) {
	counts, total, err := s.tally(ctx, poll.ID, len(poll.Options))
	if err != nil {
		return nil, err
	}

	pv := &models.PollView{
		Poll:       *poll,
		Counts:     counts,
		TotalVotes: total,
	}

	if viewer != nil {
		pv.CanEdit = viewer.ID == poll.UserID
		pv.CanDelete = viewer.ID == poll.UserID || viewer.IsAdmin

		vote, err := s.MyVote(ctx, viewer, poll.ID)
		if err != nil {
			return nil, err
		}
		if vote != nil {
			pv.MyVote = &vote.OptionIndex
		}
	}

	return pv, nil
}
