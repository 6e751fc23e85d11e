// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/webmaster254/alx-polly/testutil"
)

func TestVote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	svc := New(db)
	owner := testutil.CreateTestUser(t, db, "owner@example.com", false)
	voter := testutil.CreateTestUser(t, db, "voter@example.com", false)
	poll := testutil.CreateTestPoll(t, db, owner, "Best color?", []string{"Red", "Blue"})
	ctx := context.Background()

	vote, err := svc.Vote(ctx, voter, poll.ID, 0)
	if err != nil {
		t.Fatalf("Vote failed: %v", err)
	}
	if vote.OptionIndex != 0 || vote.PollID != poll.ID {
		t.Errorf("Unexpected vote record: %+v", vote)
	}
}

func TestVoteRequiresAuth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	svc := New(db)
	owner := testutil.CreateTestUser(t, db, "owner@example.com", false)
	poll := testutil.CreateTestPoll(t, db, owner, "Best color?", []string{"Red", "Blue"})

	_, err := svc.Vote(context.Background(), nil, poll.ID, 0)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("Expected ErrUnauthorized, got %v", err)
	}
}

func TestVotePollNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	svc := New(db)
	voter := testutil.CreateTestUser(t, db, "voter@example.com", false)

	_, err := svc.Vote(context.Background(), voter, "missing-id", 0)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestVoteInvalidOptionIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	svc := New(db)
	owner := testutil.CreateTestUser(t, db, "owner@example.com", false)
	voter := testutil.CreateTestUser(t, db, "voter@example.com", false)
	poll := testutil.CreateTestPoll(t, db, owner, "Best color?", []string{"Red", "Blue"})
	ctx := context.Background()

	for _, index := range []int{-1, 2, 99} {
		_, err := svc.Vote(ctx, voter, poll.ID, index)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("index %d: expected ValidationError, got %v", index, err)
		}
	}

	// No rows were inserted by the rejected votes
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM votes WHERE poll_id = $1`, poll.ID).Scan(&count); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected no vote rows, found %d", count)
	}
}

func TestVoteDuplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	svc := New(db)
	owner := testutil.CreateTestUser(t, db, "owner@example.com", false)
	voter := testutil.CreateTestUser(t, db, "voter@example.com", false)
	poll := testutil.CreateTestPoll(t, db, owner, "Best color?", []string{"Red", "Blue"})
	ctx := context.Background()

	if _, err := svc.Vote(ctx, voter, poll.ID, 0); err != nil {
		t.Fatalf("First vote failed: %v", err)
	}

	// A second vote fails regardless of the chosen option
	_, err := svc.Vote(ctx, voter, poll.ID, 1)
	if !errors.Is(err, ErrDuplicateVote) {
		t.Fatalf("Expected ErrDuplicateVote, got %v", err)
	}

	// Exactly one row for (poll, user), still the original option
	var count int
	if err := db.QueryRow(`
		SELECT COUNT(*) FROM votes WHERE poll_id = $1 AND user_id = $2
	`, poll.ID, voter.ID).Scan(&count); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly one vote row, found %d", count)
	}

	view, err := svc.GetPoll(ctx, poll.ID, nil)
	if err != nil {
		t.Fatalf("GetPoll failed: %v", err)
	}
	if view.Counts[0] != 1 || view.Counts[1] != 0 {
		t.Errorf("Expected tallies [1 0], got %v", view.Counts)
	}
}

func TestVoteConflictOnRace(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	svc := New(db)
	owner := testutil.CreateTestUser(t, db, "owner@example.com", false)
	voter := testutil.CreateTestUser(t, db, "voter@example.com", false)
	poll := testutil.CreateTestPoll(t, db, owner, "Best color?", []string{"Red", "Blue"})

	// Simulate a racing insert that landed between the lookup and the
	// insert: the ON CONFLICT clause must report a duplicate instead of
	// a constraint failure.
	if _, err := svc.Vote(context.Background(), voter, poll.ID, 0); err != nil {
		t.Fatalf("Vote failed: %v", err)
	}

	res, err := db.Exec(`
		INSERT INTO votes (id, poll_id, user_id, option_index, created_at)
		VALUES ('race-id', $1, $2, 1, NOW())
		ON CONFLICT (poll_id, user_id) DO NOTHING
	`, poll.ID, voter.ID)
	if err != nil {
		t.Fatalf("Conflicting insert errored: %v", err)
	}
	affected, _ := res.RowsAffected()
	if affected != 0 {
		t.Errorf("Expected conflicting insert to affect 0 rows, got %d", affected)
	}
}

func TestMyVote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	svc := New(db)
	owner := testutil.CreateTestUser(t, db, "owner@example.com", false)
	voter := testutil.CreateTestUser(t, db, "voter@example.com", false)
	poll := testutil.CreateTestPoll(t, db, owner, "Best color?", []string{"Red", "Blue"})
	ctx := context.Background()

	vote, err := svc.MyVote(ctx, voter, poll.ID)
	if err != nil {
		t.Fatalf("MyVote failed: %v", err)
	}
	if vote != nil {
		t.Errorf("Expected no vote yet, got %+v", vote)
	}

	if _, err := svc.Vote(ctx, voter, poll.ID, 1); err != nil {
		t.Fatalf("Vote failed: %v", err)
	}

	vote, err = svc.MyVote(ctx, voter, poll.ID)
	if err != nil {
		t.Fatalf("MyVote failed: %v", err)
	}
	if vote == nil || vote.OptionIndex != 1 {
		t.Errorf("Expected vote on option 1, got %+v", vote)
	}
}
