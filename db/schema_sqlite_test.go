// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/webmaster254/alx-polly/cliparse"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()

	cfg := cliparse.Config{DatabaseType: "sqlite", DatabaseURL: "file::memory:"}
	conn, err := sql.Open(cfg.DriverName(), cfg.DataSourceName())
	if err != nil {
		t.Fatalf("Failed to open sqlite database: %v", err)
	}
	// A pooled second connection would get its own empty in-memory database
	conn.SetMaxOpenConns(1)

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

func TestSQLiteCascadeDeletesVotes(t *testing.T) {
	conn := openSQLite(t)
	defer conn.Close()

	now := time.Now()
	if _, err := conn.Exec(`
		INSERT INTO users (id, email, password_hash, is_admin, created_at)
		VALUES ('u1', 'user@example.com', 'hash', FALSE, $1)
	`, now); err != nil {
		t.Fatalf("Failed to insert user: %v", err)
	}
	if _, err := conn.Exec(`
		INSERT INTO polls (id, user_id, question, options, created_at, updated_at)
		VALUES ('p1', 'u1', 'Best color?', '["Red","Blue"]', $1, $2)
	`, now, now); err != nil {
		t.Fatalf("Failed to insert poll: %v", err)
	}
	if _, err := conn.Exec(`
		INSERT INTO votes (id, poll_id, user_id, option_index, created_at)
		VALUES ('v1', 'p1', 'u1', 0, $1)
	`, now); err != nil {
		t.Fatalf("Failed to insert vote: %v", err)
	}

	if _, err := conn.Exec(`DELETE FROM polls WHERE id = 'p1'`); err != nil {
		t.Fatalf("Failed to delete poll: %v", err)
	}

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM votes WHERE poll_id = 'p1'`).Scan(&count); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected cascade to remove votes, %d orphan vote rows remain", count)
	}
}

func TestSQLiteRejectsOrphanVote(t *testing.T) {
	conn := openSQLite(t)
	defer conn.Close()

	now := time.Now()
	if _, err := conn.Exec(`
		INSERT INTO users (id, email, password_hash, is_admin, created_at)
		VALUES ('u1', 'user@example.com', 'hash', FALSE, $1)
	`, now); err != nil {
		t.Fatalf("Failed to insert user: %v", err)
	}

	_, err := conn.Exec(`
		INSERT INTO votes (id, poll_id, user_id, option_index, created_at)
		VALUES ('v1', 'missing-poll', 'u1', 0, $1)
	`, now)
	if err == nil {
		t.Error("Expected a foreign key violation for a vote without a poll")
	}
}
