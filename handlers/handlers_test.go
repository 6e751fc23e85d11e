// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"testing"

	"github.com/webmaster254/alx-polly/auth"
	"github.com/webmaster254/alx-polly/service"
	"github.com/webmaster254/alx-polly/testutil"
)

// testDeps bundles the shared fixtures for handler tests
type testDeps struct {
	conn     *sql.DB
	svc      *service.Service
	sessions *auth.Sessions
}

func setupDeps(t *testing.T) *testDeps {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	return &testDeps{
		conn:     conn,
		svc:      service.New(conn),
		sessions: testutil.NewTestSessions(),
	}
}

func (d *testDeps) Close() {
	d.conn.Close()
}
