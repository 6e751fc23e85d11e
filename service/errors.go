// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import "errors"

var (
	// ErrUnauthorized means no acting user was supplied (not logged in)
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden means the acting user is authenticated but not entitled
	ErrForbidden = errors.New("not allowed")

	// ErrNotFound means the referenced poll does not exist
	ErrNotFound = errors.New("poll not found")

	// ErrDuplicateVote means the acting user already voted on this poll
	ErrDuplicateVote = errors.New("you have already voted on this poll")
)

// ValidationError reports user-correctable input problems. The message is
// safe to show inline in a form.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(msg string) error {
	return &ValidationError{Msg: msg}
}
