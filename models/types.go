// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Validation limits for poll content
const (
	MaxQuestionLen = 500
	MaxOptionLen   = 200
	MinOptions     = 2
	MaxOptions     = 10
)

// Minimum password length for registration
const MinPasswordLen = 8

// Request types

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatePollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type UpdatePollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type VoteRequest struct {
	OptionIndex int `json:"option_index"`
}

// Response types

type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type VoteResponse struct {
	VoteID      string `json:"vote_id"`
	PollID      string `json:"poll_id"`
	OptionIndex int    `json:"option_index"`
}

type PollListResponse struct {
	Polls []PollView `json:"polls"`
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

type Poll struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Question  string    `json:"question"`
	Options   []string  `json:"options"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Vote struct {
	ID          string    `json:"id"`
	PollID      string    `json:"poll_id"`
	UserID      string    `json:"-"` // Never expose in JSON
	OptionIndex int       `json:"option_index"`
	CreatedAt   time.Time `json:"created_at"`
}

// PollView is a poll annotated with per-request permission flags and vote
// tallies. CanEdit and CanDelete are computed against the viewer on every
// request and never persisted.
type PollView struct {
	Poll
	CanEdit    bool   `json:"can_edit"`
	CanDelete  bool   `json:"can_delete"`
	Counts     []int  `json:"counts"`
	TotalVotes int    `json:"total_votes"`
	MyVote     *int   `json:"my_vote,omitempty"`
	OwnerEmail string `json:"owner_email,omitempty"` // Admin listing only
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
