// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/webmaster254/alx-polly/models"
)

// SessionCookie is the name of the HttpOnly cookie carrying the session token
const SessionCookie = "polly_session"

// SessionTTL is how long an issued session stays valid
const SessionTTL = 72 * time.Hour

// SessionClaims is the payload of a signed session token
type SessionClaims struct {
	Email string `json:"email"`
	Admin bool   `json:"admin"`
	jwt.RegisteredClaims
}

// Sessions issues and validates signed session tokens
type Sessions struct {
	secret []byte
}

func NewSessions(secret string) *Sessions {
	return &Sessions{secret: []byte(secret)}
}

// Issue creates a signed session token for the given user
func (s *Sessions) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Email: user.Email,
		Admin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse validates a session token and returns its claims
func (s *Sessions) Parse(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// SetCookie attaches the session token to the response
func (s *Sessions) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie removes the session cookie
func (s *Sessions) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// CurrentSession returns the claims of the request's session cookie, or nil
// when no valid session is present. Never returns an error for the
// "not logged in" case.
func (s *Sessions) CurrentSession(r *http.Request) *SessionClaims {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}

	claims, err := s.Parse(cookie.Value)
	if err != nil {
		return nil
	}
	return claims
}

// CurrentUser resolves the request's session to a user row. Returns (nil, nil)
// when there is no valid session or the account no longer exists; an error is
// returned only for store failures.
func (s *Sessions) CurrentUser(db *sql.DB, r *http.Request) (*models.User, error) {
	claims := s.CurrentSession(r)
	if claims == nil {
		return nil, nil
	}

	var user models.User
	err := db.QueryRowContext(r.Context(), `
		SELECT id, email, password_hash, is_admin, created_at
		FROM users
		WHERE id = $1
	`, claims.Subject).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt)

	if err == sql.ErrNoRows {
		// Account deleted after the session was issued
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
