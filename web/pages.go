// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"database/sql"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/webmaster254/alx-polly/auth"
	"github.com/webmaster254/alx-polly/models"
	"github.com/webmaster254/alx-polly/service"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticFS exposes the embedded static assets rooted at static/
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// PageHandler renders the server-side pages. Pages are thin consumers of the
// services; forms submit to the JSON API via small client scripts.
type PageHandler struct {
	db       *sql.DB
	svc      *service.Service
	sessions *auth.Sessions
	tmpl     *template.Template
}

func NewPageHandler(db *sql.DB, svc *service.Service, sessions *auth.Sessions) *PageHandler {
	funcs := template.FuncMap{
		"timeago": humanize.Time,
		"pct": func(count, total int) int {
			if total == 0 {
				return 0
			}
			return count * 100 / total
		},
		"deref": func(p *int) int {
			if p == nil {
				return -1
			}
			return *p
		},
	}

	tmpl := template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))

	return &PageHandler{db: db, svc: svc, sessions: sessions, tmpl: tmpl}
}

// pageData is the payload every template receives
type pageData struct {
	User  *models.User
	Poll  *models.PollView
	Polls []models.PollView
	Error string
	Next  string
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

func (h *PageHandler) viewer(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, err := h.sessions.CurrentUser(h.db, r)
	if err != nil {
		slog.Error("failed to resolve session user", "error", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return nil, false
	}
	return user, true
}

// errorBanner maps the guard's redirect indicator to a message
func errorBanner(code string) string {
	switch code {
	case "forbidden":
		return "You do not have permission to access that page."
	case "":
		return ""
	default:
		return "Something went wrong."
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	user, ok := h.viewer(w, r)
	if !ok {
		return
	}
	h.render(w, "home.html", pageData{User: user})
}

// LoginPage handles GET /login
func (h *PageHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	user, ok := h.viewer(w, r)
	if !ok {
		return
	}
	if user != nil {
		http.Redirect(w, r, "/polls", http.StatusSeeOther)
		return
	}
	h.render(w, "login.html", pageData{Next: r.URL.Query().Get("next")})
}

// RegisterPage handles GET /register
func (h *PageHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	user, ok := h.viewer(w, r)
	if !ok {
		return
	}
	if user != nil {
		http.Redirect(w, r, "/polls", http.StatusSeeOther)
		return
	}
	h.render(w, "register.html", pageData{})
}

// Dashboard handles GET /polls - the current user's polls
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := h.viewer(w, r)
	if !ok {
		return
	}

	polls, err := h.svc.ListOwnPolls(r.Context(), user)
	if err != nil {
		slog.Error("failed to list polls", "error", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	h.render(w, "dashboard.html", pageData{
		User:  user,
		Polls: polls,
		Error: errorBanner(r.URL.Query().Get("error")),
	})
}

// NewPollPage handles GET /polls/new
func (h *PageHandler) NewPollPage(w http.ResponseWriter, r *http.Request) {
	user, ok := h.viewer(w, r)
	if !ok {
		return
	}
	h.render(w, "poll_new.html", pageData{User: user})
}

// PollDetailPage handles GET /polls/{id} - voting and results
func (h *PageHandler) PollDetailPage(w http.ResponseWriter, r *http.Request) {
	user, ok := h.viewer(w, r)
	if !ok {
		return
	}

	view, err := h.svc.GetPoll(r.Context(), r.PathValue("id"), user)
	if errors.Is(err, service.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to load poll", "error", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	h.render(w, "poll_detail.html", pageData{User: user, Poll: view})
}

// EditPollPage handles GET /polls/{id}/edit - owner only
func (h *PageHandler) EditPollPage(w http.ResponseWriter, r *http.Request) {
	user, ok := h.viewer(w, r)
	if !ok {
		return
	}

	view, err := h.svc.GetPoll(r.Context(), r.PathValue("id"), user)
	if errors.Is(err, service.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to load poll", "error", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	if !view.CanEdit {
		http.Redirect(w, r, "/polls?error=forbidden", http.StatusSeeOther)
		return
	}

	h.render(w, "poll_edit.html", pageData{User: user, Poll: view})
}

// AdminPollsPage handles GET /admin/polls. The route guard has already
// verified the admin flag; the service re-checks anyway.
func (h *PageHandler) AdminPollsPage(w http.ResponseWriter, r *http.Request) {
	user, ok := h.viewer(w, r)
	if !ok {
		return
	}

	polls, err := h.svc.ListAllPolls(r.Context(), user)
	if err != nil {
		slog.Error("failed to list all polls", "error", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	h.render(w, "admin_polls.html", pageData{User: user, Polls: polls})
}
