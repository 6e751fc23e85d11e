// Copyright (c) 2025 ALX Polly contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/webmaster254/alx-polly/auth"
	"github.com/webmaster254/alx-polly/cliparse"
	"github.com/webmaster254/alx-polly/handlers"
	"github.com/webmaster254/alx-polly/middleware"
	"github.com/webmaster254/alx-polly/service"
	"github.com/webmaster254/alx-polly/web"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	sessions := auth.NewSessions(cfg.SessionSecret)
	svc := service.New(db)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(db, sessions)
	pollHandler := handlers.NewPollHandler(db, svc, sessions)
	votingHandler := handlers.NewVotingHandler(db, svc, sessions)
	adminHandler := handlers.NewAdminHandler(db, svc, sessions)
	pages := web.NewPageHandler(db, svc, sessions)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts
	mux.HandleFunc("POST /api/register", middleware.WithLogging(userHandler.Register))
	mux.HandleFunc("POST /api/login", middleware.WithLogging(userHandler.Login))
	mux.HandleFunc("POST /api/logout", middleware.WithLogging(userHandler.Logout))
	mux.HandleFunc("GET /api/me", middleware.WithLogging(userHandler.Me))

	// Poll management (per-handler auth)
	mux.HandleFunc("POST /api/polls", middleware.WithLogging(pollHandler.Create))
	mux.HandleFunc("GET /api/polls", middleware.WithLogging(pollHandler.ListMine))
	mux.HandleFunc("GET /api/polls/{id}", middleware.WithLogging(pollHandler.Get))
	mux.HandleFunc("PUT /api/polls/{id}", middleware.WithLogging(pollHandler.Update))
	mux.HandleFunc("DELETE /api/polls/{id}", middleware.WithLogging(pollHandler.Delete))

	// Voting (vote requires auth, results are public)
	mux.HandleFunc("POST /api/polls/{id}/vote", middleware.WithLogging(votingHandler.Vote))
	mux.HandleFunc("GET /api/polls/{id}/results", middleware.WithLogging(votingHandler.Results))

	// Moderation
	mux.HandleFunc("GET /api/admin/polls", middleware.WithLogging(adminHandler.ListAll))
	mux.HandleFunc("DELETE /api/admin/polls/{id}", middleware.WithLogging(adminHandler.Delete))

	// Static assets
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(web.StaticFS())))

	// Pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pages.Home))
	mux.HandleFunc("GET /login", middleware.WithLogging(pages.LoginPage))
	mux.HandleFunc("GET /register", middleware.WithLogging(pages.RegisterPage))
	mux.HandleFunc("GET /polls", middleware.WithLogging(pages.Dashboard))
	mux.HandleFunc("GET /polls/new", middleware.WithLogging(pages.NewPollPage))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pages.PollDetailPage))
	mux.HandleFunc("GET /polls/{id}/edit", middleware.WithLogging(pages.EditPollPage))
	mux.HandleFunc("GET /admin/polls", middleware.WithLogging(pages.AdminPollsPage))

	// The guard runs ahead of every route; CORS wraps the outside for API clients
	guard := middleware.NewGuard(db, sessions)
	return middleware.CORS(guard.Protect(mux))
}
