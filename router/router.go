// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickly-polls/cliparse"
	"github.com/danielhkuo/quickly-polls/handlers"
	"github.com/danielhkuo/quickly-polls/middleware"
	"github.com/danielhkuo/quickly-polls/views"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, renderer *views.Renderer) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollsHandler := handlers.NewPollsHandler(db, cfg, renderer)
	apiHandler := handlers.NewAPIHandler(db)

	// Health check
	mux.HandleFunc("GET /health", handlers.Health(db))

	// Static assets
	mux.HandleFunc("GET /static/style.css", views.ServeStylesheet)

	// Pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pollsHandler.Index))
	mux.HandleFunc("GET /{question_id}/{$}", middleware.WithLogging(pollsHandler.Detail))
	mux.HandleFunc("POST /{question_id}/vote/{$}", middleware.WithLogging(middleware.RequireCSRF(cfg.CSRFSecret, pollsHandler.Vote)))
	mux.HandleFunc("GET /{question_id}/results/{$}", middleware.WithLogging(pollsHandler.Results))

	// JSON API
	api := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.CORS(h).ServeHTTP)
	}
	mux.HandleFunc("GET /api/questions", api(apiHandler.ListQuestions))
	mux.HandleFunc("GET /api/questions/{question_id}", api(apiHandler.GetQuestion))
	mux.HandleFunc("GET /api/questions/{question_id}/results", api(apiHandler.GetResults))
	mux.HandleFunc("POST /api/questions/{question_id}/vote", api(apiHandler.Vote))
	mux.Handle("OPTIONS /api/", middleware.CORS(http.NotFoundHandler()))

	return mux
}
