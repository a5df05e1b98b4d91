// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for Quickly Polls.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, renderer)

# Endpoints

Health:

	GET /health

Pages (HTML):

	GET  /                        - Published questions
	GET  /{question_id}/          - Question detail and vote form
	POST /{question_id}/vote/     - Cast a vote (CSRF protected)
	GET  /{question_id}/results/  - Vote tallies

JSON API (CORS enabled):

	GET  /api/questions
	GET  /api/questions/{question_id}
	GET  /api/questions/{question_id}/results
	POST /api/questions/{question_id}/vote

Static:

	GET /static/style.css

Page patterns end in {$}, so /1/ matches Detail but /1/extra does not.
*/
package router
