// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for Quickly Polls.

# Handler Types

  - PollsHandler: HTML pages (list, detail, vote, results)
  - APIHandler: the same operations as JSON
  - Health: database liveness check

Handlers are created via constructor functions:

	pollsHandler := handlers.NewPollsHandler(db, cfg, renderer)
	apiHandler := handlers.NewAPIHandler(db)

Each handler reads the clock once per request and passes that time to
the store, so a request sees one consistent notion of "published".

# Pages

	GET  /                        → Index (published questions, newest first)
	GET  /{question_id}/          → Detail (question and choices, vote form)
	POST /{question_id}/vote/     → Vote
	GET  /{question_id}/results/  → Results (tallies)

Unknown or unpublished questions render the 404 page.

# Voting

Vote reads the "choice" form field. A missing, malformed or foreign
choice re-renders the detail page with "You didn't select a choice." and
status 200; nothing is counted. A valid choice is incremented and the
browser is redirected (302) to the results page, so refreshing does not
vote again. The vote form carries a CSRF token checked by
middleware.RequireCSRF.

# JSON API

	GET  /api/questions                        → ListQuestions (?limit=n)
	GET  /api/questions/{question_id}          → GetQuestion
	GET  /api/questions/{question_id}/results  → GetResults
	POST /api/questions/{question_id}/vote     → Vote {"choice_id": n}

Invalid choices answer 400 instead of re-rendering a page.
*/
package handlers
