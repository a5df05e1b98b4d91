// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/quickly-polls/middleware"
	"github.com/danielhkuo/quickly-polls/models"
	"github.com/danielhkuo/quickly-polls/store"
)

type APIHandler struct {
	db  *sql.DB
	now func() time.Time
}

func NewAPIHandler(db *sql.DB) *APIHandler {
	return &APIHandler{db: db, now: time.Now}
}

// ListQuestions handles GET /api/questions
// Optional ?limit=n keeps only the n most recent questions.
func (h *APIHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	questions, err := store.LatestQuestions(r.Context(), h.db, h.now(), limit)
	if err != nil {
		middleware.Logger(r.Context()).Error("failed to list questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, questions)
}

// GetQuestion handles GET /api/questions/{question_id}
func (h *APIHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	question, ok := h.loadQuestion(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, question)
}

// GetResults handles GET /api/questions/{question_id}/results
func (h *APIHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	question, ok := h.loadQuestion(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, newResultsResponse(question))
}

// Vote handles POST /api/questions/{question_id}/vote
// Responds with the updated results.
func (h *APIHandler) Vote(w http.ResponseWriter, r *http.Request) {
	// Unknown questions are 404 whatever the body holds
	question, ok := h.loadQuestion(w, r)
	if !ok {
		return
	}
	questionID := question.Question.ID

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var choiceID int64
	if req.ChoiceID != nil {
		choiceID = *req.ChoiceID
	}

	err := store.IncrementVote(r.Context(), h.db, questionID, choiceID)
	switch {
	case errors.Is(err, store.ErrInvalidChoice):
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrNoChoiceSelected)
		return
	case err != nil:
		middleware.Logger(r.Context()).Error("failed to record vote", "question_id", questionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.Logger(r.Context()).Info("vote recorded", "question_id", questionID, "choice_id", choiceID, "api", true)

	choices, err := store.Choices(r.Context(), h.db, questionID)
	if err != nil {
		middleware.Logger(r.Context()).Error("failed to reload choices", "question_id", questionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	question.Choices = choices

	middleware.JSONResponse(w, http.StatusOK, newResultsResponse(question))
}

// loadQuestion writes the error response itself and reports whether to continue
func (h *APIHandler) loadQuestion(w http.ResponseWriter, r *http.Request) (models.QuestionWithChoices, bool) {
	questionID, ok := parseID(r.PathValue("question_id"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return models.QuestionWithChoices{}, false
	}

	question, err := store.PublishedQuestion(r.Context(), h.db, questionID, h.now())
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return models.QuestionWithChoices{}, false
	}
	if err != nil {
		middleware.Logger(r.Context()).Error("failed to load question", "question_id", questionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.QuestionWithChoices{}, false
	}

	return question, true
}

func newResultsResponse(q models.QuestionWithChoices) models.ResultsResponse {
	choices := make([]models.ChoiceResult, 0, len(q.Choices))
	for _, c := range q.Choices {
		choices = append(choices, models.ChoiceResult{Choice: c, Percent: q.Percent(c)})
	}
	return models.ResultsResponse{
		Question:   q.Question,
		Choices:    choices,
		TotalVotes: q.TotalVotes(),
	}
}
