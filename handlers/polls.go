// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/quickly-polls/auth"
	"github.com/danielhkuo/quickly-polls/cliparse"
	"github.com/danielhkuo/quickly-polls/middleware"
	"github.com/danielhkuo/quickly-polls/models"
	"github.com/danielhkuo/quickly-polls/store"
	"github.com/danielhkuo/quickly-polls/views"
)

type PollsHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	views *views.Renderer
	now   func() time.Time
}

func NewPollsHandler(db *sql.DB, cfg cliparse.Config, renderer *views.Renderer) *PollsHandler {
	return &PollsHandler{db: db, cfg: cfg, views: renderer, now: time.Now}
}

// Index handles GET /
func (h *PollsHandler) Index(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	questions, err := store.PublishedQuestions(r.Context(), h.db, now)
	if err != nil {
		h.serverError(w, r, "failed to list questions", err)
		return
	}

	h.render(w, r, http.StatusOK, views.PageIndex, models.IndexPage{
		Questions: questions,
		Now:       now,
	})
}

// Detail handles GET /{question_id}/
func (h *PollsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	questionID, ok := parseID(r.PathValue("question_id"))
	if !ok {
		h.notFound(w, r)
		return
	}

	now := h.now()
	question, err := store.PublishedQuestion(r.Context(), h.db, questionID, now)
	if errors.Is(err, store.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, "failed to load question", err)
		return
	}

	h.renderDetail(w, r, question, "", now)
}

// Vote handles POST /{question_id}/vote/
// Form field "choice" carries the choice ID.
func (h *PollsHandler) Vote(w http.ResponseWriter, r *http.Request) {
	questionID, ok := parseID(r.PathValue("question_id"))
	if !ok {
		h.notFound(w, r)
		return
	}

	now := h.now()
	question, err := store.PublishedQuestion(r.Context(), h.db, questionID, now)
	if errors.Is(err, store.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, "failed to load question", err)
		return
	}

	choiceID, ok := parseID(r.PostFormValue("choice"))
	if !ok {
		h.renderDetail(w, r, question, models.ErrNoChoiceSelected, now)
		return
	}

	// Publication was checked above
	err = store.IncrementVote(r.Context(), h.db, questionID, choiceID)
	switch {
	case errors.Is(err, store.ErrInvalidChoice):
		h.renderDetail(w, r, question, models.ErrNoChoiceSelected, now)
		return
	case err != nil:
		h.serverError(w, r, "failed to record vote", err)
		return
	}

	middleware.Logger(r.Context()).Info("vote recorded",
		"question_id", questionID,
		"choice_id", choiceID,
		"voter", auth.HashIP(middleware.GetClientIP(r), h.cfg.CSRFSecret),
	)

	// Redirect so a refresh does not submit the vote twice
	http.Redirect(w, r, resultsPath(questionID), http.StatusFound)
}

// Results handles GET /{question_id}/results/
func (h *PollsHandler) Results(w http.ResponseWriter, r *http.Request) {
	questionID, ok := parseID(r.PathValue("question_id"))
	if !ok {
		h.notFound(w, r)
		return
	}

	now := h.now()
	question, err := store.PublishedQuestion(r.Context(), h.db, questionID, now)
	if errors.Is(err, store.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, "failed to load question", err)
		return
	}

	h.render(w, r, http.StatusOK, views.PageResults, models.ResultsPage{
		Question: question,
		Now:      now,
	})
}

func (h *PollsHandler) renderDetail(w http.ResponseWriter, r *http.Request, question models.QuestionWithChoices, errorMessage string, now time.Time) {
	token, err := middleware.CSRFToken(w, r, h.cfg.CSRFSecret)
	if err != nil {
		h.serverError(w, r, "failed to issue form token", err)
		return
	}

	h.render(w, r, http.StatusOK, views.PageDetail, models.DetailPage{
		Question:     question,
		ErrorMessage: errorMessage,
		CSRFToken:    token,
		Now:          now,
	})
}

func (h *PollsHandler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, views.PageNotFound, models.NotFoundPage{
		Message: "Question does not exist",
	})
}

func (h *PollsHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	if err := h.views.Render(w, status, page, data); err != nil {
		middleware.Logger(r.Context()).Error("failed to render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *PollsHandler) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	middleware.Logger(r.Context()).Error(msg, "path", r.URL.Path, "error", err)
	http.Error(w, "Database error", http.StatusInternalServerError)
}

// parseID accepts positive decimal identifiers only
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func resultsPath(questionID int64) string {
	return fmt.Sprintf("/%d/results/", questionID)
}
