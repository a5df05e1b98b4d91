// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/quickly-polls/models"
)

var (
	ErrNotFound      = errors.New("question not found")
	ErrInvalidChoice = errors.New("invalid choice")
	ErrEmptyText     = errors.New("text must not be empty")
)

// DBTX is satisfied by *sql.DB, *sql.Tx and *sql.Conn
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PublishedQuestions returns every question with pub_date <= now,
// most recent first.
func PublishedQuestions(ctx context.Context, db DBTX, now time.Time) ([]models.Question, error) {
	return LatestQuestions(ctx, db, now, 0)
}

// LatestQuestions is PublishedQuestions truncated to limit rows.
// A limit <= 0 means no limit.
func LatestQuestions(ctx context.Context, db DBTX, now time.Time, limit int) ([]models.Question, error) {
	query := `
		SELECT id, question_text, pub_date
		FROM question
		WHERE pub_date <= $1
		ORDER BY pub_date DESC, id DESC
	`
	args := []any{now.UTC()}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.QuestionText, &q.PubDate); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.PubDate = q.PubDate.UTC()
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}

	return questions, nil
}

// PublishedQuestion loads a published question together with its choices.
// Returns ErrNotFound if the question does not exist or pub_date is after now.
func PublishedQuestion(ctx context.Context, db DBTX, id int64, now time.Time) (models.QuestionWithChoices, error) {
	q, err := publishedQuestion(ctx, db, id, now)
	if err != nil {
		return models.QuestionWithChoices{}, err
	}

	choices, err := Choices(ctx, db, q.ID)
	if err != nil {
		return models.QuestionWithChoices{}, err
	}

	return models.QuestionWithChoices{Question: q, Choices: choices}, nil
}

func publishedQuestion(ctx context.Context, db DBTX, id int64, now time.Time) (models.Question, error) {
	var q models.Question
	err := db.QueryRowContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		WHERE id = $1 AND pub_date <= $2
	`, id, now.UTC()).Scan(&q.ID, &q.QuestionText, &q.PubDate)

	if err == sql.ErrNoRows {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to query question %d: %w", id, err)
	}

	q.PubDate = q.PubDate.UTC()
	return q, nil
}

// Choices returns the choices of a question ordered by id
func Choices(ctx context.Context, db DBTX, questionID int64) ([]models.Choice, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate choices: %w", err)
	}

	return choices, nil
}

// Vote adds one vote to choiceID of a published question.
//
// Returns ErrNotFound if the question is missing or unpublished, and
// ErrInvalidChoice if choiceID does not belong to the question. The
// increment is a single UPDATE, so concurrent votes are never lost.
func Vote(ctx context.Context, db DBTX, questionID, choiceID int64, now time.Time) error {
	if _, err := publishedQuestion(ctx, db, questionID, now); err != nil {
		return err
	}
	return IncrementVote(ctx, db, questionID, choiceID)
}

// IncrementVote is Vote without the publication check, for callers that
// already loaded the question with PublishedQuestion.
func IncrementVote(ctx context.Context, db DBTX, questionID, choiceID int64) error {
	res, err := db.ExecContext(ctx, `
		UPDATE choice
		SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`, choiceID, questionID)
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read vote result: %w", err)
	}
	if n == 0 {
		return ErrInvalidChoice
	}

	return nil
}

// Administrative operations. The public handlers never call these.

// CreateQuestion inserts a question and returns its id
func CreateQuestion(ctx context.Context, db DBTX, text string, pubDate time.Time) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmptyText
	}

	var id int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO question (question_text, pub_date)
		VALUES ($1, $2)
		RETURNING id
	`, text, pubDate.UTC()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert question: %w", err)
	}

	return id, nil
}

// AddChoice inserts a choice with zero votes and returns its id
func AddChoice(ctx context.Context, db DBTX, questionID int64, text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmptyText
	}

	var id int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO choice (question_id, choice_text, votes)
		VALUES ($1, $2, 0)
		RETURNING id
	`, questionID, text).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert choice: %w", err)
	}

	return id, nil
}

// DeleteQuestion removes a question; its choices go with it
func DeleteQuestion(ctx context.Context, db DBTX, id int64) error {
	res, err := db.ExecContext(ctx, `DELETE FROM question WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// CountQuestions counts all questions, published or not
func CountQuestions(ctx context.Context, db DBTX) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM question`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return n, nil
}
