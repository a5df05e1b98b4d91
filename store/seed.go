// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type demoQuestion struct {
	text    string
	age     time.Duration
	choices []string
}

var demoQuestions = []demoQuestion{
	{"What is your favorite food?", 48 * time.Hour, []string{"Pizza", "Hamburger", "Tacos"}},
	{"What is your favorite color?", 0, []string{"Blue", "Red"}},
}

// SeedDemo inserts a couple of demo questions when the question table is
// empty. It reports whether anything was inserted. The seed runs in one
// transaction, so a failure leaves the table empty.
func SeedDemo(ctx context.Context, db *sql.DB, now time.Time) (bool, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	n, err := CountQuestions(ctx, tx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	for _, dq := range demoQuestions {
		id, err := CreateQuestion(ctx, tx, dq.text, now.Add(-dq.age))
		if err != nil {
			return false, err
		}
		for _, c := range dq.choices {
			if _, err := AddChoice(ctx, tx, id, c); err != nil {
				return false, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit seed: %w", err)
	}

	return true, nil
}
