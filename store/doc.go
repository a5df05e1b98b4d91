// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store runs all queries against the question and choice tables.

Every query that depends on publication takes the current time as an
argument instead of reading the clock:

	questions, err := store.PublishedQuestions(ctx, db, time.Now())
	q, err := store.PublishedQuestion(ctx, db, id, time.Now())
	err := store.Vote(ctx, db, questionID, choiceID, time.Now())

# Errors

  - ErrNotFound: no question with that id, or its pub_date is after now
  - ErrInvalidChoice: the choice does not belong to the question
  - ErrEmptyText: question or choice text is blank

Database failures are wrapped and returned as-is.

# Voting

Vote increments the tally with a single statement:

	UPDATE choice SET votes = votes + 1 WHERE id = $1 AND question_id = $2

The WHERE clause also checks that the choice belongs to the question, so
no separate read is needed and concurrent votes on one choice all count.

IncrementVote runs that statement alone, for callers that already
loaded the question with PublishedQuestion.

SeedDemo inserts its demo questions in one transaction.
*/
package store
