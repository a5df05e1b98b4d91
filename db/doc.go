// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open picks the driver from the database type and pings the server:

	conn, err := db.Open(ctx, db.TypePostgres, "postgres://...")
	conn, err := db.Open(ctx, db.TypeSQLite, "file:polls.db")

PostgreSQL uses github.com/lib/pq. SQLite uses modernc.org/sqlite with
foreign keys enabled and a sortable timestamp format.

# Schema Creation

CreateSchema initializes all required tables for the given type:

	if err := db.CreateSchema(ctx, conn, db.TypeSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - question: prompt text and publication date
  - choice: answer text and vote tally

# Relationships

	question 1──* choice

choice.question_id uses ON DELETE CASCADE: deleting a question deletes
its choices.

# Indexes

  - question.pub_date
  - choice.question_id
*/
package db
