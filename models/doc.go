// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, page and API types.

# Domain Types

  - Question: prompt text and publication date
  - Choice: answer text and vote tally, owned by one Question
  - QuestionWithChoices: a question with its choices eagerly loaded

A question is published once its PubDate is at or before the current
time. Only published questions are reachable through the public pages
and the JSON API.

# Page Types

Data passed to the HTML templates:

  - IndexPage: published questions, most recent first
  - DetailPage: question, choices, CSRF token and optional error message
  - ResultsPage: question with current tallies
  - NotFoundPage: message for the 404 page

# API Types

  - VoteRequest: choice_id
  - ResultsResponse: question, choices with percent, total_votes
  - ErrorResponse: error, message
*/
package models
