package models

import "time"

// ErrNoChoiceSelected is shown on the detail page when a vote names no valid choice.
const ErrNoChoiceSelected = "You didn't select a choice."

// Domain types

type Question struct {
	ID           int64     `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
}

type Choice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int64  `json:"votes"`
}

type QuestionWithChoices struct {
	Question Question `json:"question"`
	Choices  []Choice `json:"choices"`
}

// TotalVotes sums the tallies of all choices
func (q QuestionWithChoices) TotalVotes() int64 {
	var total int64
	for _, c := range q.Choices {
		total += c.Votes
	}
	return total
}

// Percent returns the share of votes held by c, 0-100.
// A question with no votes yet reports 0 for every choice.
func (q QuestionWithChoices) Percent(c Choice) float64 {
	total := q.TotalVotes()
	if total == 0 {
		return 0
	}
	return float64(c.Votes) * 100 / float64(total)
}

// Page data handed to the templates

type IndexPage struct {
	Questions []Question
	Now       time.Time
}

type DetailPage struct {
	Question     QuestionWithChoices
	ErrorMessage string
	CSRFToken    string
	Now          time.Time
}

type ResultsPage struct {
	Question QuestionWithChoices
	Now      time.Time
}

type NotFoundPage struct {
	Message string
}

// API request types

type VoteRequest struct {
	ChoiceID *int64 `json:"choice_id"`
}

// API response types

type ResultsResponse struct {
	Question   Question       `json:"question"`
	Choices    []ChoiceResult `json:"choices"`
	TotalVotes int64          `json:"total_votes"`
}

type ChoiceResult struct {
	Choice
	Percent float64 `json:"percent"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
