// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"html"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-polls/models"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func sampleQuestion() models.QuestionWithChoices {
	return models.QuestionWithChoices{
		Question: models.Question{ID: 7, QuestionText: "Favorite <color>?", PubDate: now.Add(-72 * time.Hour)},
		Choices: []models.Choice{
			{ID: 1, QuestionID: 7, ChoiceText: "Blue", Votes: 3},
			{ID: 2, QuestionID: 7, ChoiceText: "Red", Votes: 1},
			{ID: 3, QuestionID: 7, ChoiceText: "Green", Votes: 1234},
		},
	}
}

func TestRender(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	q := sampleQuestion()

	tests := []struct {
		name     string
		page     string
		status   int
		data     any
		contains []string
		excludes []string
	}{
		{
			name:   "index with questions",
			page:   PageIndex,
			status: http.StatusOK,
			data:   models.IndexPage{Questions: []models.Question{q.Question}, Now: now},
			contains: []string{
				`href="/7/"`,
				"Favorite &lt;color&gt;?",
				"3 days ago",
			},
			excludes: []string{"No polls are available."},
		},
		{
			name:     "empty index",
			page:     PageIndex,
			status:   http.StatusOK,
			data:     models.IndexPage{Questions: []models.Question{}, Now: now},
			contains: []string{"No polls are available."},
		},
		{
			name:   "detail",
			page:   PageDetail,
			status: http.StatusOK,
			data:   models.DetailPage{Question: q, CSRFToken: "tok123", Now: now},
			contains: []string{
				`action="/7/vote/"`,
				`name="csrf_token" value="tok123"`,
				`value="1"`,
				"Blue",
				"Red",
			},
			excludes: []string{`class="error"`},
		},
		{
			name:   "detail with error",
			page:   PageDetail,
			status: http.StatusOK,
			data:   models.DetailPage{Question: q, ErrorMessage: models.ErrNoChoiceSelected, Now: now},
			contains: []string{
				html.EscapeString(models.ErrNoChoiceSelected),
			},
		},
		{
			name:   "results",
			page:   PageResults,
			status: http.StatusOK,
			data:   models.ResultsPage{Question: q, Now: now},
			contains: []string{
				"Blue -- 3 votes",
				"Red -- 1 vote ",
				"Green -- 1,234 votes",
				"1,238 votes in total",
				`href="/7/"`,
			},
		},
		{
			name:     "not found",
			page:     PageNotFound,
			status:   http.StatusNotFound,
			data:     models.NotFoundPage{Message: "Question does not exist"},
			contains: []string{"Question does not exist"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			if err := r.Render(w, tt.status, tt.page, tt.data); err != nil {
				t.Fatalf("Render() error = %v", err)
			}

			if w.Code != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("Expected text/html content type, got %q", ct)
			}

			body := w.Body.String()
			for _, s := range tt.contains {
				if !strings.Contains(body, s) {
					t.Errorf("Expected body to contain %q. Body: %s", s, body)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(body, s) {
					t.Errorf("Expected body not to contain %q", s)
				}
			}
		})
	}
}

func TestRender_UnknownPage(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	w := httptest.NewRecorder()
	if err := r.Render(w, http.StatusOK, "missing", nil); err == nil {
		t.Error("Expected error for unknown page")
	}
	if w.Body.Len() != 0 {
		t.Error("Expected nothing written for unknown page")
	}
}

func TestRender_TemplateErrorWritesNothing(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Wrong data type for the detail page
	w := httptest.NewRecorder()
	if err := r.Render(w, http.StatusOK, PageDetail, models.NotFoundPage{}); err == nil {
		t.Error("Expected error for mismatched page data")
	}
	if w.Body.Len() != 0 {
		t.Errorf("Expected nothing written, got %q", w.Body.String())
	}
}

func TestPercent(t *testing.T) {
	q := sampleQuestion()

	if got := funcs["percent"].(func(float64) string)(q.Percent(q.Choices[0])); got != "0.2%" {
		t.Errorf("Expected 0.2%%, got %s", got)
	}

	empty := models.QuestionWithChoices{Choices: []models.Choice{{ID: 1}}}
	if got := empty.Percent(empty.Choices[0]); got != 0 {
		t.Errorf("Expected 0 percent with no votes, got %v", got)
	}
}

func TestServeStylesheet(t *testing.T) {
	req := httptest.NewRequest("GET", "/static/style.css", nil)
	w := httptest.NewRecorder()

	ServeStylesheet(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("Expected text/css content type, got %q", ct)
	}
}
