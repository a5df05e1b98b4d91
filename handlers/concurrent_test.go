// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/quickly-polls/models"
	"github.com/danielhkuo/quickly-polls/testutil"
)

// TestConcurrentVotes verifies that simultaneous form votes on the same
// choice are all counted
func TestConcurrentVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := newTestPollsHandler(t, db)

	qID := testutil.CreateTestQuestion(t, db, "Concurrent?", testNow)
	target := testutil.AddTestChoice(t, db, qID, "Target", 0)
	other := testutil.AddTestChoice(t, db, qID, "Other", 0)

	numVoters := 25
	var redirects atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.NewVoteRequest("/"+idStr(qID)+"/vote/", idStr(target))
			req.SetPathValue("question_id", idStr(qID))
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			if w.Code == http.StatusFound {
				redirects.Add(1)
			}
		}()
	}

	wg.Wait()

	if int(redirects.Load()) != numVoters {
		t.Errorf("Expected %d redirects, got %d", numVoters, redirects.Load())
	}
	if got := testutil.GetVotes(t, db, target); got != int64(numVoters) {
		t.Errorf("Expected %d votes, got %d", numVoters, got)
	}
	if got := testutil.GetVotes(t, db, other); got != 0 {
		t.Errorf("Expected other choice untouched, got %d", got)
	}
}

// TestConcurrentMixedVotes runs form and API votes side by side
func TestConcurrentMixedVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	polls := newTestPollsHandler(t, db)
	api := newTestAPIHandler(db)

	qID := testutil.CreateTestQuestion(t, db, "Mixed?", testNow)
	choiceA := testutil.AddTestChoice(t, db, qID, "A", 0)
	choiceB := testutil.AddTestChoice(t, db, qID, "B", 0)

	perKind := 10
	var wg sync.WaitGroup

	for i := 0; i < perKind; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			req := testutil.NewVoteRequest("/"+idStr(qID)+"/vote/", idStr(choiceA))
			req.SetPathValue("question_id", idStr(qID))
			polls.Vote(httptest.NewRecorder(), req)
		}()

		go func() {
			defer wg.Done()
			id := choiceB
			req := testutil.MakeRequest("POST", "/api/questions/"+idStr(qID)+"/vote", models.VoteRequest{ChoiceID: &id}, nil)
			req.SetPathValue("question_id", idStr(qID))
			api.Vote(httptest.NewRecorder(), req)
		}()
	}

	wg.Wait()

	if got := testutil.GetVotes(t, db, choiceA); got != int64(perKind) {
		t.Errorf("Expected %d form votes, got %d", perKind, got)
	}
	if got := testutil.GetVotes(t, db, choiceB); got != int64(perKind) {
		t.Errorf("Expected %d API votes, got %d", perKind, got)
	}
}
