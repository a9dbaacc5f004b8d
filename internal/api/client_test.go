package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second)
}

func TestListQuizzes(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/quizzes" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"data": [
			{"_id": "qz1", "title": "Fractions", "subject": "Math"},
			{"_id": "qz2", "title": {"text": "Plants"}, "subject": "Science"}
		]}`))
	}))

	quizzes, err := c.ListQuizzes(context.Background())
	if err != nil {
		t.Fatalf("ListQuizzes: %v", err)
	}
	if len(quizzes) != 2 {
		t.Fatalf("len = %d, want 2", len(quizzes))
	}
	if quizzes[0].ID != "qz1" || quizzes[1].Title != "Plants" {
		t.Errorf("quizzes = %+v", quizzes)
	}
}

func TestListQuizzes_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New(srv.URL, time.Second)

	_, err := c.ListQuizzes(context.Background())
	var unavailable *ErrCatalogUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("err = %v, want ErrCatalogUnavailable", err)
	}
}

func TestLoadQuestions(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/quizzes/qz1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"data": {"_id": "qz1", "questions": [
			{"q": "2+2?", "options": ["3", "4"], "fix": 1, "explain": "arithmetic"},
			{"q": {"text": "3*3?"}, "options": [{"text": "9"}, "6"], "answer": 0}
		]}}`))
	}))

	questions, err := c.LoadQuestions(context.Background(), "qz1")
	if err != nil {
		t.Fatalf("LoadQuestions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("len = %d, want 2", len(questions))
	}
	if questions[0].Correct != 1 || questions[1].Prompt != "3*3?" {
		t.Errorf("questions = %+v", questions)
	}
}

func TestLoadQuestions_SchemaRejectsBadPayload(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Second question has a single option and no correct index.
		w.Write([]byte(`{"data": {"questions": [
			{"q": "ok", "options": ["a", "b"], "fix": 0},
			{"q": "broken", "options": ["only"]}
		]}}`))
	}))

	_, err := c.LoadQuestions(context.Background(), "qz1")
	var unavailable *ErrQuestionsUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("err = %v, want ErrQuestionsUnavailable", err)
	}
	if unavailable.QuizID != "qz1" {
		t.Errorf("QuizID = %s", unavailable.QuizID)
	}
}

func TestGetData_RetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"data": []}`))
	}))

	if _, err := c.ListQuizzes(context.Background()); err != nil {
		t.Fatalf("ListQuizzes after retry: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestGetData_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))

	if _, err := c.ListQuizzes(context.Background()); err == nil {
		t.Fatal("expected error for 404")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1 (404 is not retryable)", got)
	}
}

func TestPostQuizResult(t *testing.T) {
	var gotPath, gotAuth string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
	}))
	c.SetToken("tok123")

	err := c.PostQuizResult(context.Background(), "stu1", QuizResult{
		QuizID:   "qz1",
		Total:    3,
		Correct:  2,
		Accuracy: 67,
	})
	if err != nil {
		t.Fatalf("PostQuizResult: %v", err)
	}
	if gotPath != "/api/progress/stu1/quiz" {
		t.Errorf("path = %s", gotPath)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestPostQuizResult_Failure(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	err := c.PostQuizResult(context.Background(), "stu1", QuizResult{})
	var failed *ErrReportingFailed
	if !errors.As(err, &failed) {
		t.Fatalf("err = %v, want ErrReportingFailed", err)
	}
}

func TestListMentors(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [
			{"_id": "m1", "name": "Asha", "subjects": ["Math"], "city": "Pune", "rating": 4.8, "sessions": 120}
		]}`))
	}))

	mentors, err := c.ListMentors(context.Background())
	if err != nil {
		t.Fatalf("ListMentors: %v", err)
	}
	if len(mentors) != 1 || mentors[0].Name != "Asha" {
		t.Errorf("mentors = %+v", mentors)
	}
}
