package quiz

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDecodeQuizzes_NormalizesTitles(t *testing.T) {
	raw := json.RawMessage(`[
		{"_id": "q1", "title": "Algebra Basics", "subject": "Math"},
		{"_id": "q2", "title": {"text": "Cell Biology"}, "subject": "Science"},
		{"_id": "q3", "subject": "History"}
	]`)

	quizzes, err := DecodeQuizzes(raw)
	if err != nil {
		t.Fatalf("DecodeQuizzes: %v", err)
	}
	if len(quizzes) != 3 {
		t.Fatalf("len = %d, want 3", len(quizzes))
	}
	if quizzes[0].Title != "Algebra Basics" {
		t.Errorf("plain title = %q", quizzes[0].Title)
	}
	if quizzes[1].Title != "Cell Biology" {
		t.Errorf("wrapped title = %q", quizzes[1].Title)
	}
	if quizzes[2].Title != "Untitled Quiz" {
		t.Errorf("missing title = %q, want fallback", quizzes[2].Title)
	}
}

func TestDecodeQuestions_NormalizesShapes(t *testing.T) {
	raw := json.RawMessage(`[
		{"q": "Plain prompt?", "options": ["a", "b"], "answer": 1, "explain": "because"},
		{"q": {"text": "Wrapped prompt?"}, "options": [{"text": "x"}, "y", {"text": "z"}], "fix": 2}
	]`)

	questions, err := DecodeQuestions(raw)
	if err != nil {
		t.Fatalf("DecodeQuestions: %v", err)
	}
	if questions[0].Prompt != "Plain prompt?" || questions[0].Correct != 1 {
		t.Errorf("question 0 = %+v", questions[0])
	}
	if questions[0].Explanation != "because" {
		t.Errorf("explanation = %q", questions[0].Explanation)
	}
	if questions[1].Prompt != "Wrapped prompt?" {
		t.Errorf("wrapped prompt = %q", questions[1].Prompt)
	}
	if got := questions[1].Options; got[0] != "x" || got[1] != "y" || got[2] != "z" {
		t.Errorf("options = %v", got)
	}
}

func TestDecodeQuestions_FixBeatsAnswer(t *testing.T) {
	raw := json.RawMessage(`[{"q": "p", "options": ["a", "b", "c"], "fix": 0, "answer": 2}]`)
	questions, err := DecodeQuestions(raw)
	if err != nil {
		t.Fatalf("DecodeQuestions: %v", err)
	}
	if questions[0].Correct != 0 {
		t.Errorf("Correct = %d, want fix value 0", questions[0].Correct)
	}
}

func TestDecodeQuestions_Malformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"no options", `[{"q": "p", "answer": 0}]`},
		{"one option", `[{"q": "p", "options": ["only"], "answer": 0}]`},
		{"no correct index", `[{"q": "p", "options": ["a", "b"]}]`},
		{"correct out of range", `[{"q": "p", "options": ["a", "b"], "fix": 5}]`},
		{"negative correct", `[{"q": "p", "options": ["a", "b"], "answer": -1}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeQuestions(json.RawMessage(tc.raw))
			var malformed *ErrMalformedQuestion
			if !errors.As(err, &malformed) {
				t.Fatalf("err = %v, want ErrMalformedQuestion", err)
			}
			if malformed.Index != 0 {
				t.Errorf("Index = %d, want 0", malformed.Index)
			}
		})
	}
}

func TestDecodeQuestions_BadPayloadRejectsAll(t *testing.T) {
	raw := json.RawMessage(`[
		{"q": "good", "options": ["a", "b"], "answer": 0},
		{"q": "bad", "options": ["a"], "answer": 0}
	]`)
	questions, err := DecodeQuestions(raw)
	if err == nil {
		t.Fatal("expected error for payload with one malformed question")
	}
	if questions != nil {
		t.Error("partial question list returned alongside error")
	}
}
