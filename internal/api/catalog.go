package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rajat/learnhub/internal/quiz"
)

// ListQuizzes returns the quiz catalog in backend order. The caller
// treats the first entry as the default selection when nothing is
// active yet.
func (c *Client) ListQuizzes(ctx context.Context) ([]quiz.Quiz, error) {
	data, err := c.getData(ctx, "/api/quizzes")
	if err != nil {
		return nil, &ErrCatalogUnavailable{Err: err}
	}
	quizzes, err := quiz.DecodeQuizzes(data)
	if err != nil {
		return nil, &ErrCatalogUnavailable{Err: err}
	}
	return quizzes, nil
}

// LoadQuestions fetches the full question set for one quiz, validates
// the payload shape against the questions schema, and normalizes it.
// Safe to retry; the engine discards stale responses by quiz id.
func (c *Client) LoadQuestions(ctx context.Context, quizID string) ([]quiz.Question, error) {
	data, err := c.getData(ctx, "/api/quizzes/"+quizID)
	if err != nil {
		return nil, &ErrQuestionsUnavailable{QuizID: quizID, Err: err}
	}

	var detail struct {
		Questions json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal(data, &detail); err != nil {
		return nil, &ErrQuestionsUnavailable{QuizID: quizID, Err: fmt.Errorf("decode quiz detail: %w", err)}
	}
	if detail.Questions == nil {
		return nil, &ErrQuestionsUnavailable{QuizID: quizID, Err: fmt.Errorf("quiz detail has no questions field")}
	}

	if err := validateQuestionsPayload(detail.Questions); err != nil {
		return nil, &ErrQuestionsUnavailable{QuizID: quizID, Err: err}
	}

	questions, err := quiz.DecodeQuestions(detail.Questions)
	if err != nil {
		return nil, &ErrQuestionsUnavailable{QuizID: quizID, Err: err}
	}
	return questions, nil
}
