package api

import (
	"context"
	"encoding/json"
	"fmt"
)

// QuizResult is the progress payload posted after a submission.
type QuizResult struct {
	QuizID    string `json:"quizId"`
	QuizTitle string `json:"quizTitle"`
	Subject   string `json:"subject"`
	Total     int    `json:"total"`
	Correct   int    `json:"correct"`
	Accuracy  int    `json:"accuracy"`
	TakenAt   string `json:"takenAt"` // ISO-8601, captured at submit time
}

// PostQuizResult records a quiz outcome against the student's
// progress. No retry: this is a fire-and-forget background effect and
// the reporter logs failures instead of resurfacing them.
func (c *Client) PostQuizResult(ctx context.Context, userID string, result QuizResult) error {
	path := fmt.Sprintf("/api/progress/%s/quiz", userID)
	if err := c.postJSON(ctx, path, result); err != nil {
		return &ErrReportingFailed{Err: err}
	}
	return nil
}

// ProgressSummary is the dashboard view of a student's progress.
type ProgressSummary struct {
	KPIs     ProgressKPIs      `json:"kpis"`
	Subjects []SubjectProgress `json:"subjects"`
	Badges   []string          `json:"badges"`
}

// ProgressKPIs are the headline numbers on the progress screen.
type ProgressKPIs struct {
	StudyMinutes int `json:"studyMinutes"`
	TotalMinutes int `json:"totalMinutes"`
	Accuracy     int `json:"accuracy"`
	Streak       int `json:"streak"`
	Rank         int `json:"rank"`
	Completion   int `json:"completion"`
}

// SubjectProgress is per-subject completion for the progress screen.
type SubjectProgress struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

// FetchProgress loads the student's progress summary.
func (c *Client) FetchProgress(ctx context.Context, userID string) (*ProgressSummary, error) {
	data, err := c.getData(ctx, "/api/progress/"+userID)
	if err != nil {
		return nil, err
	}
	var summary ProgressSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("decode progress summary: %w", err)
	}
	return &summary, nil
}
