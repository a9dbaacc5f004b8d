package store

import (
	"context"
	"time"
)

// StudentRecord is the locally persisted identity: opaque id and
// display name, plus the API token. Absence means "not logged in".
type StudentRecord struct {
	StudentID  string
	Name       string
	Token      string
	LoggedInAt time.Time
}

// StudentRepo manages the single stored student record.
type StudentRepo interface {
	// Save stores the record, replacing any existing one.
	Save(ctx context.Context, rec StudentRecord) error

	// Get returns the stored record, or nil when none exists.
	Get(ctx context.Context) (*StudentRecord, error)

	// Clear removes the stored record. No-op when none exists.
	Clear(ctx context.Context) error
}

// AttemptRecord is one submitted quiz attempt in local history.
type AttemptRecord struct {
	AttemptID string
	QuizID    string
	QuizTitle string
	Subject   string
	Total     int
	Correct   int
	Accuracy  int
	TakenAt   time.Time
	Reported  bool
}

// AttemptRepo provides append and query access to attempt history.
type AttemptRepo interface {
	// Append records a submitted attempt.
	Append(ctx context.Context, rec AttemptRecord) error

	// Recent returns up to limit attempts, newest first.
	Recent(ctx context.Context, limit int) ([]AttemptRecord, error)
}
