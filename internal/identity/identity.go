// Package identity resolves the locally persisted student record.
// The record is read once at session start; the quiz flow never
// requires it, only result reporting does.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/rajat/learnhub/internal/store"
)

// ErrNotAuthenticated indicates no student record is stored. Not a
// user-facing failure: callers degrade (skip reporting) instead.
var ErrNotAuthenticated = errors.New("no student is logged in")

// Student is the authenticated student for this session.
type Student struct {
	ID    string
	Name  string
	Token string
}

// Load reads the stored student record. Returns ErrNotAuthenticated
// when none exists.
func Load(ctx context.Context, repo store.StudentRepo) (*Student, error) {
	rec, err := repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load student record: %w", err)
	}
	if rec == nil {
		return nil, ErrNotAuthenticated
	}
	return &Student{
		ID:    rec.StudentID,
		Name:  rec.Name,
		Token: rec.Token,
	}, nil
}
