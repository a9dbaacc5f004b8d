package report

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rajat/learnhub/internal/api"
	"github.com/rajat/learnhub/internal/bus"
	"github.com/rajat/learnhub/internal/identity"
	"github.com/rajat/learnhub/internal/quiz"
	"github.com/rajat/learnhub/internal/store"
)

// mockPoster implements ProgressPoster for testing.
type mockPoster struct {
	calls   []api.QuizResult
	userIDs []string
	err     error
}

func (m *mockPoster) PostQuizResult(_ context.Context, userID string, result api.QuizResult) error {
	m.calls = append(m.calls, result)
	m.userIDs = append(m.userIDs, userID)
	return m.err
}

// mockAttemptRepo implements store.AttemptRepo for testing.
type mockAttemptRepo struct {
	records []store.AttemptRecord
	err     error
}

func (m *mockAttemptRepo) Append(_ context.Context, rec store.AttemptRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *mockAttemptRepo) Recent(_ context.Context, _ int) ([]store.AttemptRecord, error) {
	return m.records, nil
}

func testQuiz() quiz.Quiz {
	return quiz.Quiz{ID: "qz1", Title: "Fractions", Subject: "Math"}
}

func testScore() quiz.ScoreResult {
	return quiz.ScoreResult{Correct: 2, Total: 3, Accuracy: 67}
}

func TestReport_PostsAndPublishes(t *testing.T) {
	poster := &mockPoster{}
	attempts := &mockAttemptRepo{}
	events := bus.New()
	updated := events.Subscribe()

	r := New(poster, &identity.Student{ID: "stu1", Name: "Asha"}, attempts, events)
	takenAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	if err := r.Report(context.Background(), testQuiz(), testScore(), takenAt); err != nil {
		t.Fatalf("Report: %v", err)
	}

	if len(poster.calls) != 1 {
		t.Fatalf("posts = %d, want 1", len(poster.calls))
	}
	got := poster.calls[0]
	if got.QuizID != "qz1" || got.Correct != 2 || got.Accuracy != 67 {
		t.Errorf("posted result = %+v", got)
	}
	if got.TakenAt != "2026-03-14T09:30:00Z" {
		t.Errorf("TakenAt = %q, want ISO-8601", got.TakenAt)
	}
	if poster.userIDs[0] != "stu1" {
		t.Errorf("userID = %s", poster.userIDs[0])
	}

	select {
	case <-updated:
	default:
		t.Error("progress-updated notification not published")
	}

	if len(attempts.records) != 1 || !attempts.records[0].Reported {
		t.Errorf("local records = %+v, want one reported attempt", attempts.records)
	}
}

func TestReport_NoIdentitySkipsTransmission(t *testing.T) {
	poster := &mockPoster{}
	attempts := &mockAttemptRepo{}
	events := bus.New()
	updated := events.Subscribe()

	var warnings bytes.Buffer
	r := New(poster, nil, attempts, events)
	r.warnOut = &warnings

	if err := r.Report(context.Background(), testQuiz(), testScore(), time.Now()); err != nil {
		t.Fatalf("Report without identity must not fail: %v", err)
	}

	if len(poster.calls) != 0 {
		t.Errorf("posts = %d, want 0 (no network call without identity)", len(poster.calls))
	}
	if !strings.Contains(warnings.String(), "skipping progress save") {
		t.Errorf("warning output = %q", warnings.String())
	}
	select {
	case <-updated:
		t.Error("progress-updated published without a successful post")
	default:
	}

	// Local history still records the attempt, unreported.
	if len(attempts.records) != 1 || attempts.records[0].Reported {
		t.Errorf("local records = %+v, want one unreported attempt", attempts.records)
	}
}

func TestReport_TransmissionFailureIsLoggedOnly(t *testing.T) {
	poster := &mockPoster{err: &api.ErrReportingFailed{Err: errors.New("boom")}}
	attempts := &mockAttemptRepo{}
	events := bus.New()
	updated := events.Subscribe()

	var warnings bytes.Buffer
	r := New(poster, &identity.Student{ID: "stu1"}, attempts, events)
	r.warnOut = &warnings

	err := r.Report(context.Background(), testQuiz(), testScore(), time.Now())
	var failed *api.ErrReportingFailed
	if !errors.As(err, &failed) {
		t.Fatalf("err = %v, want ErrReportingFailed", err)
	}

	if !strings.Contains(warnings.String(), "failed to save quiz result") {
		t.Errorf("warning output = %q", warnings.String())
	}
	select {
	case <-updated:
		t.Error("progress-updated published despite failed post")
	default:
	}
	if len(attempts.records) != 1 || attempts.records[0].Reported {
		t.Errorf("local records = %+v, want one unreported attempt", attempts.records)
	}
}

func TestReport_DefaultsSubjectToGeneral(t *testing.T) {
	poster := &mockPoster{}
	r := New(poster, &identity.Student{ID: "stu1"}, &mockAttemptRepo{}, nil)

	q := quiz.Quiz{ID: "qz2", Title: "Mixed Bag"}
	if err := r.Report(context.Background(), q, testScore(), time.Now()); err != nil {
		t.Fatalf("Report: %v", err)
	}
	if poster.calls[0].Subject != "General" {
		t.Errorf("Subject = %q, want General", poster.calls[0].Subject)
	}
}
