// Package report hands completed attempts to the progress API.
// Strictly a background effect: it runs after the attempt has already
// transitioned to Submitted and can never block or roll that back.
package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/rajat/learnhub/internal/api"
	"github.com/rajat/learnhub/internal/bus"
	"github.com/rajat/learnhub/internal/identity"
	"github.com/rajat/learnhub/internal/quiz"
	"github.com/rajat/learnhub/internal/store"
)

// ProgressPoster is the slice of the API client the reporter needs.
type ProgressPoster interface {
	PostQuizResult(ctx context.Context, userID string, result api.QuizResult) error
}

// Reporter packages submitted attempts and posts them, exactly once
// per submit transition (not on retake, not on review toggle).
type Reporter struct {
	poster   ProgressPoster
	student  *identity.Student // nil when not logged in
	attempts store.AttemptRepo
	events   *bus.Bus

	// warnOut receives non-fatal warnings; defaults to stderr.
	warnOut io.Writer
}

// New creates a Reporter. student may be nil: reporting is then
// skipped with a warning while the quiz flow continues normally.
func New(poster ProgressPoster, student *identity.Student, attempts store.AttemptRepo, events *bus.Bus) *Reporter {
	return &Reporter{
		poster:   poster,
		student:  student,
		attempts: attempts,
		events:   events,
		warnOut:  os.Stderr,
	}
}

// Report posts the outcome of one submitted attempt and appends it to
// local history. Transmission failures are logged and swallowed; the
// returned error exists for tests and callers that want to surface a
// status line, never to undo the submission.
func (r *Reporter) Report(ctx context.Context, q quiz.Quiz, score quiz.ScoreResult, takenAt time.Time) error {
	subject := q.Subject
	if subject == "" {
		subject = "General"
	}

	rec := store.AttemptRecord{
		AttemptID: uuid.New().String(),
		QuizID:    q.ID,
		QuizTitle: q.Title,
		Subject:   subject,
		Total:     score.Total,
		Correct:   score.Correct,
		Accuracy:  score.Accuracy,
		TakenAt:   takenAt,
	}

	if r.student == nil {
		r.warnf("no logged-in student found; skipping progress save")
		r.appendLocal(ctx, rec)
		return nil
	}

	result := api.QuizResult{
		QuizID:    q.ID,
		QuizTitle: q.Title,
		Subject:   subject,
		Total:     score.Total,
		Correct:   score.Correct,
		Accuracy:  score.Accuracy,
		TakenAt:   takenAt.UTC().Format(time.RFC3339),
	}

	if err := r.poster.PostQuizResult(ctx, r.student.ID, result); err != nil {
		r.warnf("failed to save quiz result to progress: %v", err)
		r.appendLocal(ctx, rec)
		return err
	}

	rec.Reported = true
	r.appendLocal(ctx, rec)

	// Let other views know fresh progress is available. At most once
	// per successful submission.
	if r.events != nil {
		r.events.Publish()
	}
	return nil
}

// appendLocal records the attempt in local history. Failures are
// logged, never propagated: history is a convenience, not a ledger.
func (r *Reporter) appendLocal(ctx context.Context, rec store.AttemptRecord) {
	if r.attempts == nil {
		return
	}
	if err := r.attempts.Append(ctx, rec); err != nil {
		r.warnf("failed to record attempt locally: %v", err)
	}
}

func (r *Reporter) warnf(format string, args ...any) {
	fmt.Fprintf(r.warnOut, "warning: "+format+"\n", args...)
}
