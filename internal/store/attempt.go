package store

import (
	"context"
	"fmt"

	"github.com/rajat/learnhub/ent"
	"github.com/rajat/learnhub/ent/attemptevent"
)

// attemptRepo implements AttemptRepo on the ent client.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Append(ctx context.Context, rec AttemptRecord) error {
	seq, err := r.nextSequence(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seq).
		SetAttemptID(rec.AttemptID).
		SetQuizID(rec.QuizID).
		SetQuizTitle(rec.QuizTitle).
		SetSubject(rec.Subject).
		SetTotal(rec.Total).
		SetCorrect(rec.Correct).
		SetAccuracy(rec.Accuracy).
		SetTakenAt(rec.TakenAt).
		SetReported(rec.Reported).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append attempt event: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, limit int) ([]AttemptRecord, error) {
	q := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}

	records := make([]AttemptRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, AttemptRecord{
			AttemptID: row.AttemptID,
			QuizID:    row.QuizID,
			QuizTitle: row.QuizTitle,
			Subject:   row.Subject,
			Total:     row.Total,
			Correct:   row.Correct,
			Accuracy:  row.Accuracy,
			TakenAt:   row.TakenAt,
			Reported:  row.Reported,
		})
	}
	return records, nil
}

// nextSequence returns the next global sequence number.
func (r *attemptRepo) nextSequence(ctx context.Context) (int64, error) {
	last, err := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence)).
		First(ctx)
	if ent.IsNotFound(err) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query last sequence: %w", err)
	}
	return last.Sequence + 1, nil
}
