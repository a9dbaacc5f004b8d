package store

import (
	"context"
	"fmt"

	"github.com/rajat/learnhub/ent"
	"github.com/rajat/learnhub/ent/student"
)

// studentRepo implements StudentRepo on the ent client.
type studentRepo struct {
	client *ent.Client
}

func (r *studentRepo) Save(ctx context.Context, rec StudentRecord) error {
	// One record at a time: replace wholesale.
	if _, err := r.client.Student.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear previous student: %w", err)
	}

	create := r.client.Student.Create().
		SetStudentID(rec.StudentID).
		SetName(rec.Name)
	if rec.Token != "" {
		create = create.SetToken(rec.Token)
	}
	if !rec.LoggedInAt.IsZero() {
		create = create.SetLoggedInAt(rec.LoggedInAt)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save student: %w", err)
	}
	return nil
}

func (r *studentRepo) Get(ctx context.Context) (*StudentRecord, error) {
	row, err := r.client.Student.Query().
		Order(ent.Desc(student.FieldLoggedInAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query student: %w", err)
	}

	return &StudentRecord{
		StudentID:  row.StudentID,
		Name:       row.Name,
		Token:      row.Token,
		LoggedInAt: row.LoggedInAt,
	}, nil
}

func (r *studentRepo) Clear(ctx context.Context) error {
	if _, err := r.client.Student.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear student: %w", err)
	}
	return nil
}
