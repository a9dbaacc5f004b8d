package store

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestStudentSaveGetClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.StudentRepo()
	ctx := context.Background()

	// No record yet.
	rec, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record when none stored")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, StudentRecord{
		StudentID:  "stu-1",
		Name:       "Asha",
		Token:      "tok-abc",
		LoggedInAt: now,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	rec, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatal("expected stored record")
	}
	if rec.StudentID != "stu-1" || rec.Name != "Asha" || rec.Token != "tok-abc" {
		t.Errorf("unexpected record: %+v", rec)
	}

	// Saving again replaces, never accumulates.
	err = repo.Save(ctx, StudentRecord{StudentID: "stu-2", Name: "Bala", LoggedInAt: now.Add(time.Minute)})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	rec, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("get after replace: %v", err)
	}
	if rec.StudentID != "stu-2" {
		t.Errorf("expected replacement record, got %+v", rec)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	rec, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("get after clear: %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record after clear")
	}
}

func TestAttemptAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		err := repo.Append(ctx, AttemptRecord{
			AttemptID: fmt.Sprintf("att-%d", i),
			QuizID:    "quiz-1",
			QuizTitle: "Algebra Basics",
			Subject:   "Math",
			Total:     10,
			Correct:   i,
			Accuracy:  i * 10,
			TakenAt:   base.Add(time.Duration(i) * time.Minute),
			Reported:  i%2 == 0,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recent, err := repo.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recent))
	}
	// Newest first.
	if recent[0].AttemptID != "att-4" || recent[2].AttemptID != "att-2" {
		t.Errorf("unexpected order: %s ... %s", recent[0].AttemptID, recent[2].AttemptID)
	}
	if recent[0].Correct != 4 || recent[0].Accuracy != 40 {
		t.Errorf("unexpected payload: %+v", recent[0])
	}

	// Zero limit returns everything.
	all, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent (all): %v", err)
	}
	if len(all) != 5 {
		t.Errorf("expected 5 records, got %d", len(all))
	}
}
