package quiz

import "testing"

func startedAttempt(t *testing.T) *Attempt {
	t.Helper()
	a := NewAttempt("quiz-a")
	if !a.AttachQuestions("quiz-a", threeQuestions()) {
		t.Fatal("AttachQuestions rejected matching quiz id")
	}
	return a
}

func TestAttempt_LoadingToInProgress(t *testing.T) {
	a := NewAttempt("quiz-a")
	if a.Phase() != PhaseLoading {
		t.Fatalf("new attempt phase = %v, want PhaseLoading", a.Phase())
	}
	if a.CurrentQuestion() != nil {
		t.Error("expected no current question while loading")
	}

	a.AttachQuestions("quiz-a", threeQuestions())
	if a.Phase() != PhaseInProgress {
		t.Errorf("phase = %v, want PhaseInProgress", a.Phase())
	}
	if a.Current != 0 {
		t.Errorf("Current = %d, want 0", a.Current)
	}
}

func TestAttempt_StaleLoadDiscarded(t *testing.T) {
	// switchQuiz(B) right after switchQuiz(A): A's late payload must
	// not win over the attempt now tagged with B.
	a := NewAttempt("quiz-b")

	if a.AttachQuestions("quiz-a", threeQuestions()) {
		t.Fatal("stale payload for quiz-a was applied")
	}
	if a.Phase() != PhaseLoading {
		t.Errorf("phase = %v, want PhaseLoading after discarding stale load", a.Phase())
	}

	fresh := threeQuestions()[:2]
	if !a.AttachQuestions("quiz-b", fresh) {
		t.Fatal("matching payload for quiz-b rejected")
	}
	if a.Total() != 2 {
		t.Errorf("Total = %d, want quiz-b's 2 questions", a.Total())
	}
}

func TestAttempt_SelectOption(t *testing.T) {
	a := startedAttempt(t)

	a.SelectOption(2)
	if got, ok := a.Answer(0); !ok || got != 2 {
		t.Errorf("Answer(0) = %d,%v, want 2,true", got, ok)
	}

	// Last choice wins.
	a.SelectOption(1)
	if got, _ := a.Answer(0); got != 1 {
		t.Errorf("Answer(0) = %d after overwrite, want 1", got)
	}

	// Out-of-range option is ignored.
	a.SelectOption(7)
	if got, _ := a.Answer(0); got != 1 {
		t.Errorf("Answer(0) = %d after out-of-range select, want 1", got)
	}
}

func TestAttempt_SelectOptionAfterSubmitIsNoOp(t *testing.T) {
	a := startedAttempt(t)
	a.SelectOption(1)
	a.Submit()

	a.SelectOption(0)
	if got, _ := a.Answer(0); got != 1 {
		t.Errorf("answers changed after submit: Answer(0) = %d, want 1", got)
	}
	if a.AnsweredCount() != 1 {
		t.Errorf("AnsweredCount = %d, want 1", a.AnsweredCount())
	}
}

func TestAttempt_NavigationClamps(t *testing.T) {
	a := startedAttempt(t)

	a.Prev()
	if a.Current != 0 {
		t.Errorf("Prev at 0 moved to %d", a.Current)
	}

	a.JumpTo(99)
	if a.Current != 2 {
		t.Errorf("JumpTo(99) = %d, want clamp to 2", a.Current)
	}

	a.Next()
	if a.Current != 2 {
		t.Errorf("Next at last index moved to %d", a.Current)
	}

	a.JumpTo(-5)
	if a.Current != 0 {
		t.Errorf("JumpTo(-5) = %d, want clamp to 0", a.Current)
	}
}

func TestAttempt_SubmitOneWay(t *testing.T) {
	a := startedAttempt(t)
	a.SelectOption(1)

	if !a.Submit() {
		t.Fatal("first Submit returned false")
	}
	if a.Phase() != PhaseSubmitted {
		t.Fatalf("phase = %v, want PhaseSubmitted", a.Phase())
	}
	if !a.ReviewVisible() {
		t.Error("review not visible after submit")
	}

	before := a.Score()
	if a.Submit() {
		t.Error("second Submit reported a transition")
	}
	if after := a.Score(); after != before {
		t.Errorf("score changed across repeated submit: %+v vs %+v", before, after)
	}
}

func TestAttempt_SubmitWhileLoadingIsNoOp(t *testing.T) {
	a := NewAttempt("quiz-a")
	if a.Submit() {
		t.Error("Submit succeeded before questions loaded")
	}
}

func TestAttempt_Retake(t *testing.T) {
	a := startedAttempt(t)
	a.SelectOption(1)
	a.Next()
	a.SelectOption(0)
	a.Submit()

	questionsBefore := a.Questions
	a.Retake()

	if a.Phase() != PhaseInProgress {
		t.Errorf("phase = %v after retake, want PhaseInProgress", a.Phase())
	}
	if a.AnsweredCount() != 0 {
		t.Errorf("AnsweredCount = %d after retake, want 0", a.AnsweredCount())
	}
	if a.Current != 0 {
		t.Errorf("Current = %d after retake, want 0", a.Current)
	}
	if a.ReviewVisible() {
		t.Error("review still visible after retake")
	}
	if &a.Questions[0] != &questionsBefore[0] {
		t.Error("retake replaced the question sequence")
	}
}

func TestAttempt_RetakeBeforeSubmitIsNoOp(t *testing.T) {
	a := startedAttempt(t)
	a.SelectOption(1)
	a.Retake()
	if a.AnsweredCount() != 1 {
		t.Error("Retake cleared answers on an in-progress attempt")
	}
}

func TestAttempt_ToggleReview(t *testing.T) {
	a := startedAttempt(t)

	a.ToggleReview()
	if a.ReviewVisible() {
		t.Error("ToggleReview took effect before submission")
	}

	a.Submit()
	a.ToggleReview()
	if a.ReviewVisible() {
		t.Error("review still visible after toggle off")
	}
	a.ToggleReview()
	if !a.ReviewVisible() {
		t.Error("review not visible after toggle on")
	}
}

func TestAttempt_ScenarioUnansweredSubmit(t *testing.T) {
	a := NewAttempt("quiz-a")
	a.AttachQuestions("quiz-a", threeQuestions()[:2])

	// Presentation confirmed the incomplete submit; the engine only
	// exposes the answered count.
	if a.AnsweredCount() != 0 || a.Total() != 2 {
		t.Fatalf("answered/total = %d/%d, want 0/2", a.AnsweredCount(), a.Total())
	}
	a.Submit()

	got := a.Score()
	if got.Correct != 0 || got.Total != 2 || got.Accuracy != 0 {
		t.Errorf("Score = %+v, want {0 2 0}", got)
	}
}
