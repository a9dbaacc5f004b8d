package quizzes

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rajat/learnhub/internal/api"
	"github.com/rajat/learnhub/internal/quiz"
	"github.com/rajat/learnhub/internal/screen"
)

// mockCatalog implements Catalog for testing.
type mockCatalog struct {
	quizzes   []quiz.Quiz
	questions map[string][]quiz.Question
	listErr   error
	loadErr   error
}

func (m *mockCatalog) ListQuizzes(_ context.Context) ([]quiz.Quiz, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.quizzes, nil
}

func (m *mockCatalog) LoadQuestions(_ context.Context, quizID string) ([]quiz.Question, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.questions[quizID], nil
}

// mockReporter implements Reporter for testing.
type mockReporter struct {
	mu      sync.Mutex
	reports []quiz.ScoreResult
	quizzes []quiz.Quiz
}

func (m *mockReporter) Report(_ context.Context, q quiz.Quiz, score quiz.ScoreResult, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, score)
	m.quizzes = append(m.quizzes, q)
	return nil
}

func (m *mockReporter) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.reports)
}

func testCatalog() *mockCatalog {
	return &mockCatalog{
		quizzes: []quiz.Quiz{
			{ID: "qa", Title: "Algebra", Subject: "Math"},
			{ID: "qb", Title: "Biology", Subject: "Science"},
		},
		questions: map[string][]quiz.Question{
			"qa": {
				{Prompt: "a1", Options: []string{"x", "y"}, Correct: 1},
				{Prompt: "a2", Options: []string{"x", "y"}, Correct: 0},
				{Prompt: "a3", Options: []string{"x", "y", "z"}, Correct: 2},
			},
			"qb": {
				{Prompt: "b1", Options: []string{"x", "y"}, Correct: 0},
			},
		},
	}
}

// drive applies a message and returns the updated concrete screen.
func drive(t *testing.T, s screen.Screen, msg tea.Msg) (*QuizzesScreen, tea.Cmd) {
	t.Helper()
	updated, cmd := s.Update(msg)
	qs, ok := updated.(*QuizzesScreen)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return qs, cmd
}

// loadedScreen builds a screen with catalog + quiz A's questions in.
func loadedScreen(t *testing.T, catalog *mockCatalog, reporter Reporter) *QuizzesScreen {
	t.Helper()
	s := New(catalog, reporter)
	s, _ = drive(t, s, catalogLoadedMsg{Quizzes: catalog.quizzes})
	s, _ = drive(t, s, questionsLoadedMsg{QuizID: "qa", Questions: catalog.questions["qa"]})
	if s.attempt == nil || s.attempt.Phase() != quiz.PhaseInProgress {
		t.Fatal("screen not in progress after catalog + questions load")
	}
	return s
}

func key(k string) tea.Msg {
	switch k {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	default:
		return tea.KeyPressMsg{Code: rune(k[0]), Text: k}
	}
}

func TestFirstQuizSelectedByDefault(t *testing.T) {
	catalog := testCatalog()
	s := New(catalog, nil)
	s, cmd := drive(t, s, catalogLoadedMsg{Quizzes: catalog.quizzes})

	if s.active != 0 {
		t.Errorf("active = %d, want 0 (first-quiz default)", s.active)
	}
	if s.attempt == nil || s.attempt.QuizID != "qa" {
		t.Fatal("no attempt started for the first quiz")
	}
	if cmd == nil {
		t.Fatal("expected a question-load command")
	}
}

func TestCatalogFailureShowsEmptyList(t *testing.T) {
	s := New(&mockCatalog{listErr: &api.ErrCatalogUnavailable{Err: errors.New("down")}}, nil)
	s, _ = drive(t, s, catalogLoadedMsg{Err: errors.New("down")})

	if len(s.quizzes) != 0 {
		t.Errorf("quizzes = %d, want empty list on failure", len(s.quizzes))
	}
	if view := s.View(80, 24); view == "" {
		t.Error("failure view must still render")
	}
}

func TestStaleQuestionsDiscarded(t *testing.T) {
	// Scenario: switch to quiz B while quiz A's questions are still
	// in flight; A's late payload must not be displayed.
	catalog := testCatalog()
	s := New(catalog, nil)
	s, _ = drive(t, s, catalogLoadedMsg{Quizzes: catalog.quizzes})

	// Switch to quiz B before A's questions resolve.
	s, _ = drive(t, s, key("tab"))
	if s.attempt.QuizID != "qb" {
		t.Fatalf("active attempt = %s, want qb", s.attempt.QuizID)
	}

	// A's stale payload arrives late.
	s, _ = drive(t, s, questionsLoadedMsg{QuizID: "qa", Questions: catalog.questions["qa"]})
	if s.attempt.Phase() != quiz.PhaseLoading {
		t.Error("stale payload for qa was attached to qb's attempt")
	}

	// B's payload lands.
	s, _ = drive(t, s, questionsLoadedMsg{QuizID: "qb", Questions: catalog.questions["qb"]})
	if s.attempt.Total() != 1 {
		t.Errorf("Total = %d, want qb's single question", s.attempt.Total())
	}
}

func TestAnswerAndSubmitReportsOnce(t *testing.T) {
	reporter := &mockReporter{}
	s := loadedScreen(t, testCatalog(), reporter)

	// Answer all three: correct indices are 1, 0, 2.
	s, _ = drive(t, s, key("down"))
	s, _ = drive(t, s, key("enter")) // q1 -> option 1 (correct)
	s, _ = drive(t, s, key("right"))
	s, _ = drive(t, s, key("enter")) // q2 -> option 0 (correct)
	s, _ = drive(t, s, key("right"))
	s, _ = drive(t, s, key("enter")) // q3 -> option 0 (wrong)

	s, cmd := drive(t, s, key("s"))
	if s.confirming {
		t.Fatal("confirmation shown although everything was answered")
	}
	if s.attempt.Phase() != quiz.PhaseSubmitted {
		t.Fatal("attempt not submitted")
	}
	if cmd == nil {
		t.Fatal("expected a report command")
	}
	cmd() // run the background report synchronously

	if reporter.count() != 1 {
		t.Fatalf("reports = %d, want exactly 1", reporter.count())
	}
	got := reporter.reports[0]
	if got.Correct != 2 || got.Total != 3 || got.Accuracy != 67 {
		t.Errorf("reported score = %+v", got)
	}
	if reporter.quizzes[0].ID != "qa" {
		t.Errorf("reported quiz = %s", reporter.quizzes[0].ID)
	}

	// A second submit key must not trigger another report.
	_, cmd = drive(t, s, key("s"))
	if cmd != nil {
		t.Error("second submit produced a command")
	}
}

func TestUnansweredSubmitNeedsConfirmation(t *testing.T) {
	reporter := &mockReporter{}
	s := loadedScreen(t, testCatalog(), reporter)

	s, cmd := drive(t, s, key("s"))
	if !s.confirming {
		t.Fatal("expected confirmation overlay for unanswered submit")
	}
	if cmd != nil {
		t.Fatal("submit ran before confirmation")
	}

	// Decline: still in progress.
	s, _ = drive(t, s, key("n"))
	if s.attempt.Phase() != quiz.PhaseInProgress {
		t.Error("declining confirmation changed the phase")
	}

	// Confirm this time.
	s, _ = drive(t, s, key("s"))
	s, cmd = drive(t, s, key("y"))
	if s.attempt.Phase() != quiz.PhaseSubmitted {
		t.Fatal("confirmed submit did not transition")
	}
	cmd()

	if reporter.count() != 1 {
		t.Fatalf("reports = %d, want 1", reporter.count())
	}
	if got := reporter.reports[0]; got.Correct != 0 || got.Total != 3 {
		t.Errorf("reported score = %+v", got)
	}
}

func TestSelectAfterSubmitIgnored(t *testing.T) {
	s := loadedScreen(t, testCatalog(), &mockReporter{})
	s, _ = drive(t, s, key("enter")) // answer q1 with option 0
	s, _ = drive(t, s, key("s"))
	s, cmd := drive(t, s, key("y"))
	if cmd != nil {
		cmd()
	}

	before := s.attempt.Score()
	s, _ = drive(t, s, key("down"))
	s, _ = drive(t, s, key("enter"))
	if after := s.attempt.Score(); after != before {
		t.Errorf("score changed after post-submit select: %+v vs %+v", before, after)
	}
}

func TestRetakeResetsWithoutRefetch(t *testing.T) {
	catalog := testCatalog()
	s := loadedScreen(t, catalog, &mockReporter{})
	s, _ = drive(t, s, key("enter"))
	s, _ = drive(t, s, key("s"))
	s, cmd := drive(t, s, key("y"))
	if cmd != nil {
		cmd()
	}

	s, cmd = drive(t, s, key("r"))
	if cmd != nil {
		t.Error("retake issued a command; no re-fetch expected")
	}
	if s.attempt.Phase() != quiz.PhaseInProgress {
		t.Error("retake did not return to in-progress")
	}
	if s.attempt.AnsweredCount() != 0 || s.attempt.Current != 0 {
		t.Error("retake did not clear answers / reset index")
	}
	if s.attempt.Total() != 3 {
		t.Error("retake lost the question sequence")
	}
}

func TestReviewToggle(t *testing.T) {
	s := loadedScreen(t, testCatalog(), &mockReporter{})
	s, _ = drive(t, s, key("s"))
	s, cmd := drive(t, s, key("y"))
	if cmd != nil {
		cmd()
	}

	if !s.attempt.ReviewVisible() {
		t.Fatal("review not shown after submit")
	}
	s, _ = drive(t, s, key("v"))
	if s.attempt.ReviewVisible() {
		t.Error("review still visible after toggle")
	}
}

func TestViewRendersEachState(t *testing.T) {
	s := New(testCatalog(), nil)
	if view := s.View(80, 24); view == "" {
		t.Error("loading view empty")
	}

	s = loadedScreen(t, testCatalog(), &mockReporter{})
	if view := s.View(80, 24); view == "" {
		t.Error("question view empty")
	}

	s, _ = drive(t, s, key("s"))
	s, cmd := drive(t, s, key("y"))
	if cmd != nil {
		cmd()
	}
	if view := s.View(80, 24); view == "" {
		t.Error("score view empty")
	}
}
