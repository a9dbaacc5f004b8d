package quizzes

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rajat/learnhub/internal/quiz"
	"github.com/rajat/learnhub/internal/router"
	"github.com/rajat/learnhub/internal/screen"
	"github.com/rajat/learnhub/internal/ui/layout"
)

// Catalog is the slice of the API client this screen needs.
type Catalog interface {
	ListQuizzes(ctx context.Context) ([]quiz.Quiz, error)
	LoadQuestions(ctx context.Context, quizID string) ([]quiz.Question, error)
}

// Reporter receives the outcome of each submitted attempt.
type Reporter interface {
	Report(ctx context.Context, q quiz.Quiz, score quiz.ScoreResult, takenAt time.Time) error
}

// QuizzesScreen drives the quiz assessment flow: pick a quiz, answer
// questions, submit, review, retake. The quiz engine owns the state;
// this screen translates keys into engine calls and renders.
type QuizzesScreen struct {
	catalog  Catalog
	reporter Reporter

	quizzes []quiz.Quiz
	active  int // index into quizzes
	attempt *quiz.Attempt

	cursor     int  // highlighted option on the current question
	confirming bool // unanswered-submit confirmation overlay
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*QuizzesScreen)(nil)
var _ screen.KeyHintProvider = (*QuizzesScreen)(nil)

// New creates the quizzes screen. reporter may be nil in previews.
func New(catalog Catalog, reporter Reporter) *QuizzesScreen {
	return &QuizzesScreen{catalog: catalog, reporter: reporter}
}

func (s *QuizzesScreen) Init() tea.Cmd {
	return s.loadCatalog()
}

func (s *QuizzesScreen) Title() string {
	return "Practice Quizzes"
}

func (s *QuizzesScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit anyway"},
			{Key: "N", Description: "Keep answering"},
		}
	}
	if s.attempt == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	switch s.attempt.Phase() {
	case quiz.PhaseSubmitted:
		return []layout.KeyHint{
			{Key: "V", Description: "Review"},
			{Key: "R", Description: "Retake"},
			{Key: "←→", Description: "Questions"},
			{Key: "Tab", Description: "Switch quiz"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Option"},
			{Key: "Enter", Description: "Choose"},
			{Key: "←→", Description: "Questions"},
			{Key: "S", Description: "Submit"},
			{Key: "Tab", Description: "Switch quiz"},
		}
	}
}

func (s *QuizzesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		return s.handleCatalogLoaded(msg)

	case questionsLoadedMsg:
		return s.handleQuestionsLoaded(msg)

	case reportDoneMsg:
		// Background effect only. Failures were already logged by the
		// reporter; the submitted state is untouched either way.
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizzesScreen) handleCatalogLoaded(msg catalogLoadedMsg) (screen.Screen, tea.Cmd) {
	s.loaded = true
	if msg.Err != nil {
		// Empty list, not a crash.
		s.quizzes = nil
		s.errMsg = "Couldn't load quizzes. Check your connection and come back."
		return s, nil
	}

	s.quizzes = msg.Quizzes
	s.errMsg = ""
	if len(s.quizzes) == 0 {
		return s, nil
	}

	// First listed quiz becomes active when nothing is active yet.
	if s.attempt == nil {
		return s, s.startQuiz(0)
	}
	return s, nil
}

func (s *QuizzesScreen) handleQuestionsLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	if s.attempt == nil || msg.QuizID != s.attempt.QuizID {
		// Stale response for an abandoned quiz; a newer switch won.
		return s, nil
	}

	if msg.Err != nil {
		s.errMsg = "Couldn't load questions for this quiz."
		return s, nil
	}

	if s.attempt.AttachQuestions(msg.QuizID, msg.Questions) {
		s.cursor = 0
		s.errMsg = ""
	}
	return s, nil
}

func (s *QuizzesScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.confirming {
		switch msg.String() {
		case "y", "Y":
			s.confirming = false
			return s, s.submit()
		case "n", "N", "esc":
			s.confirming = false
		}
		return s, nil
	}

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "tab":
		return s, s.cycleQuiz(1)
	case "shift+tab":
		return s, s.cycleQuiz(-1)
	}

	if s.attempt == nil {
		return s, nil
	}

	switch msg.String() {
	case "left", "h":
		s.attempt.Prev()
		s.syncCursor()
	case "right", "l":
		s.attempt.Next()
		s.syncCursor()
	case "g":
		// "Go to Q1"
		s.attempt.JumpTo(0)
		s.syncCursor()
	}

	switch s.attempt.Phase() {
	case quiz.PhaseInProgress:
		return s.handleAnswerKey(msg)
	case quiz.PhaseSubmitted:
		return s.handleReviewKey(msg)
	}
	return s, nil
}

func (s *QuizzesScreen) handleAnswerKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	q := s.attempt.CurrentQuestion()
	if q == nil {
		return s, nil
	}

	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(q.Options)-1 {
			s.cursor++
		}
	case "enter", "space":
		s.attempt.SelectOption(s.cursor)
	case "1", "2", "3", "4", "5", "6", "7", "8":
		idx := int(msg.String()[0] - '1')
		if idx < len(q.Options) {
			s.attempt.SelectOption(idx)
			s.cursor = idx
		}
	case "s", "S":
		if s.attempt.AnsweredCount() < s.attempt.Total() {
			// Presentation-side confirmation; the engine only exposes
			// the answered count.
			s.confirming = true
			return s, nil
		}
		return s, s.submit()
	}
	return s, nil
}

func (s *QuizzesScreen) handleReviewKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "v", "V":
		s.attempt.ToggleReview()
	case "r", "R":
		s.attempt.Retake()
		s.cursor = 0
	}
	return s, nil
}

// submit flips the attempt to Submitted and kicks off the background
// report. The report never gates the transition: the command runs
// after the state has already changed.
func (s *QuizzesScreen) submit() tea.Cmd {
	if s.attempt == nil || !s.attempt.Submit() {
		return nil
	}

	activeQuiz := s.quizzes[s.active]
	score := s.attempt.Score()
	takenAt := time.Now()

	if s.reporter == nil {
		return nil
	}
	return func() tea.Msg {
		err := s.reporter.Report(context.Background(), activeQuiz, score, takenAt)
		return reportDoneMsg{Err: err}
	}
}

// startQuiz makes quizzes[i] active with a fresh attempt and requests
// its questions.
func (s *QuizzesScreen) startQuiz(i int) tea.Cmd {
	s.active = i
	s.cursor = 0
	s.confirming = false
	s.errMsg = ""
	s.attempt = quiz.NewAttempt(s.quizzes[i].ID)
	return s.loadQuestions(s.quizzes[i].ID)
}

func (s *QuizzesScreen) cycleQuiz(delta int) tea.Cmd {
	if len(s.quizzes) < 2 {
		return nil
	}
	next := (s.active + delta + len(s.quizzes)) % len(s.quizzes)
	return s.startQuiz(next)
}

// syncCursor moves the option cursor to the recorded answer for the
// current question, or the top when unanswered.
func (s *QuizzesScreen) syncCursor() {
	if chosen, ok := s.attempt.Answer(s.attempt.Current); ok {
		s.cursor = chosen
	} else {
		s.cursor = 0
	}
}

func (s *QuizzesScreen) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		quizzes, err := s.catalog.ListQuizzes(context.Background())
		return catalogLoadedMsg{Quizzes: quizzes, Err: err}
	}
}

func (s *QuizzesScreen) loadQuestions(quizID string) tea.Cmd {
	return func() tea.Msg {
		questions, err := s.catalog.LoadQuestions(context.Background(), quizID)
		return questionsLoadedMsg{QuizID: quizID, Questions: questions, Err: err}
	}
}
