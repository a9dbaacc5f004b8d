package quizzes

import (
	"github.com/rajat/learnhub/internal/quiz"
)

// catalogLoadedMsg is sent when the quiz catalog fetch resolves.
type catalogLoadedMsg struct {
	Quizzes []quiz.Quiz
	Err     error
}

// questionsLoadedMsg is sent when a question fetch resolves. QuizID
// tags the payload so the screen can discard responses for a quiz
// that is no longer active (last-request-wins).
type questionsLoadedMsg struct {
	QuizID    string
	Questions []quiz.Question
	Err       error
}

// reportDoneMsg is sent when the background result report finishes.
type reportDoneMsg struct {
	Err error
}
