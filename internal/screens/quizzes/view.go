package quizzes

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rajat/learnhub/internal/quiz"
	"github.com/rajat/learnhub/internal/ui/components"
	"github.com/rajat/learnhub/internal/ui/theme"
)

func (s *QuizzesScreen) View(width, height int) string {
	if !s.loaded {
		return centerDim(width, "Loading quizzes...")
	}
	if len(s.quizzes) == 0 {
		msg := "No quizzes available right now."
		if s.errMsg != "" {
			msg = s.errMsg
		}
		return centerDim(width, msg)
	}

	var b strings.Builder

	b.WriteString(s.renderSwitcher())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if s.errMsg != "" {
		b.WriteString(theme.Wrong.Render("  " + s.errMsg))
		return b.String()
	}
	if s.attempt == nil || s.attempt.Phase() == quiz.PhaseLoading {
		b.WriteString(centerDim(width, "Loading questions..."))
		return b.String()
	}

	b.WriteString(s.renderQuestionCard(width))

	if s.confirming {
		b.WriteString("\n\n")
		b.WriteString(theme.Selected.Render(fmt.Sprintf(
			"  %d of %d questions answered. Submit anyway? (y/n)",
			s.attempt.AnsweredCount(), s.attempt.Total(),
		)))
	}

	if s.attempt.Phase() == quiz.PhaseSubmitted {
		b.WriteString("\n\n")
		b.WriteString(s.renderScoreCard(width))
		if s.attempt.ReviewVisible() {
			b.WriteString("\n\n")
			b.WriteString(s.renderReview(width))
		}
	}

	return b.String()
}

// renderSwitcher draws the quiz tabs plus the answered-progress bar.
func (s *QuizzesScreen) renderSwitcher() string {
	labels := make([]string, len(s.quizzes))
	for i, q := range s.quizzes {
		labels[i] = q.Title
	}
	tabs := components.Tabs{Labels: labels, Active: s.active}

	line := "  " + tabs.View()
	if s.attempt != nil && s.attempt.Total() > 0 {
		pct := float64(s.attempt.AnsweredCount()) / float64(s.attempt.Total())
		bar := components.NewProgressBar("", pct, true, 24)
		line += "   " + bar.View()
	}
	return line
}

func (s *QuizzesScreen) renderQuestionCard(width int) string {
	q := s.attempt.CurrentQuestion()
	if q == nil {
		return centerDim(width, "This quiz has no questions.")
	}

	var b strings.Builder

	header := fmt.Sprintf("  Q%d/%d  ", s.attempt.Current+1, s.attempt.Total())
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(header))
	b.WriteString(theme.Body.Bold(true).Render(q.Prompt))
	b.WriteString("\n\n")

	chosen := -1
	if c, ok := s.attempt.Answer(s.attempt.Current); ok {
		chosen = c
	}
	options := components.OptionList{
		Options:   q.Options,
		Cursor:    s.cursor,
		Chosen:    chosen,
		Submitted: s.attempt.Phase() == quiz.PhaseSubmitted,
		Correct:   q.Correct,
	}
	b.WriteString(options.View())

	if s.attempt.Phase() == quiz.PhaseSubmitted && q.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  Why: " + q.Explanation))
	}

	return b.String()
}

func (s *QuizzesScreen) renderScoreCard(width int) string {
	score := s.attempt.Score()
	verdict := quiz.VerdictFor(score.Correct, score.Total)

	line := fmt.Sprintf("  Your Score: %d/%d (%d%%)", score.Correct, score.Total, score.Accuracy)
	var b strings.Builder
	b.WriteString(theme.Selected.Render(line))
	b.WriteString("\n")
	b.WriteString(theme.Dim.Render("  " + verdict.Message()))
	return b.String()
}

// renderReview lists every question with the chosen vs correct answer.
func (s *QuizzesScreen) renderReview(width int) string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("  Review"))
	b.WriteString("\n")

	for i, q := range s.attempt.Questions {
		chosen, answered := s.attempt.Answer(i)
		ok := answered && chosen == q.Correct

		badge := theme.Wrong.Render("✗")
		if ok {
			badge = theme.Correct.Render("✓")
		}
		b.WriteString(fmt.Sprintf("  %s Q%d  %s\n", badge, i+1, q.Prompt))

		correctLine := "      correct: " + q.Options[q.Correct]
		b.WriteString(theme.Correct.Render(correctLine) + "\n")
		if answered && !ok {
			b.WriteString(theme.Wrong.Render("      yours:   "+q.Options[chosen]) + "\n")
		} else if !answered {
			b.WriteString(theme.Dim.Render("      yours:   (unanswered)") + "\n")
		}
	}
	return b.String()
}

func centerDim(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n" + msg)
}
