package quiz

import "math"

// ScoreResult aggregates correctness over one attempt. Accuracy is a
// whole percentage, rounded half-up, 0 for an empty quiz.
type ScoreResult struct {
	Correct  int
	Total    int
	Accuracy int
}

// Verdict bands a score into a feedback tier.
type Verdict int

const (
	VerdictNeedsPractice Verdict = iota
	VerdictGood
	VerdictExcellent
)

// Fixed verdict thresholds on correct/total.
const (
	excellentRatio = 0.8
	goodRatio      = 0.5
)

// Score computes correctness for every question: correct when the
// recorded answer equals the question's correct index, incorrect when
// it differs or is absent. Pure and total over well-formed input;
// safe to call at any time, any number of times.
func Score(questions []Question, answers map[int]int) ScoreResult {
	result := ScoreResult{Total: len(questions)}
	for i, q := range questions {
		if chosen, ok := answers[i]; ok && chosen == q.Correct {
			result.Correct++
		}
	}
	if result.Total > 0 {
		result.Accuracy = int(math.Floor(100*float64(result.Correct)/float64(result.Total) + 0.5))
	}
	return result
}

// VerdictFor bands correct/total into a tier: >= 0.8 excellent,
// >= 0.5 good, else needs practice. An empty quiz lands in the lowest
// tier; the ratio is undefined and accuracy reports 0.
func VerdictFor(correct, total int) Verdict {
	if total == 0 {
		return VerdictNeedsPractice
	}
	ratio := float64(correct) / float64(total)
	switch {
	case ratio >= excellentRatio:
		return VerdictExcellent
	case ratio >= goodRatio:
		return VerdictGood
	default:
		return VerdictNeedsPractice
	}
}

// Message returns the learner-facing line for a verdict.
func (v Verdict) Message() string {
	switch v {
	case VerdictExcellent:
		return "Excellent! Keep it up."
	case VerdictGood:
		return "Good job, review and try again."
	default:
		return "Don't worry. Practice makes perfect!"
	}
}
