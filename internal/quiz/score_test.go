package quiz

import "testing"

func threeQuestions() []Question {
	return []Question{
		{Prompt: "2+2?", Options: []string{"3", "4", "5"}, Correct: 1},
		{Prompt: "Capital of France?", Options: []string{"Paris", "Lyon"}, Correct: 0},
		{Prompt: "H2O is?", Options: []string{"Salt", "Air", "Water"}, Correct: 2},
	}
}

func TestScore_MixedAnswers(t *testing.T) {
	// Correct indices [1, 0, 2]; learner gets the first two right.
	answers := map[int]int{0: 1, 1: 0, 2: 1}
	got := Score(threeQuestions(), answers)

	if got.Correct != 2 {
		t.Errorf("Correct = %d, want 2", got.Correct)
	}
	if got.Total != 3 {
		t.Errorf("Total = %d, want 3", got.Total)
	}
	if got.Accuracy != 67 {
		t.Errorf("Accuracy = %d, want 67", got.Accuracy)
	}
}

func TestScore_NoAnswers(t *testing.T) {
	questions := threeQuestions()[:2]
	got := Score(questions, map[int]int{})

	if got.Correct != 0 || got.Total != 2 || got.Accuracy != 0 {
		t.Errorf("Score = %+v, want {0 2 0}", got)
	}
}

func TestScore_EmptyQuiz(t *testing.T) {
	got := Score(nil, nil)
	if got.Correct != 0 || got.Total != 0 || got.Accuracy != 0 {
		t.Errorf("Score = %+v, want zero value", got)
	}
}

func TestScore_Idempotent(t *testing.T) {
	questions := threeQuestions()
	answers := map[int]int{0: 1, 2: 2}

	first := Score(questions, answers)
	second := Score(questions, answers)
	if first != second {
		t.Errorf("repeated Score differs: %+v vs %+v", first, second)
	}
}

func TestScore_Bounds(t *testing.T) {
	cases := []struct {
		name    string
		answers map[int]int
	}{
		{"none", map[int]int{}},
		{"all correct", map[int]int{0: 1, 1: 0, 2: 2}},
		{"all wrong", map[int]int{0: 0, 1: 1, 2: 0}},
		{"stray index", map[int]int{99: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(threeQuestions(), tc.answers)
			if got.Correct > got.Total {
				t.Errorf("Correct %d exceeds Total %d", got.Correct, got.Total)
			}
			if got.Accuracy < 0 || got.Accuracy > 100 {
				t.Errorf("Accuracy %d out of [0,100]", got.Accuracy)
			}
		})
	}
}

func TestScore_RoundsHalfUp(t *testing.T) {
	// 1/8 = 12.5% must round to 13, not 12.
	questions := make([]Question, 8)
	for i := range questions {
		questions[i] = Question{Options: []string{"a", "b"}, Correct: 0}
	}
	got := Score(questions, map[int]int{0: 0})
	if got.Accuracy != 13 {
		t.Errorf("Accuracy = %d, want 13", got.Accuracy)
	}
}

func TestVerdictFor(t *testing.T) {
	cases := []struct {
		correct, total int
		want           Verdict
	}{
		{8, 10, VerdictExcellent},
		{10, 10, VerdictExcellent},
		{5, 10, VerdictGood},
		{7, 10, VerdictGood},
		{4, 10, VerdictNeedsPractice},
		{0, 10, VerdictNeedsPractice},
		{0, 0, VerdictNeedsPractice},
	}

	for _, tc := range cases {
		if got := VerdictFor(tc.correct, tc.total); got != tc.want {
			t.Errorf("VerdictFor(%d, %d) = %v, want %v", tc.correct, tc.total, got, tc.want)
		}
	}
}
