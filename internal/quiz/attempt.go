package quiz

// Phase is the lifecycle state of an Attempt.
type Phase int

const (
	PhaseLoading    Phase = iota // questions not yet available
	PhaseInProgress              // answering
	PhaseSubmitted               // scored; one-way, no un-submit
)

// Attempt is the mutable per-attempt state for a single quiz run:
// which quiz is active, where the learner is, what they have chosen.
// All mutation goes through the methods below; the question sequence
// itself is shared read-only with the catalog cache and never touched.
type Attempt struct {
	// QuizID tags the attempt with the quiz it was started for. A
	// questions payload carrying any other quiz id is stale and gets
	// discarded (last-request-wins).
	QuizID string

	// Questions is the ordered question sequence, attached once the
	// load resolves. Kept across Retake.
	Questions []Question

	// Current is the 0-based question index, always in [0, len-1]
	// once questions are attached.
	Current int

	// Answers maps question index to chosen option index. Sparse:
	// unanswered questions are simply absent.
	Answers map[int]int

	phase         Phase
	reviewVisible bool
}

// NewAttempt starts a fresh attempt for the given quiz, in
// PhaseLoading. Switching quizzes is just starting a new attempt.
func NewAttempt(quizID string) *Attempt {
	return &Attempt{
		QuizID:  quizID,
		Answers: make(map[int]int),
		phase:   PhaseLoading,
	}
}

// Phase returns the current lifecycle phase.
func (a *Attempt) Phase() Phase { return a.phase }

// ReviewVisible reports whether post-submission review is showing.
func (a *Attempt) ReviewVisible() bool { return a.reviewVisible }

// AttachQuestions delivers a resolved question load. Returns false
// and leaves the attempt untouched when the payload is tagged with a
// different quiz id (a stale in-flight response) or when the attempt
// already left PhaseLoading.
func (a *Attempt) AttachQuestions(quizID string, questions []Question) bool {
	if quizID != a.QuizID || a.phase != PhaseLoading {
		return false
	}
	a.Questions = questions
	a.Current = 0
	a.phase = PhaseInProgress
	return true
}

// SelectOption records the chosen option for the current question,
// overwriting any earlier choice. Silently ignored once submitted or
// while still loading; out-of-range options are ignored too.
func (a *Attempt) SelectOption(option int) {
	if a.phase != PhaseInProgress {
		return
	}
	q := a.CurrentQuestion()
	if q == nil || option < 0 || option >= len(q.Options) {
		return
	}
	a.Answers[a.Current] = option
}

// Next advances to the following question, clamped at the end.
func (a *Attempt) Next() { a.JumpTo(a.Current + 1) }

// Prev moves to the preceding question, clamped at the start.
func (a *Attempt) Prev() { a.JumpTo(a.Current - 1) }

// JumpTo moves directly to the given question index. Out-of-range
// requests clamp to the nearest boundary, never error. Legal in any
// phase so review can page through questions.
func (a *Attempt) JumpTo(index int) {
	if len(a.Questions) == 0 {
		a.Current = 0
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(a.Questions)-1 {
		index = len(a.Questions) - 1
	}
	a.Current = index
}

// Submit transitions InProgress → Submitted and reveals the review.
// One-way: a second call reports false and changes nothing. Whether
// to confirm an incomplete submission first is the caller's concern;
// AnsweredCount exposes what it needs.
func (a *Attempt) Submit() bool {
	if a.phase != PhaseInProgress {
		return false
	}
	a.phase = PhaseSubmitted
	a.reviewVisible = true
	return true
}

// Retake resets a submitted attempt back to answerable, keeping the
// same question sequence so no re-fetch is needed.
func (a *Attempt) Retake() {
	if a.phase != PhaseSubmitted {
		return
	}
	a.Answers = make(map[int]int)
	a.Current = 0
	a.reviewVisible = false
	a.phase = PhaseInProgress
}

// ToggleReview flips review visibility. Only meaningful after
// submission; a no-op otherwise.
func (a *Attempt) ToggleReview() {
	if a.phase != PhaseSubmitted {
		return
	}
	a.reviewVisible = !a.reviewVisible
}

// CurrentQuestion returns the active question, or nil while loading.
func (a *Attempt) CurrentQuestion() *Question {
	if a.Current < 0 || a.Current >= len(a.Questions) {
		return nil
	}
	return &a.Questions[a.Current]
}

// Answer returns the chosen option for question i, if any.
func (a *Attempt) Answer(i int) (int, bool) {
	opt, ok := a.Answers[i]
	return opt, ok
}

// AnsweredCount returns how many questions have a recorded answer.
func (a *Attempt) AnsweredCount() int { return len(a.Answers) }

// Total returns the number of questions in the attempt.
func (a *Attempt) Total() int { return len(a.Questions) }

// Score computes the current score from the attached questions and
// recorded answers. Derived on demand, never cached.
func (a *Attempt) Score() ScoreResult {
	return Score(a.Questions, a.Answers)
}
