package quiz

import (
	"encoding/json"
	"fmt"
)

// Quiz identifies one quiz in the portal catalog. Immutable for the
// lifetime of an attempt; replaced wholesale on quiz switch.
type Quiz struct {
	ID      string
	Title   string
	Subject string
}

// Question is one multiple-choice question. Prompt and options are
// already normalized to plain text by the time a Question exists.
type Question struct {
	Prompt      string
	Options     []string
	Correct     int
	Explanation string
}

// MinOptions is the smallest legal option count for a question.
const MinOptions = 2

// ErrMalformedQuestion indicates a question record that cannot be
// scored: too few options or a correct-answer index that does not
// point into them. Raised at load time, never during scoring.
type ErrMalformedQuestion struct {
	Index int // position in the quiz's question sequence
	Err   error
}

func (e *ErrMalformedQuestion) Error() string {
	return fmt.Sprintf("malformed question %d: %v", e.Index, e.Err)
}

func (e *ErrMalformedQuestion) Unwrap() error { return e.Err }

// flexText decodes a field that the backend serves either as a plain
// string or as a structured {"text": ...} wrapper. Normalization
// happens here, once, so nothing downstream branches on shape.
type flexText string

func (t *flexText) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		*t = flexText(s)
		return nil
	}
	var wrapped struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return fmt.Errorf("text field is neither string nor {text} object: %w", err)
	}
	*t = flexText(wrapped.Text)
	return nil
}

// quizRecord is the wire form of a catalog entry.
type quizRecord struct {
	ID      string   `json:"_id"`
	Title   flexText `json:"title"`
	Subject string   `json:"subject"`
}

// questionRecord is the wire form of a question. The correct-answer
// index arrives as either "fix" or "answer"; "fix" wins when both are
// present.
type questionRecord struct {
	Prompt      flexText   `json:"q"`
	Options     []flexText `json:"options"`
	Fix         *int       `json:"fix"`
	Answer      *int       `json:"answer"`
	Explanation string     `json:"explain"`
}

// DecodeQuizzes converts a raw catalog payload into normalized Quiz
// values, preserving order. Untitled quizzes get a fallback title so
// the switcher always has something to render.
func DecodeQuizzes(raw json.RawMessage) ([]Quiz, error) {
	var records []quizRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode quiz catalog: %w", err)
	}
	quizzes := make([]Quiz, 0, len(records))
	for _, r := range records {
		title := string(r.Title)
		if title == "" {
			title = "Untitled Quiz"
		}
		quizzes = append(quizzes, Quiz{
			ID:      r.ID,
			Title:   title,
			Subject: r.Subject,
		})
	}
	return quizzes, nil
}

// DecodeQuestions converts a raw questions payload into normalized
// Questions. Any record that cannot be scored rejects the whole
// payload with ErrMalformedQuestion; partial quizzes are worse than
// no quiz.
func DecodeQuestions(raw json.RawMessage) ([]Question, error) {
	var records []questionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	questions := make([]Question, 0, len(records))
	for i, r := range records {
		q, err := r.normalize()
		if err != nil {
			return nil, &ErrMalformedQuestion{Index: i, Err: err}
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (r questionRecord) normalize() (Question, error) {
	if len(r.Options) < MinOptions {
		return Question{}, fmt.Errorf("need at least %d options, got %d", MinOptions, len(r.Options))
	}

	correct, ok := r.correctIndex()
	if !ok {
		return Question{}, fmt.Errorf("no correct-answer index (fix or answer)")
	}
	if correct < 0 || correct >= len(r.Options) {
		return Question{}, fmt.Errorf("correct index %d out of range for %d options", correct, len(r.Options))
	}

	options := make([]string, len(r.Options))
	for i, opt := range r.Options {
		options[i] = string(opt)
	}

	return Question{
		Prompt:      string(r.Prompt),
		Options:     options,
		Correct:     correct,
		Explanation: r.Explanation,
	}, nil
}

// correctIndex resolves the fix/answer variant. Fixed precedence:
// fix first, then answer.
func (r questionRecord) correctIndex() (int, bool) {
	if r.Fix != nil {
		return *r.Fix, true
	}
	if r.Answer != nil {
		return *r.Answer, true
	}
	return 0, false
}
