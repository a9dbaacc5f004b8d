package api

import "fmt"

// ErrCatalogUnavailable indicates the quiz catalog could not be
// fetched or parsed. Callers present an empty list, never crash.
type ErrCatalogUnavailable struct {
	Err error
}

func (e *ErrCatalogUnavailable) Error() string {
	return fmt.Sprintf("quiz catalog unavailable: %v", e.Err)
}

func (e *ErrCatalogUnavailable) Unwrap() error { return e.Err }

// ErrQuestionsUnavailable indicates the question set for one quiz
// could not be fetched, parsed, or validated.
type ErrQuestionsUnavailable struct {
	QuizID string
	Err    error
}

func (e *ErrQuestionsUnavailable) Error() string {
	return fmt.Sprintf("questions unavailable for quiz %s: %v", e.QuizID, e.Err)
}

func (e *ErrQuestionsUnavailable) Unwrap() error { return e.Err }

// ErrReportingFailed indicates a result POST failed. Logged only;
// the attempt is already submitted and stays that way.
type ErrReportingFailed struct {
	Err error
}

func (e *ErrReportingFailed) Error() string {
	return fmt.Sprintf("progress report failed: %v", e.Err)
}

func (e *ErrReportingFailed) Unwrap() error { return e.Err }
