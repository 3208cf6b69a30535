package oracle

import "errors"

// Sentinel errors for oracle operations.
var (
	// ErrQuestionTooLong is returned when the question exceeds the
	// configured maximum length. Maps to HTTP 422.
	ErrQuestionTooLong = errors.New("question too long")

	// ErrEmptyQuestion is returned when the question is empty after
	// trimming whitespace. Maps to HTTP 422.
	ErrEmptyQuestion = errors.New("empty question")

	// ErrNotConfigured is returned when no API key is configured.
	// Maps to HTTP 500.
	ErrNotConfigured = errors.New("upstream not configured")

	// ErrUpstream is returned when the upstream call fails, times out, or
	// returns unusable content. Maps to HTTP 500.
	ErrUpstream = errors.New("upstream failure")
)

// IsInputError reports whether err describes an unprocessable question
// rather than an upstream or internal failure.
func IsInputError(err error) bool {
	return errors.Is(err, ErrQuestionTooLong) || errors.Is(err, ErrEmptyQuestion)
}
