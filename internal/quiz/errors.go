package quiz

import "errors"

var (
	ErrNoActiveSession   = errors.New("no active session")
	ErrEmptyQuizData     = errors.New("no quiz data found")
	ErrInvalidTransition = errors.New("operation not allowed in current state")
	ErrIndexOutOfRange   = errors.New("question index out of range")
)
