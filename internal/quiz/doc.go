// Package quiz drives the question, answer and feedback cycle.
//
// A Controller holds the session context (the logged-in learner), the quiz
// sequence and the current position. It validates submitted entries with an
// order-independent match against the answer key and persists progress
// through a SessionStore only when the learner advances past a correctly
// answered item. Jumps are browsing and are never persisted.
//
// State machine:
//
//	AwaitingAuth -> Displaying -> ValidatedCorrect | ValidatedIncorrect
//	ValidatedIncorrect -> ValidatedCorrect | ValidatedIncorrect (retry)
//	ValidatedCorrect -> Displaying (Advance) ... -> Completed
//
// The Controller is not safe for concurrent use; it is driven by one
// interactive loop.
package quiz
