package services

import "errors"

var (
	// ErrDuplicateIdentity is returned by Register when the email or the
	// phone already belongs to a record.
	ErrDuplicateIdentity = errors.New("user already exists (email or phone)")

	// ErrInvalidCredentials is returned by Login when no record matches both
	// the identifier and the password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoActiveSession marks an operation that needs a logged-in user.
	// SaveProgress absorbs it instead of returning it.
	ErrNoActiveSession = errors.New("no active session")

	ErrInvalidProgress = errors.New("progress must not be negative")
)
