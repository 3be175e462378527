// Package common defines small helpers and sentinel errors shared by the
// journalquiz packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors raised before anything is persisted.
	ErrorMissingField = errors.New("required field is empty")
)
