// Package models defines the data shared by the identity store, the quiz
// controller and the content loaders.
package models

// Credential replaces a plaintext password: a random salt and the verifier
// derived from it (see package cryptox).
type Credential struct {
	Salt     []byte `json:"salt"`
	Verifier []byte `json:"verifier"`
}

// User is one learner record. Email and Phone are each unique across all
// records. Progress is a zero-based index into the quiz sequence; a value
// equal to the sequence length means the quiz is completed.
type User struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Credential Credential `json:"credential"`
	Phone      string     `json:"phone"`
	Progress   int        `json:"progress"`
}
