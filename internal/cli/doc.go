// Package cli provides the interactive quiz command-line client.
//
// It wires configuration, the local key-value store, the identity and
// custom-quiz services, a quiz content source and the quiz controller behind
// a REPL. Typical flow: resume the saved session if there is one (otherwise
// offer register/login), show the current exercise, read answers.
//
// Key features:
//   - Register / Login / Logout
//   - Answer, show the solution, move to the next exercise
//   - Jump to and search exercises
//   - Explain account numbers from the chart of accounts
//   - Author or import custom exercises
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
