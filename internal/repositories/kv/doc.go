// Package kv is the durable key-value store behind the identity store.
//
// Values are opaque byte blobs written and read whole; there is no partial
// update and no query language. The same repository runs on SQLite (the
// default, single-device file) and on Postgres via pgx; sqlx rebinds the '?'
// placeholders for the active driver.
package kv
