// Package config loads runtime configuration for the quiz CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: QUIZ_* variables, optionally seeded from a dotenv file
//     selected with -e or -env (default ".env"). Variables already set in
//     the process environment win over the file.
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-b string   database driver: sqlite or pgx
//	-d string   database DSN (file path for sqlite)
//	-q string   quiz file (.json, .csv, .xlsx) replacing the built-in set
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text or json
//
// # JSON schema
//
//	{
//	  "database_driver": "sqlite",
//	  "database_dsn": "quiz.db",
//	  "content_path": "",
//	  "content_s3_bucket": "quizzes",
//	  "content_s3_key": "sets/achats.xlsx",
//	  "s3_region": "us-east-1",
//	  "s3_base_endpoint": "http://127.0.0.1:9000/",
//	  "s3_access_key": "minioadmin",
//	  "s3_secret_key": "minioadmin",
//	  "log_level": "warn",
//	  "log_format": "text"
//	}
package config
