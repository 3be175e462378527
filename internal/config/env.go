package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/journalquiz/internal/flagx"
	"github.com/joho/godotenv"
)

// envVars maps QUIZ_* variables to the fields they set.
func envVars(cfg *Config) map[string]*string {
	return map[string]*string{
		"QUIZ_DATABASE_DRIVER":   &cfg.DatabaseDriver,
		"QUIZ_DATABASE_DSN":      &cfg.DatabaseDSN,
		"QUIZ_CONTENT_PATH":      &cfg.ContentPath,
		"QUIZ_CONTENT_S3_BUCKET": &cfg.ContentS3Bucket,
		"QUIZ_CONTENT_S3_KEY":    &cfg.ContentS3Key,
		"QUIZ_S3_REGION":         &cfg.S3Region,
		"QUIZ_S3_BASE_ENDPOINT":  &cfg.S3BaseEndpoint,
		"QUIZ_S3_ACCESS_KEY":     &cfg.S3AccessKey,
		"QUIZ_S3_SECRET_KEY":     &cfg.S3SecretKey,
		"QUIZ_LOG_LEVEL":         &cfg.LogLevel,
		"QUIZ_LOG_FORMAT":        &cfg.LogFormat,
	}
}

// parseEnv overlays Config with non-empty QUIZ_* variables. The dotenv file
// named by -e/-env is loaded first when it exists; a malformed file panics
// like a malformed JSON config does.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(flagx.EnvFileFlag()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	for name, dst := range envVars(cfg) {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*dst = v
		}
	}
}
