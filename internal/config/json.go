package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/journalquiz/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config field untouched.
type JsonConfig struct {
	DatabaseDriver  string `json:"database_driver"`
	DatabaseDSN     string `json:"database_dsn"`
	ContentPath     string `json:"content_path"`
	ContentS3Bucket string `json:"content_s3_bucket"`
	ContentS3Key    string `json:"content_s3_key"`
	S3Region        string `json:"s3_region"`
	S3BaseEndpoint  string `json:"s3_base_endpoint"`
	S3AccessKey     string `json:"s3_access_key"`
	S3SecretKey     string `json:"s3_secret_key"`
	LogLevel        string `json:"log_level"`
	LogFormat       string `json:"log_format"`
}

// parseJson overlays Config with values loaded from the JSON file given via
// -c or -config. Without the flag nothing happens. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIfNotEmpty(&cfg.DatabaseDriver, jc.DatabaseDriver)
	setIfNotEmpty(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setIfNotEmpty(&cfg.ContentPath, jc.ContentPath)
	setIfNotEmpty(&cfg.ContentS3Bucket, jc.ContentS3Bucket)
	setIfNotEmpty(&cfg.ContentS3Key, jc.ContentS3Key)
	setIfNotEmpty(&cfg.S3Region, jc.S3Region)
	setIfNotEmpty(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setIfNotEmpty(&cfg.S3AccessKey, jc.S3AccessKey)
	setIfNotEmpty(&cfg.S3SecretKey, jc.S3SecretKey)
	setIfNotEmpty(&cfg.LogLevel, jc.LogLevel)
	setIfNotEmpty(&cfg.LogFormat, jc.LogFormat)
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
